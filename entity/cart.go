package entity

// Cart is the pre-checkout working set for a single user. It lives in the
// cart store (not the relational DB) and is the only mutable aggregate the
// client owns. Lines keep insertion order for display and are keyed by
// menu item id: adding an item already present bumps its quantity instead
// of creating a second line.
type Cart struct {
	UserID uint       `json:"userId"`
	Lines  []CartLine `json:"lines"`
}

// CartLine snapshots the menu item fields the cart needs for display and
// totals. Qty is always >= 1; a line that would drop below 1 is removed.
type CartLine struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Qty        int    `json:"qty"`
}

func NewCart(userID uint) *Cart {
	return &Cart{UserID: userID}
}

// Add appends a line for the item, or bumps the existing line's quantity.
// Availability is deliberately not checked here; it is a display/checkout
// concern, and unavailable items may still be queued.
func (c *Cart) Add(item MenuItem) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == item.ID {
			c.Lines[i].Qty++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Qty:        1,
	})
}

// Remove drops the line for the item if present; absent is a no-op.
func (c *Cart) Remove(menuItemID uint) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQty sets the line's quantity. Anything below 1 removes the line.
func (c *Cart) SetQty(menuItemID uint, qty int) {
	if qty < 1 {
		c.Remove(menuItemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID {
			c.Lines[i].Qty = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

// Total is recomputed from the lines on every call, never stored, so it
// cannot drift from the lines it summarizes.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Price * int64(l.Qty)
	}
	return total
}
