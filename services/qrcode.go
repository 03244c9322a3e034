package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator renders a deep-link QR for a menu item, printed on table
// tents so guests land straight on the item page.
type QRGenerator struct {
	BaseURL string
}

func (g QRGenerator) Generate(menuItemID uint) ([]byte, error) {
	link := fmt.Sprintf("%s/item/%d", g.BaseURL, menuItemID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
