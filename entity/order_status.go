package entity

// Order status values. pending is the only state the owning user may
// cancel from; the terminal states admit no further transition.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusPreparing  = "preparing"
	StatusReady      = "ready"
	StatusCompleted  = "completed"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var orderStatuses = map[string]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusPreparing:  true,
	StatusReady:      true,
	StatusCompleted:  true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func ValidOrderStatus(s string) bool { return orderStatuses[s] }

func TerminalStatus(s string) bool {
	return s == StatusCompleted || s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether an order may move from one status to
// another. Administrators may set any status at any time, except that
// nothing leaves a terminal state.
func CanTransition(from, to string) bool {
	if !ValidOrderStatus(to) {
		return false
	}
	if TerminalStatus(from) {
		return false
	}
	return from != to
}
