package services

// Notifier dipakai service untuk menyiarkan perubahan (realtime dashboard).
// kds.Hub memenuhi interface ini.
type Notifier interface {
	Broadcast(event string, data interface{})
}

type noopNotifier struct{}

func (noopNotifier) Broadcast(string, interface{}) {}

func notifierOrNoop(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}

// Event yang disiarkan oleh service
const (
	EventTableCreate       = "table_create"
	EventTableUpdate       = "table_update"
	EventTableDelete       = "table_delete"
	EventReservationCreate = "reservation_create"
	EventReservationCancel = "reservation_cancel"
	EventOrderCreate       = "order_create"
	EventOrderUpdate       = "order_update"
)
