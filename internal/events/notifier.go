package events

// Event names broadcast to subscribers (kitchen display, order tracking).
const (
	EventNewOrder       = "new_order"
	EventOrderStatus    = "order_status"
	EventPaymentUpdated = "payment_updated"
)

// Notifier broadcasts an event to whoever is listening. Fire-and-forget:
// implementations must never fail the caller, delivery is best effort.
type Notifier interface {
	Publish(event string, payload interface{})
}
