package events

import "time"

// Event is the contract all outbound system events satisfy.
type Event interface {
	// EventType returns the unique code for this event (e.g. "REPLY_SENT").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// ReplySentEvent records an assistant reply delivered to a customer.
type ReplySentEvent struct {
	CustomerID string
	Stage      string
	Reply      string
	OccurredAt time.Time
}

func NewReplySentEvent(customerID, stage, reply string) ReplySentEvent {
	return ReplySentEvent{
		CustomerID: customerID,
		Stage:      stage,
		Reply:      reply,
		OccurredAt: time.Now(),
	}
}

func (e ReplySentEvent) EventType() string { return "REPLY_SENT" }

func (e ReplySentEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"customer_id": e.CustomerID,
		"stage":       e.Stage,
		"reply":       e.Reply,
	}
}

func (e ReplySentEvent) Timestamp() time.Time { return e.OccurredAt }

// OrderPlacedEvent records a confirmed customer order.
type OrderPlacedEvent struct {
	CustomerID string
	Product    string
	Quantity   int
	Total      float64
	OccurredAt time.Time
}

func NewOrderPlacedEvent(customerID, product string, quantity int, total float64) OrderPlacedEvent {
	return OrderPlacedEvent{
		CustomerID: customerID,
		Product:    product,
		Quantity:   quantity,
		Total:      total,
		OccurredAt: time.Now(),
	}
}

func (e OrderPlacedEvent) EventType() string { return "ORDER_PLACED" }

func (e OrderPlacedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"customer_id": e.CustomerID,
		"product":     e.Product,
		"quantity":    e.Quantity,
		"total":       e.Total,
	}
}

func (e OrderPlacedEvent) Timestamp() time.Time { return e.OccurredAt }

// CustomerRegisteredEvent records a completed customer registration.
type CustomerRegisteredEvent struct {
	CustomerID string
	FirstName  string
	LastName   string
	OccurredAt time.Time
}

func NewCustomerRegisteredEvent(customerID, firstName, lastName string) CustomerRegisteredEvent {
	return CustomerRegisteredEvent{
		CustomerID: customerID,
		FirstName:  firstName,
		LastName:   lastName,
		OccurredAt: time.Now(),
	}
}

func (e CustomerRegisteredEvent) EventType() string { return "CUSTOMER_REGISTERED" }

func (e CustomerRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"customer_id": e.CustomerID,
		"first_name":  e.FirstName,
		"last_name":   e.LastName,
	}
}

func (e CustomerRegisteredEvent) Timestamp() time.Time { return e.OccurredAt }
