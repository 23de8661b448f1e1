package store

import (
	"vendai-assistant-be/pkg/inventory"
)

// Inquiry records the last product inquiry so follow-up messages can reuse
// the structured filters.
type Inquiry struct {
	Query   string            `json:"query"`
	Filters inventory.Filters `json:"filters"`
}

// Session is the live per-customer conversation state held in memory.
// Exactly one session exists per customer id; it is mutated only while the
// owning customer's message is being handled.
type Session struct {
	CustomerID  string `json:"customer_id"`
	DisplayName string `json:"display_name"`
	Stage       string `json:"stage"`
	Registered  bool   `json:"registered"`

	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Confirmed items for the current visit, in confirmation order.
	Cart []inventory.Record `json:"cart"`

	LastInquiry *Inquiry `json:"last_inquiry,omitempty"`

	// Pending order fields, populated while walking through
	// TakingOrder -> SelectingQuantity -> ConfirmingOrder.
	PendingProduct  *inventory.Record `json:"pending_product,omitempty"`
	PendingQuantity int               `json:"pending_quantity"`
	PendingTotal    float64           `json:"pending_total"`
}

// Conversation stages. Every (stage, message) pair has a defined transition;
// invalid input re-prompts and stays in place.
const (
	StageAwaitingFirstName = "AWAITING_FIRST_NAME"
	StageAwaitingLastName  = "AWAITING_LAST_NAME"
	StageAwaitingLocation  = "AWAITING_LOCATION"
	StageIdle              = "IDLE"
	StageTakingOrder       = "TAKING_ORDER"
	StageSelectingQuantity = "SELECTING_QUANTITY"
	StageConfirmingOrder   = "CONFIRMING_ORDER"
)

// NewSession creates the initial session for a customer. Customers already
// registered in a previous process lifetime start at Idle.
func NewSession(customerID, displayName string, registered bool) *Session {
	stage := StageAwaitingFirstName
	if registered {
		stage = StageIdle
	}
	return &Session{
		CustomerID:  customerID,
		DisplayName: displayName,
		Stage:       stage,
		Registered:  registered,
	}
}

// ClearPending resets the in-flight order fields without touching
// registration or the cart.
func (s *Session) ClearPending() {
	s.PendingProduct = nil
	s.PendingQuantity = 0
	s.PendingTotal = 0
}
