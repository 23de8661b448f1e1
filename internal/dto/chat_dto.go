package dto

import "time"

type LocationDTO struct {
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
}

// IncomingMessageRequest is one customer message delivered by the chat
// transport webhook.
type IncomingMessageRequest struct {
	From        string       `json:"from" validate:"required"`
	DisplayName string       `json:"display_name"`
	Body        string       `json:"body"`
	Location    *LocationDTO `json:"location,omitempty"`
}

type ReplyResponse struct {
	Reply string `json:"reply"`
	Stage string `json:"stage"`
}

type ChatMessageDTO struct {
	Role      string    `json:"role"`
	Body      string    `json:"body"`
	Stage     string    `json:"stage"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatHistoryResponse is the recent transcript for one customer, oldest
// message first.
type ChatHistoryResponse struct {
	PhoneNumber string           `json:"phone_number"`
	Messages    []ChatMessageDTO `json:"messages"`
}
