package dto

import "time"

// IngestKnowledgeRequest queues one knowledge snippet for embedding.
type IngestKnowledgeRequest struct {
	Scope   string `json:"scope" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type IngestKnowledgeResponse struct {
	Queued bool `json:"queued"`
}

type KnowledgeEntryDTO struct {
	Id        string    `json:"id"`
	Scope     string    `json:"scope"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ListKnowledgeResponse struct {
	Entries []KnowledgeEntryDTO `json:"entries"`
}
