package entity

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeEmbedding struct {
	Id             uuid.UUID
	Scope          string
	Content        string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
