package unitofwork

import (
	"context"

	"vendai-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CustomerRepository() contract.CustomerRepository
	ChatMessageRepository() contract.ChatMessageRepository
	OrderRepository() contract.OrderRepository
	KnowledgeEmbeddingRepository() contract.KnowledgeEmbeddingRepository
}
