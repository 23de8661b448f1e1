package service

import (
	"context"

	"vendai-assistant-be/internal/dto"
	"vendai-assistant-be/internal/repository/specification"
	"vendai-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const defaultKnowledgeListLimit = 50

type IKnowledgeService interface {
	List(ctx context.Context, scope string, limit, offset int) (*dto.ListKnowledgeResponse, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type knowledgeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewKnowledgeService(uowFactory unitofwork.RepositoryFactory) IKnowledgeService {
	return &knowledgeService{
		uowFactory: uowFactory,
	}
}

// List pages through stored knowledge entries, newest first. An empty scope
// lists every scope.
func (s *knowledgeService) List(ctx context.Context, scope string, limit, offset int) (*dto.ListKnowledgeResponse, error) {
	if limit <= 0 {
		limit = defaultKnowledgeListLimit
	}

	specs := []specification.Specification{
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if scope != "" {
		specs = append(specs, specification.ByScope{Scope: scope})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.KnowledgeEmbeddingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListKnowledgeResponse{Entries: make([]dto.KnowledgeEntryDTO, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, dto.KnowledgeEntryDTO{
			Id:        e.Id.String(),
			Scope:     e.Scope,
			Content:   e.Content,
			CreatedAt: e.CreatedAt,
		})
	}
	return res, nil
}

// Remove soft-deletes one knowledge entry. It reports false when the id is
// unknown so the caller can answer 404 instead of pretending a delete
// happened.
func (s *knowledgeService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.KnowledgeEmbeddingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}

	if err := uow.KnowledgeEmbeddingRepository().Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
