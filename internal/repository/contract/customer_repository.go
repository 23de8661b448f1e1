package contract

import (
	"context"

	"vendai-assistant-be/internal/entity"
	"vendai-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Customer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
