package mapper

import (
	"encoding/json"
	"time"

	"vendai-assistant-be/internal/entity"
	"vendai-assistant-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) (*entity.Order, error) {
	if o == nil {
		return nil, nil
	}

	var items []entity.OrderItem
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &items); err != nil {
			return nil, err
		}
	}

	var deletedAt *time.Time
	if o.DeletedAt.Valid {
		t := o.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Order{
		Id:         o.Id,
		CustomerId: o.CustomerId,
		Items:      items,
		Total:      o.Total,
		Status:     entity.OrderStatus(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  o.DeletedAt.Valid,
	}, nil
}

func (m *OrderMapper) ToModel(o *entity.Order) (*model.Order, error) {
	if o == nil {
		return nil, nil
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	var deletedAt gorm.DeletedAt
	if o.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *o.DeletedAt, Valid: true}
	} else if o.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.Order{
		Id:         o.Id,
		CustomerId: o.CustomerId,
		Items:      datatypes.JSON(items),
		Total:      o.Total,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}, nil
}

func (m *OrderMapper) ToEntities(orders []*model.Order) ([]*entity.Order, error) {
	entities := make([]*entity.Order, len(orders))
	for i, o := range orders {
		e, err := m.ToEntity(o)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
