package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Items      datatypes.JSON `gorm:"type:jsonb;not null"`
	Total      float64        `gorm:"not null;default:0"`
	Status     string         `gorm:"type:varchar(50);not null;default:'confirmed'"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Order) TableName() string {
	return "orders"
}
