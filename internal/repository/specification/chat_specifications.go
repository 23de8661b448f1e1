package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCustomerID struct {
	CustomerID uuid.UUID
}

func (s ByCustomerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

type ByPhoneNumber struct {
	PhoneNumber string
}

func (s ByPhoneNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone_number = ?", s.PhoneNumber)
}

type ByScope struct {
	Scope string
}

func (s ByScope) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scope = ?", s.Scope)
}
