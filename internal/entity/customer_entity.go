package entity

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id          uuid.UUID
	PhoneNumber string
	DisplayName string
	FirstName   string
	LastName    string
	Latitude    *float64
	Longitude   *float64
	Registered  bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}

func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
