package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airline is a carrier known to the catalog, keyed by its IATA code
type Airline struct {
	ID        uint
	Code      string
	Name      string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
