package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport is an airport known to the catalog, keyed by its IATA code
type Airport struct {
	ID        uint
	Code      string
	Name      string
	CityCode  string
	CityName  string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
