package repository

import (
	"context"

	"pnr-quote-service/internal/domain/entity"
)

//go:generate mockgen -source=airport_repository.go -destination=mocks/mock_airport_repository.go -package=mocks

// AirportRepository defines the interface for airport lookups
type AirportRepository interface {
	// GetByCode returns ErrNotFound when the code is unknown
	GetByCode(ctx context.Context, code string) (*entity.Airport, error)
}
