package repository

import (
	"context"

	"pnr-quote-service/internal/domain/entity"
)

//go:generate mockgen -source=airline_repository.go -destination=mocks/mock_airline_repository.go -package=mocks

// AirlineRepository defines the interface for airline lookups
type AirlineRepository interface {
	// GetByCode returns ErrNotFound when the code is unknown
	GetByCode(ctx context.Context, code string) (*entity.Airline, error)
}
