package repository

import (
	"context"

	"pnr-quote-service/internal/domain/entity"
	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/pkg/utils"
)

// StaticAirlineRepository serves airlines from the built-in catalog
type StaticAirlineRepository struct{}

// NewStaticAirlineRepository creates an in-memory airline repository
func NewStaticAirlineRepository() repository.AirlineRepository {
	return StaticAirlineRepository{}
}

// GetByCode finds an airline in the built-in catalog
func (StaticAirlineRepository) GetByCode(_ context.Context, code string) (*entity.Airline, error) {
	name, ok := utils.LookupStaticAirline(code)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entity.Airline{Code: utils.NormalizeCode(code), Name: name}, nil
}

// StaticAirportRepository serves airports from the built-in catalog
type StaticAirportRepository struct{}

// NewStaticAirportRepository creates an in-memory airport repository
func NewStaticAirportRepository() repository.AirportRepository {
	return StaticAirportRepository{}
}

// GetByCode finds an airport in the built-in catalog
func (StaticAirportRepository) GetByCode(_ context.Context, code string) (*entity.Airport, error) {
	a, ok := utils.LookupStaticAirport(code)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entity.Airport{
		Code:     utils.NormalizeCode(code),
		Name:     a.Name,
		CityName: a.City,
		Country:  a.Country,
	}, nil
}
