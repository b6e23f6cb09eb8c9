package usecase

import (
	"context"
	"errors"

	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/utils"
)

// CatalogLookup resolves carrier and airport names through a chain of
// repositories. The first repository that knows a code wins; when none
// does, the code itself is returned.
type CatalogLookup struct {
	airlines []repository.AirlineRepository
	airports []repository.AirportRepository
	logger   logger.Logger
}

// NewCatalogLookup creates a lookup that consults repositories in order
func NewCatalogLookup(
	airlines []repository.AirlineRepository,
	airports []repository.AirportRepository,
	logger logger.Logger,
) *CatalogLookup {
	return &CatalogLookup{
		airlines: airlines,
		airports: airports,
		logger:   logger,
	}
}

// AirlineName returns the airline name for code
func (c *CatalogLookup) AirlineName(ctx context.Context, code string) string {
	code = utils.NormalizeCode(code)
	for _, repo := range c.airlines {
		airline, err := repo.GetByCode(ctx, code)
		if err != nil {
			c.logLookupError("airline", code, err)
			continue
		}
		if airline.Name != "" {
			return airline.Name
		}
	}
	return code
}

// AirportName returns "Name (CODE), City, Country" for code
func (c *CatalogLookup) AirportName(ctx context.Context, code string) string {
	code = utils.NormalizeCode(code)
	for _, repo := range c.airports {
		airport, err := repo.GetByCode(ctx, code)
		if err != nil {
			c.logLookupError("airport", code, err)
			continue
		}
		if airport.Name != "" {
			return utils.AirportDescription(code, airport.Name, airport.CityName, airport.Country)
		}
	}
	return code
}

func (c *CatalogLookup) logLookupError(kind, code string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		return
	}
	c.logger.Warn("Catalog lookup failed", "kind", kind, "code", code, "error", err)
}
