package repository

import (
	"context"

	"pnr-quote-service/internal/domain/entity"
)

//go:generate mockgen -source=quote_repository.go -destination=mocks/mock_quote_repository.go -package=mocks

// QuoteRepository defines the interface for the quote archive
type QuoteRepository interface {
	Save(ctx context.Context, record *entity.QuoteRecord) error
	FindBySourceIDs(ctx context.Context, sourceIDs []string) (map[string]*entity.QuoteRecord, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.QuoteRecord, error)
}
