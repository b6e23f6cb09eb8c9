package repository

import (
	"context"
	"time"

	"pnr-quote-service/internal/domain/entity"
)

//go:generate mockgen -source=email_repository.go -destination=mocks/mock_email_repository.go -package=mocks

// EmailRepository defines the interface for email storage operations
type EmailRepository interface {
	Save(ctx context.Context, email *entity.Email) error
	GetLastEmail(ctx context.Context) (*entity.Email, error)
	FindUnprocessed(ctx context.Context, limit int) ([]*entity.Email, error)
	ResetProcessingEmails(ctx context.Context) error
	FindByEmailIDs(ctx context.Context, emailIDs []string) (map[string]*entity.Email, error)
	UpdateStatusByEmailID(ctx context.Context, emailID string, status string, startedAt time.Time) error
	MarkAsProcessedByEmailID(ctx context.Context, emailID, status, processorType, errorDetail, quoteID string) error
}
