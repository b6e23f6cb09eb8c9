package usecase

import (
	"context"
	"errors"

	"pnr-quote-service/internal/domain/entity"
)

//go:generate mockgen -source=template_handler.go -destination=mocks/mock_template_handler.go -package=mocks

// ErrNoQuotation is returned by a handler when an email matched its subject
// but carried no fares or segment lines.
var ErrNoQuotation = errors.New("email carries no quotation")

// QuoteProcessor is the quote pipeline as seen by email handlers
type QuoteProcessor interface {
	Process(ctx context.Context, text string, opts QuoteOptions) (*QuoteReport, error)
}

// TemplateHandler defines the interface for email template handlers
type TemplateHandler interface {
	// Name identifies the handler in the email log
	Name() string

	// CanHandle determines if this handler can process the given email subject
	CanHandle(subject string) bool

	// Process handles the email and returns the archived quote id, if any
	Process(ctx context.Context, email *entity.Email) (string, error)
}

// SubjectRouter routes emails to the appropriate handler based on subject
type SubjectRouter interface {
	// Register registers a handler for specific subject patterns
	Register(handler TemplateHandler)

	// GetHandler returns the appropriate handler for a given subject
	GetHandler(subject string) TemplateHandler
}
