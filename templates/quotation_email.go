package templates

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pnr-quote-service/internal/domain/entity"
	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/internal/usecase"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/utils"
)

// DefaultQuotationSubjects are matched case-insensitively against the subject
var DefaultQuotationSubjects = []string{"cotação", "cotacao", "orçamento", "orcamento", "quote", "pnr"}

// QuotationEmailHandler handles emails carrying a fare quotation
type QuotationEmailHandler struct {
	processor  usecase.QuoteProcessor
	quoteRepo  repository.QuoteRepository
	ravPercent decimal.Decimal
	patterns   []string
	logger     logger.Logger
}

// NewQuotationEmailHandler creates a new quotation email handler. An empty
// pattern list uses DefaultQuotationSubjects. quoteRepo may be nil; when set,
// emails already archived are not quoted again.
func NewQuotationEmailHandler(
	processor usecase.QuoteProcessor,
	quoteRepo repository.QuoteRepository,
	ravPercent decimal.Decimal,
	patterns []string,
	logger logger.Logger,
) *QuotationEmailHandler {
	if len(patterns) == 0 {
		patterns = DefaultQuotationSubjects
	}
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}

	return &QuotationEmailHandler{
		processor:  processor,
		quoteRepo:  quoteRepo,
		ravPercent: ravPercent,
		patterns:   lowered,
		logger:     logger,
	}
}

// Name identifies the handler in the email log
func (h *QuotationEmailHandler) Name() string {
	return "quotation"
}

// CanHandle determines if this handler can process the given email subject
func (h *QuotationEmailHandler) CanHandle(subject string) bool {
	subject = strings.ToLower(subject)
	for _, pattern := range h.patterns {
		if strings.Contains(subject, pattern) {
			return true
		}
	}
	return false
}

// Process runs the quote pipeline over the email body. Segment dates are
// anchored to the year the email was received.
func (h *QuotationEmailHandler) Process(ctx context.Context, email *entity.Email) (string, error) {
	if id, ok := h.archivedQuoteID(ctx, email.EmailID); ok {
		h.logger.Info("Email already archived", "emailID", email.EmailID, "quoteID", id)
		return id, nil
	}

	text := email.Body
	if text == "" {
		text = utils.CleanEmailText(email.HTMLBody)
	}

	opts := usecase.QuoteOptions{
		RAVPercent: h.ravPercent,
		Source:     entity.SourceEmail,
		SourceID:   email.EmailID,
	}
	if !email.ReceivedAt.IsZero() {
		opts.Year = email.ReceivedAt.Year()
	}

	h.logger.Debug("Processing quotation email", "emailID", email.EmailID, "length", len(text))

	report, err := h.processor.Process(ctx, text, opts)
	if err != nil {
		return "", fmt.Errorf("process quotation email: %w", err)
	}
	if !report.HasContent() {
		return "", usecase.ErrNoQuotation
	}

	return report.ID, nil
}

func (h *QuotationEmailHandler) archivedQuoteID(ctx context.Context, emailID string) (string, bool) {
	if h.quoteRepo == nil || emailID == "" {
		return "", false
	}

	existing, err := h.quoteRepo.FindBySourceIDs(ctx, []string{emailID})
	if err != nil {
		h.logger.Warn("Failed to check archived quotes", "emailID", emailID, "error", err)
		return "", false
	}
	record, ok := existing[emailID]
	if !ok {
		return "", false
	}
	return record.ID, true
}
