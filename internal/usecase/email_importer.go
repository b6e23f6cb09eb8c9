package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pnr-quote-service/internal/domain/entity"
	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/metrics"
)

const pendingBatchSize = 100

// EmailImporter routes fetched emails to their handler and records the
// outcome in the email log.
type EmailImporter struct {
	emailRepo repository.EmailRepository
	router    SubjectRouter
	metrics   *metrics.Metrics
	logger    logger.Logger
	now       func() time.Time
}

// NewEmailImporter creates a new email importer
func NewEmailImporter(
	emailRepo repository.EmailRepository,
	router SubjectRouter,
	m *metrics.Metrics,
	logger logger.Logger,
) *EmailImporter {
	return &EmailImporter{
		emailRepo: emailRepo,
		router:    router,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// ProcessEmail processes a single email immediately after fetching.
// Handler failures are recorded on the email, not returned.
func (o *EmailImporter) ProcessEmail(ctx context.Context, email *entity.Email) error {
	handler := o.router.GetHandler(email.Subject)
	if handler == nil {
		o.logger.Debug("No handler found for email",
			"subject", email.Subject,
			"emailID", email.EmailID)

		return o.emailRepo.MarkAsProcessedByEmailID(ctx, email.EmailID, entity.StatusSkipped, "none", "No matching handler found", "")
	}

	o.logger.Info("Processing email with handler",
		"emailID", email.EmailID,
		"handler", handler.Name(),
		"subject", email.Subject)

	if err := o.emailRepo.UpdateStatusByEmailID(ctx, email.EmailID, entity.StatusProcessing, o.now()); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	quoteID, err := handler.Process(ctx, email)
	switch {
	case errors.Is(err, ErrNoQuotation):
		o.logger.Info("Email has no quotation", "emailID", email.EmailID)
		return o.emailRepo.MarkAsProcessedByEmailID(ctx, email.EmailID, entity.StatusSkipped, handler.Name(), err.Error(), "")

	case err != nil:
		o.logger.Error("Handler failed to process email",
			"emailID", email.EmailID,
			"handler", handler.Name(),
			"error", err)
		if o.metrics != nil {
			o.metrics.ErrorsCount.WithLabelValues("email").Inc()
		}

		if markErr := o.emailRepo.MarkAsProcessedByEmailID(ctx, email.EmailID, entity.StatusFailed, handler.Name(), err.Error(), ""); markErr != nil {
			o.logger.Error("Failed to mark email as failed", "emailID", email.EmailID, "error", markErr)
		}
		return nil
	}

	if o.metrics != nil {
		o.metrics.EmailsImported.Inc()
	}
	o.logger.Info("Email processed successfully",
		"emailID", email.EmailID,
		"handler", handler.Name(),
		"quoteID", quoteID)

	return o.emailRepo.MarkAsProcessedByEmailID(ctx, email.EmailID, entity.StatusCompleted, handler.Name(), "", quoteID)
}

// ProcessPendingEmails processes any emails that were missed or failed
func (o *EmailImporter) ProcessPendingEmails(ctx context.Context) error {
	if err := o.emailRepo.ResetProcessingEmails(ctx); err != nil {
		o.logger.Error("Failed to reset stale emails", "error", err)
	}

	emails, err := o.emailRepo.FindUnprocessed(ctx, pendingBatchSize)
	if err != nil {
		return fmt.Errorf("failed to find unprocessed emails: %w", err)
	}

	if len(emails) == 0 {
		return nil
	}

	o.logger.Info("Processing pending emails", "count", len(emails))

	for _, email := range emails {
		if err := o.ProcessEmail(ctx, email); err != nil {
			o.logger.Error("Failed to process pending email",
				"emailID", email.EmailID,
				"error", err)
		}
	}

	return nil
}
