package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"pnr-quote-service/internal/domain/entity"
	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const (
	// initialLookback bounds the first fetch when the email log is empty
	initialLookback     = 30 * 24 * time.Hour
	defaultPollInterval = time.Minute
	listPageSize        = 500
)

// EmailProcessor handles one stored email
type EmailProcessor interface {
	ProcessEmail(ctx context.Context, email *entity.Email) error
	ProcessPendingEmails(ctx context.Context) error
}

// GmailService polls a mailbox and hands new messages to the importer
type GmailService struct {
	gmailService *gmail.Service
	emailRepo    repository.EmailRepository
	importer     EmailProcessor
	logger       logger.Logger
	pollInterval time.Duration
	query        string
}

// NewGmailService creates a new Gmail service. query narrows the mailbox
// search, e.g. "subject:cotação".
func NewGmailService(
	ctx context.Context,
	tokenSource oauth2.TokenSource,
	emailRepo repository.EmailRepository,
	importer EmailProcessor,
	logger logger.Logger,
	pollInterval time.Duration,
	query string,
) (*GmailService, error) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailService{
		gmailService: service,
		emailRepo:    emailRepo,
		importer:     importer,
		logger:       logger,
		pollInterval: pollInterval,
		query:        query,
	}, nil
}

// StartPolling polls Gmail until ctx is cancelled
func (s *GmailService) StartPolling(ctx context.Context) {
	// Process any pending emails on startup
	if err := s.importer.ProcessPendingEmails(ctx); err != nil {
		s.logger.Error("Failed to process pending emails on startup", "error", err)
	}
	if err := s.FetchAndProcessEmails(ctx); err != nil {
		s.logger.Error("Error polling Gmail", "error", err)
	}

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Gmail polling stopped")
			return
		case <-ticker.C:
			s.logger.Debug("Polling Gmail for new emails")
			if err := s.FetchAndProcessEmails(ctx); err != nil {
				s.logger.Error("Error polling Gmail", "error", err)
			}
		}
	}
}

// FetchAndProcessEmails fetches new emails and processes them immediately
func (s *GmailService) FetchAndProcessEmails(ctx context.Context) error {
	lastEmail, err := s.emailRepo.GetLastEmail(ctx)
	if err != nil {
		s.logger.Error("Failed to get last email", "error", err)
	}

	fetchFrom := time.Now().Add(-initialLookback)
	if lastEmail != nil {
		fetchFrom = lastEmail.ReceivedAt
	}

	query := BuildQuery(s.query, fetchFrom)
	messages, err := CollectMessages(func(pageToken string) (*gmail.ListMessagesResponse, error) {
		return s.gmailService.Users.Messages.List("me").
			Q(query).
			MaxResults(listPageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
	})
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}

	if len(messages) == 0 {
		s.logger.Debug("No new messages found")
		return nil
	}

	emailIDs := make([]string, len(messages))
	for i, msg := range messages {
		emailIDs[i] = msg.Id
	}

	existing, err := s.emailRepo.FindByEmailIDs(ctx, emailIDs)
	if err != nil {
		s.logger.Error("Failed to check existing emails", "error", err)
		existing = make(map[string]*entity.Email)
	}

	newCount := 0
	for _, msg := range messages {
		if _, ok := existing[msg.Id]; ok {
			continue
		}

		fullMsg, err := s.gmailService.Users.Messages.Get("me", msg.Id).Context(ctx).Do()
		if err != nil {
			s.logger.Error("Failed to get message", "msgId", msg.Id, "error", err)
			continue
		}

		email, err := ConvertMessage(fullMsg)
		if err != nil {
			s.logger.Error("Failed to convert message", "msgId", msg.Id, "error", err)
			continue
		}

		if err := s.emailRepo.Save(ctx, email); err != nil {
			s.logger.Error("Failed to save email", "emailID", email.EmailID, "error", err)
			continue
		}
		newCount++

		if err := s.importer.ProcessEmail(ctx, email); err != nil {
			s.logger.Error("Failed to process email", "emailID", email.EmailID, "error", err)
		}
	}

	s.logger.Info("Email fetch completed",
		"totalMessages", len(messages),
		"newEmails", newCount)

	return nil
}

// CollectMessages calls fetch once per result page, following
// NextPageToken until the listing is exhausted.
func CollectMessages(fetch func(pageToken string) (*gmail.ListMessagesResponse, error)) ([]*gmail.Message, error) {
	var messages []*gmail.Message
	pageToken := ""
	for {
		resp, err := fetch(pageToken)
		if err != nil {
			return nil, err
		}
		messages = append(messages, resp.Messages...)
		if resp.NextPageToken == "" {
			return messages, nil
		}
		pageToken = resp.NextPageToken
	}
}

// BuildQuery combines the configured search with a received-after bound
func BuildQuery(query string, after time.Time) string {
	bound := fmt.Sprintf("after:%s", after.Format("2006/01/02"))
	if q := strings.TrimSpace(query); q != "" {
		return q + " " + bound
	}
	return bound
}

// ConvertMessage converts a Gmail message to a domain email. Nested
// multipart bodies are walked depth first; the first text/plain and
// text/html parts win.
func ConvertMessage(msg *gmail.Message) (*entity.Email, error) {
	email := &entity.Email{
		EmailID:       msg.Id,
		Labels:        msg.LabelIds,
		ProcessStatus: entity.StatusPending,
		ReceivedAt:    time.UnixMilli(msg.InternalDate).UTC(),
	}
	if msg.Payload == nil {
		return email, nil
	}

	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "From":
			email.From = header.Value
		case "To":
			email.To = header.Value
		case "Subject":
			email.Subject = header.Value
		}
	}

	if err := collectBodies(msg.Payload, email); err != nil {
		return nil, err
	}
	return email, nil
}

func collectBodies(part *gmail.MessagePart, email *entity.Email) error {
	if part.Body != nil && part.Body.Data != "" && part.Filename == "" {
		data, err := decodeBody(part.Body.Data)
		if err != nil {
			return fmt.Errorf("decode %s part: %w", part.MimeType, err)
		}
		switch {
		case strings.HasPrefix(part.MimeType, "text/html"):
			if email.HTMLBody == "" {
				email.HTMLBody = data
			}
		case strings.HasPrefix(part.MimeType, "text/plain"), part.MimeType == "":
			if email.Body == "" {
				email.Body = data
			}
		}
	}

	for _, child := range part.Parts {
		if err := collectBodies(child, email); err != nil {
			return err
		}
	}
	return nil
}

// decodeBody accepts padded and unpadded base64url, as Gmail emits both
func decodeBody(data string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return "", err
		}
	}
	return string(raw), nil
}
