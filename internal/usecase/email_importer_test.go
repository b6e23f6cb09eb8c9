package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pnr-quote-service/internal/domain/entity"
	repomocks "pnr-quote-service/internal/domain/repository/mocks"
	"pnr-quote-service/internal/usecase"
	"pnr-quote-service/internal/usecase/mocks"
	"pnr-quote-service/pkg/logger"
)

type importerFixture struct {
	emailRepo *repomocks.MockEmailRepository
	router    *mocks.MockSubjectRouter
	handler   *mocks.MockTemplateHandler
	importer  *usecase.EmailImporter
}

func newImporterFixture(t *testing.T) (*importerFixture, func(string, map[string]string) float64) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m, reg := newTestMetrics()

	f := &importerFixture{
		emailRepo: repomocks.NewMockEmailRepository(ctrl),
		router:    mocks.NewMockSubjectRouter(ctrl),
		handler:   mocks.NewMockTemplateHandler(ctrl),
	}
	f.handler.EXPECT().Name().Return("quotation").AnyTimes()
	f.importer = usecase.NewEmailImporter(f.emailRepo, f.router, m, logger.NewNopLogger())

	return f, func(name string, labels map[string]string) float64 {
		return counterValue(t, reg, name, labels)
	}
}

func TestEmailImporter_ProcessEmail_Completed(t *testing.T) {
	t.Parallel()

	// Arrange
	f, counter := newImporterFixture(t)
	email := &entity.Email{EmailID: "msg-1", Subject: "Cotação AF GRU-CDG"}

	gomock.InOrder(
		f.router.EXPECT().GetHandler(email.Subject).Return(f.handler),
		f.emailRepo.EXPECT().UpdateStatusByEmailID(gomock.Any(), "msg-1", entity.StatusProcessing, gomock.Any()).Return(nil),
		f.handler.EXPECT().Process(gomock.Any(), email).Return("quote-9", nil),
		f.emailRepo.EXPECT().MarkAsProcessedByEmailID(gomock.Any(), "msg-1", entity.StatusCompleted, "quotation", "", "quote-9").Return(nil),
	)

	// Act
	err := f.importer.ProcessEmail(context.Background(), email)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 1.0, counter("emails_imported_total", nil))
}

func TestEmailImporter_ProcessEmail_NoHandler(t *testing.T) {
	t.Parallel()

	f, counter := newImporterFixture(t)
	email := &entity.Email{EmailID: "msg-2", Subject: "Newsletter"}

	f.router.EXPECT().GetHandler("Newsletter").Return(nil)
	f.emailRepo.EXPECT().MarkAsProcessedByEmailID(gomock.Any(), "msg-2", entity.StatusSkipped, "none", gomock.Any(), "").Return(nil)

	require.NoError(t, f.importer.ProcessEmail(context.Background(), email))
	require.Zero(t, counter("emails_imported_total", nil))
}

func TestEmailImporter_ProcessEmail_NoQuotation(t *testing.T) {
	t.Parallel()

	f, _ := newImporterFixture(t)
	email := &entity.Email{EmailID: "msg-3", Subject: "Cotação"}

	f.router.EXPECT().GetHandler(gomock.Any()).Return(f.handler)
	f.emailRepo.EXPECT().UpdateStatusByEmailID(gomock.Any(), "msg-3", entity.StatusProcessing, gomock.Any()).Return(nil)
	f.handler.EXPECT().Process(gomock.Any(), email).Return("", fmt.Errorf("wrapped: %w", usecase.ErrNoQuotation))
	f.emailRepo.EXPECT().MarkAsProcessedByEmailID(gomock.Any(), "msg-3", entity.StatusSkipped, "quotation", gomock.Any(), "").Return(nil)

	require.NoError(t, f.importer.ProcessEmail(context.Background(), email))
}

func TestEmailImporter_ProcessEmail_HandlerFailure(t *testing.T) {
	t.Parallel()

	// Arrange
	f, counter := newImporterFixture(t)
	email := &entity.Email{EmailID: "msg-4", Subject: "Cotação"}

	f.router.EXPECT().GetHandler(gomock.Any()).Return(f.handler)
	f.emailRepo.EXPECT().UpdateStatusByEmailID(gomock.Any(), "msg-4", entity.StatusProcessing, gomock.Any()).Return(nil)
	f.handler.EXPECT().Process(gomock.Any(), email).Return("", errors.New("invalid amount"))
	f.emailRepo.EXPECT().MarkAsProcessedByEmailID(gomock.Any(), "msg-4", entity.StatusFailed, "quotation", "invalid amount", "").Return(nil)

	// Act: failures stay on the email record
	err := f.importer.ProcessEmail(context.Background(), email)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 1.0, counter("errors_total", map[string]string{"operation": "email"}))
}

func TestEmailImporter_ProcessEmail_StatusUpdateFails(t *testing.T) {
	t.Parallel()

	f, _ := newImporterFixture(t)
	email := &entity.Email{EmailID: "msg-5", Subject: "Cotação"}

	f.router.EXPECT().GetHandler(gomock.Any()).Return(f.handler)
	f.emailRepo.EXPECT().UpdateStatusByEmailID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))
	f.handler.EXPECT().Process(gomock.Any(), gomock.Any()).Times(0)

	require.Error(t, f.importer.ProcessEmail(context.Background(), email))
}

func TestEmailImporter_ProcessPendingEmails(t *testing.T) {
	t.Parallel()

	// Arrange: reset fails but is only logged, two pending emails
	f, _ := newImporterFixture(t)
	pending := []*entity.Email{
		{EmailID: "a", Subject: "Newsletter"},
		{EmailID: "b", Subject: "Promo"},
	}

	f.emailRepo.EXPECT().ResetProcessingEmails(gomock.Any()).Return(errors.New("timeout"))
	f.emailRepo.EXPECT().FindUnprocessed(gomock.Any(), 100).Return(pending, nil)
	f.router.EXPECT().GetHandler(gomock.Any()).Return(nil).Times(2)
	f.emailRepo.EXPECT().MarkAsProcessedByEmailID(gomock.Any(), "a", entity.StatusSkipped, "none", gomock.Any(), "").Return(nil)
	f.emailRepo.EXPECT().MarkAsProcessedByEmailID(gomock.Any(), "b", entity.StatusSkipped, "none", gomock.Any(), "").Return(errors.New("gone"))

	// Act
	err := f.importer.ProcessPendingEmails(context.Background())

	// Assert
	require.NoError(t, err)
}

func TestEmailImporter_ProcessPendingEmails_FindFails(t *testing.T) {
	t.Parallel()

	f, _ := newImporterFixture(t)
	f.emailRepo.EXPECT().ResetProcessingEmails(gomock.Any()).Return(nil)
	f.emailRepo.EXPECT().FindUnprocessed(gomock.Any(), gomock.Any()).Return(nil, errors.New("mongo down"))

	require.Error(t, f.importer.ProcessPendingEmails(context.Background()))
}
