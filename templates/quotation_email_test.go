package templates_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pnr-quote-service/internal/domain/entity"
	repomocks "pnr-quote-service/internal/domain/repository/mocks"
	"pnr-quote-service/internal/usecase"
	"pnr-quote-service/internal/usecase/mocks"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/utils"
	"pnr-quote-service/templates"
)

func withContent() *usecase.QuoteReport {
	return &usecase.QuoteReport{
		ID: "quote-1",
		Quotations: []usecase.QuotationReport{{
			Quotation: utils.Quotation{FareLines: []utils.FareLine{{Category: utils.CategoryAdult}}},
		}},
	}
}

func TestQuotationEmailHandler_CanHandle(t *testing.T) {
	t.Parallel()

	h := templates.NewQuotationEmailHandler(nil, nil, decimal.Zero, nil, logger.NewNopLogger())

	require.Equal(t, "quotation", h.Name())
	require.True(t, h.CanHandle("Re: COTAÇÃO GRU-CDG"))
	require.True(t, h.CanHandle("Cotacao familia Silva"))
	require.True(t, h.CanHandle("Fwd: PNR ABC123"))
	require.False(t, h.CanHandle("Weekly newsletter"))

	custom := templates.NewQuotationEmailHandler(nil, nil, decimal.Zero, []string{"Tarifario"}, logger.NewNopLogger())
	require.True(t, custom.CanHandle("tarifario de abril"))
	require.False(t, custom.CanHandle("Cotação"))
}

func TestQuotationEmailHandler_Process(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	processor := mocks.NewMockQuoteProcessor(ctrl)
	email := &entity.Email{
		EmailID:    "msg-1",
		Body:       "tarifa usd 100 + txs usd 10",
		HTMLBody:   "<p>ignored</p>",
		ReceivedAt: time.Date(2025, time.December, 2, 10, 0, 0, 0, time.UTC),
	}

	processor.EXPECT().
		Process(gomock.Any(), "tarifa usd 100 + txs usd 10", usecase.QuoteOptions{
			RAVPercent: decimal.NewFromInt(10),
			Year:       2025,
			Source:     entity.SourceEmail,
			SourceID:   "msg-1",
		}).
		Return(withContent(), nil)

	h := templates.NewQuotationEmailHandler(processor, nil, decimal.NewFromInt(10), nil, logger.NewNopLogger())

	// Act
	id, err := h.Process(context.Background(), email)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "quote-1", id)
}

func TestQuotationEmailHandler_ProcessHTMLOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	processor := mocks.NewMockQuoteProcessor(ctrl)
	email := &entity.Email{EmailID: "msg-2", HTMLBody: "<div>tarifa usd 100 + txs usd 10</div><div>in&nbsp;3%</div>"}

	processor.EXPECT().
		Process(gomock.Any(), "tarifa usd 100 + txs usd 10\nin 3%", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts usecase.QuoteOptions) (*usecase.QuoteReport, error) {
			require.Zero(t, opts.Year)
			return withContent(), nil
		})

	h := templates.NewQuotationEmailHandler(processor, nil, decimal.Zero, nil, logger.NewNopLogger())
	_, err := h.Process(context.Background(), email)
	require.NoError(t, err)
}

func TestQuotationEmailHandler_NoQuotation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	processor := mocks.NewMockQuoteProcessor(ctrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&usecase.QuoteReport{Quotations: []usecase.QuotationReport{{}}}, nil)

	h := templates.NewQuotationEmailHandler(processor, nil, decimal.Zero, nil, logger.NewNopLogger())
	_, err := h.Process(context.Background(), &entity.Email{EmailID: "msg-3", Body: "obrigado"})
	require.ErrorIs(t, err, usecase.ErrNoQuotation)
}

func TestQuotationEmailHandler_ProcessorError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	processor := mocks.NewMockQuoteProcessor(ctrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, utils.ErrInvalidAmount)

	h := templates.NewQuotationEmailHandler(processor, nil, decimal.Zero, nil, logger.NewNopLogger())
	_, err := h.Process(context.Background(), &entity.Email{EmailID: "msg-4", Body: "tarifa usd 1.2.3 + txs usd 1"})
	require.ErrorIs(t, err, utils.ErrInvalidAmount)
	require.False(t, errors.Is(err, usecase.ErrNoQuotation))
}

func TestQuotationEmailHandler_SkipsArchivedEmail(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	processor := mocks.NewMockQuoteProcessor(ctrl)
	quoteRepo := repomocks.NewMockQuoteRepository(ctrl)

	quoteRepo.EXPECT().
		FindBySourceIDs(gomock.Any(), []string{"msg-5"}).
		Return(map[string]*entity.QuoteRecord{"msg-5": {ID: "quote-archived", SourceID: "msg-5"}}, nil)
	processor.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	h := templates.NewQuotationEmailHandler(processor, quoteRepo, decimal.Zero, nil, logger.NewNopLogger())

	// Act
	id, err := h.Process(context.Background(), &entity.Email{EmailID: "msg-5", Body: "tarifa usd 100 + txs usd 10"})

	// Assert
	require.NoError(t, err)
	require.Equal(t, "quote-archived", id)
}

func TestQuotationEmailHandler_ProcessesWhenNotArchived(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing map[string]*entity.QuoteRecord
		err      error
	}{
		{name: "no record", existing: map[string]*entity.QuoteRecord{}},
		{name: "lookup error", err: errors.New("connection reset")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			processor := mocks.NewMockQuoteProcessor(ctrl)
			quoteRepo := repomocks.NewMockQuoteRepository(ctrl)

			quoteRepo.EXPECT().FindBySourceIDs(gomock.Any(), []string{"msg-6"}).Return(tc.existing, tc.err)
			processor.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Return(withContent(), nil)

			h := templates.NewQuotationEmailHandler(processor, quoteRepo, decimal.Zero, nil, logger.NewNopLogger())
			id, err := h.Process(context.Background(), &entity.Email{EmailID: "msg-6", Body: "tarifa usd 100 + txs usd 10"})

			require.NoError(t, err)
			require.Equal(t, "quote-1", id)
		})
	}
}
