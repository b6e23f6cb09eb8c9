package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pnr-quote-service/internal/domain/entity"
	repomocks "pnr-quote-service/internal/domain/repository/mocks"
	"pnr-quote-service/internal/usecase"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/utils"
)

const sampleQuote = "tarifa usd 22286.00 + txs usd 594.00\n" +
	"Fee usd 50.00\n" +
	"AF 459 14APR GRUCDG HS2 1915 #1115\n" +
	"AF 454 07MAY CDGGRU HS2 2330 #0615\n"

func newProcessor(t *testing.T, repo *repomocks.MockQuoteRepository) *usecase.QuotationProcessor {
	t.Helper()
	m, _ := newTestMetrics()
	log := logger.NewNopLogger()
	decoder := usecase.NewFallbackDecoder(nil, internalDecoder(), m, log)

	if repo == nil {
		return usecase.NewQuotationProcessor(utils.NewQuotationParser(log), decoder, nil, m, log)
	}
	return usecase.NewQuotationProcessor(utils.NewQuotationParser(log), decoder, repo, m, log)
}

func TestQuotationProcessor_Process(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockQuoteRepository(ctrl)

	var saved *entity.QuoteRecord
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.QuoteRecord) error {
		r.ID = "quote-1"
		saved = r
		return nil
	})

	opts := usecase.QuoteOptions{
		RAVPercent: decimal.NewFromInt(10),
		Year:       2026,
		Source:     entity.SourceAPI,
	}

	// Act
	report, err := newProcessor(t, repo).Process(context.Background(), sampleQuote, opts)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "quote-1", report.ID)
	require.Equal(t, 2026, report.Year)
	require.False(t, report.IsMulti)
	require.Len(t, report.Quotations, 1)

	entry := report.Quotations[0]
	require.Len(t, entry.Pricing, 1)
	require.Equal(t, "2228.60", entry.Pricing[0].Pricing.RAV.String())
	require.Equal(t, "25158.60", entry.Pricing[0].Pricing.Total.String())

	require.NotNil(t, entry.Itinerary)
	require.Len(t, entry.Itinerary.Legs, 2)
	require.Equal(t, 2, entry.Itinerary.OvernightCount)

	require.NotNil(t, saved)
	require.Equal(t, entity.SourceAPI, saved.Source)
	require.Equal(t, "USD", saved.Currency)
	require.Equal(t, "22286.00", saved.Fare)
	require.Equal(t, "50.00", saved.Fee)
	require.Equal(t, "25158.60", saved.Total)
	require.Equal(t, "10", saved.RAVPercent)
	require.Equal(t, 2, saved.LegCount)
	require.Equal(t, 2, saved.OvernightCount)
	require.Equal(t, utils.SourceInternal, saved.DecoderSource)
	require.Equal(t, sampleQuote, saved.RawText)

	var archived map[string]any
	require.NoError(t, json.Unmarshal([]byte(saved.Report), &archived))
	require.Contains(t, archived, "quotations")
}

func TestQuotationProcessor_DefaultsYear(t *testing.T) {
	t.Parallel()

	report, err := newProcessor(t, nil).Process(context.Background(), sampleQuote, usecase.QuoteOptions{})
	require.NoError(t, err)
	require.NotZero(t, report.Year)
	require.Equal(t, report.Year, report.Quotations[0].Itinerary.Legs[0].DepartureTime.Year())
}

func TestQuotationProcessor_MultiQuotation(t *testing.T) {
	t.Parallel()

	text := "tarifa usd 1000.00 + txs usd 100.00\n" +
		"AF 459 14APR GRUCDG HS2 1915 #1115\n" +
		"==\n" +
		"tarifa eur 2.000,00 + txs eur 200,00\n"

	report, err := newProcessor(t, nil).Process(context.Background(), text, usecase.QuoteOptions{
		RAVPercent: decimal.NewFromInt(5),
		Year:       2026,
	})
	require.NoError(t, err)
	require.True(t, report.IsMulti)
	require.Len(t, report.Quotations, 2)
	require.NotNil(t, report.Quotations[0].Itinerary)
	require.Nil(t, report.Quotations[1].Itinerary)
	require.Equal(t, "2300.00", report.Quotations[1].Pricing[0].Pricing.Total.String())
}

func TestQuotationProcessor_InvalidAmount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockQuoteRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := newProcessor(t, repo).Process(context.Background(), "tarifa usd 1.2.3 + txs usd 10", usecase.QuoteOptions{Year: 2026})
	require.ErrorIs(t, err, utils.ErrInvalidAmount)
}

func TestQuotationProcessor_InvalidRAVPercent(t *testing.T) {
	t.Parallel()

	for _, pct := range []int64{-1, 101} {
		_, err := newProcessor(t, nil).Process(context.Background(), sampleQuote, usecase.QuoteOptions{RAVPercent: decimal.NewFromInt(pct)})
		require.ErrorIs(t, err, utils.ErrInvalidPricingInput)
	}
}

func TestQuotationProcessor_EmptyInputIsNotArchived(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockQuoteRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	report, err := newProcessor(t, repo).Process(context.Background(), "bom dia, tudo bem?", usecase.QuoteOptions{Year: 2026})
	require.NoError(t, err)
	require.False(t, report.HasContent())
	require.Empty(t, report.ID)
	require.Len(t, report.Quotations, 1)
	require.Empty(t, report.Quotations[0].Pricing)
}

func TestQuotationProcessor_ArchiveFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockQuoteRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))

	report, err := newProcessor(t, repo).Process(context.Background(), sampleQuote, usecase.QuoteOptions{Year: 2026})
	require.NoError(t, err)
	require.Empty(t, report.ID)
	require.Len(t, report.Quotations, 1)
}
