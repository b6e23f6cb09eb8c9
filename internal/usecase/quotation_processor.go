package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pnr-quote-service/internal/domain/entity"
	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/metrics"
	"pnr-quote-service/pkg/utils"
)

// QuoteOptions are the caller-supplied knobs for one Process call
type QuoteOptions struct {
	RAVPercent decimal.Decimal
	// Year anchors segment dates; zero means the current year.
	Year     int
	Source   string
	SourceID string
}

// QuotationReport is one parsed quotation with its itinerary and prices
type QuotationReport struct {
	Quotation utils.Quotation         `json:"quotation"`
	Itinerary *utils.DecodedItinerary `json:"itinerary,omitempty"`
	Pricing   []utils.FarePricing     `json:"pricing"`
}

// QuoteReport is everything produced from one input text
type QuoteReport struct {
	ID         string            `json:"id,omitempty"`
	Source     string            `json:"source,omitempty"`
	SourceID   string            `json:"sourceId,omitempty"`
	Year       int               `json:"year"`
	RAVPercent decimal.Decimal   `json:"ravPercent"`
	IsMulti    bool              `json:"isMulti"`
	Quotations []QuotationReport `json:"quotations"`
}

// HasContent reports whether any quotation carried fares or segments
func (r *QuoteReport) HasContent() bool {
	for _, q := range r.Quotations {
		if q.Quotation.HasContent() {
			return true
		}
	}
	return false
}

// QuotationProcessor runs the parse, decode and price pipeline
type QuotationProcessor struct {
	parser    *utils.QuotationParser
	decoder   SegmentDecoder
	quoteRepo repository.QuoteRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
	now       func() time.Time
}

// NewQuotationProcessor creates a new processor. quoteRepo may be nil, in
// which case reports are not archived.
func NewQuotationProcessor(
	parser *utils.QuotationParser,
	decoder SegmentDecoder,
	quoteRepo repository.QuoteRepository,
	m *metrics.Metrics,
	logger logger.Logger,
) *QuotationProcessor {
	return &QuotationProcessor{
		parser:    parser,
		decoder:   decoder,
		quoteRepo: quoteRepo,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Process parses text and returns one report entry per quotation found
func (p *QuotationProcessor) Process(ctx context.Context, text string, opts QuoteOptions) (*QuoteReport, error) {
	start := time.Now()
	defer func() {
		if p.metrics != nil {
			p.metrics.ProcessingTime.Observe(time.Since(start).Seconds())
		}
	}()

	if opts.RAVPercent.IsNegative() || opts.RAVPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: ravPercent must be between 0 and 100, got %s", utils.ErrInvalidPricingInput, opts.RAVPercent)
	}
	if opts.Year == 0 {
		opts.Year = p.now().Year()
	}

	log := p.logger.With("source", opts.Source, "sourceId", opts.SourceID)

	parsed, err := p.parser.Parse(text)
	if err != nil {
		p.countError("parse")
		return nil, fmt.Errorf("parse quotation: %w", err)
	}

	report := &QuoteReport{
		Source:     opts.Source,
		SourceID:   opts.SourceID,
		Year:       opts.Year,
		RAVPercent: opts.RAVPercent,
		IsMulti:    parsed.IsMulti,
	}

	for i, q := range parsed.All() {
		entry := QuotationReport{
			Quotation: q,
			Pricing:   utils.PriceQuotation(q, opts.RAVPercent),
		}

		it, err := p.decoder.Decode(ctx, q.SegmentLines, opts.Year)
		if err != nil {
			log.Warn("Failed to decode segments", "quotation", i, "error", err)
			p.countError("decode")
		}
		entry.Itinerary = it

		report.Quotations = append(report.Quotations, entry)
	}

	if p.metrics != nil {
		p.metrics.QuotationsParsed.Add(float64(len(report.Quotations)))
	}

	if p.quoteRepo != nil && report.HasContent() {
		record, err := newQuoteRecord(report, text)
		if err == nil {
			err = p.quoteRepo.Save(ctx, record)
		}
		if err != nil {
			log.Error("Failed to archive quote", "error", err)
			p.countError("archive")
		} else {
			report.ID = record.ID
		}
	}

	log.Info("Quote processed",
		"quotations", len(report.Quotations),
		"isMulti", report.IsMulti,
		"id", report.ID)

	return report, nil
}

func (p *QuotationProcessor) countError(operation string) {
	if p.metrics != nil {
		p.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

// newQuoteRecord flattens the headline numbers of report into an archive
// record; the first quotation and its first fare line stand for the whole.
func newQuoteRecord(report *QuoteReport, text string) (*entity.QuoteRecord, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	record := &entity.QuoteRecord{
		Source:         report.Source,
		SourceID:       report.SourceID,
		RAVPercent:     report.RAVPercent.String(),
		Total:          utils.ZeroAmount.String(),
		IsMulti:        report.IsMulti,
		QuotationCount: len(report.Quotations),
		RawText:        text,
		Report:         string(raw),
	}

	first := report.Quotations[0]
	q := first.Quotation
	record.Currency = string(q.Currency)
	record.Fare = q.Fare.String()
	record.BaseTax = q.BaseTax.String()
	record.Fee = q.Fee.String()
	record.Incentive = q.Incentive.String()
	record.Penalty = q.Penalty.String()
	if len(first.Pricing) > 0 {
		record.Total = first.Pricing[0].Pricing.Total.String()
	}

	for _, entry := range report.Quotations {
		if entry.Itinerary == nil {
			continue
		}
		record.LegCount += len(entry.Itinerary.Legs)
		record.OvernightCount += entry.Itinerary.OvernightCount
		if record.DecoderSource == "" {
			record.DecoderSource = entry.Itinerary.Source
		}
	}

	return record, nil
}
