package usecase

import (
	"context"

	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/metrics"
	"pnr-quote-service/pkg/utils"
)

//go:generate mockgen -source=segment_decoding.go -destination=mocks/mock_segment_decoder.go -package=mocks

// SegmentDecoder turns raw segment lines into an itinerary. A nil
// itinerary with a nil error means nothing was recognised.
type SegmentDecoder interface {
	Decode(ctx context.Context, lines []string, year int) (*utils.DecodedItinerary, error)
}

// FallbackDecoder prefers the primary decoder and quietly falls back to
// the secondary one when the primary fails or finds nothing.
type FallbackDecoder struct {
	primary  SegmentDecoder
	fallback SegmentDecoder
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewFallbackDecoder creates a decoder strategy. primary may be nil.
func NewFallbackDecoder(primary, fallback SegmentDecoder, m *metrics.Metrics, logger logger.Logger) *FallbackDecoder {
	return &FallbackDecoder{
		primary:  primary,
		fallback: fallback,
		metrics:  m,
		logger:   logger,
	}
}

// Decode never surfaces a primary decoder failure
func (d *FallbackDecoder) Decode(ctx context.Context, lines []string, year int) (*utils.DecodedItinerary, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	if d.primary != nil {
		it, err := d.primary.Decode(ctx, lines, year)
		if err == nil && it != nil && len(it.Legs) > 0 {
			d.record(it)
			return it, nil
		}
		d.logger.Debug("Primary segment decoder gave no result, falling back", "error", err)
		if d.metrics != nil {
			d.metrics.DecoderFallbacks.Inc()
		}
	}

	it, err := d.fallback.Decode(ctx, lines, year)
	if err != nil {
		return nil, err
	}
	if it != nil {
		d.record(it)
	}
	return it, nil
}

func (d *FallbackDecoder) record(it *utils.DecodedItinerary) {
	if d.metrics != nil {
		d.metrics.LegsDecoded.WithLabelValues(it.Source).Add(float64(len(it.Legs)))
	}
}
