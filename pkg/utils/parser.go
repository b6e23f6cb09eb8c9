package utils

import (
	"regexp"
	"strings"

	"pnr-quote-service/pkg/logger"
)

// blockSeparatorRe matches a line made only of '=' (two or more).
var blockSeparatorRe = regexp.MustCompile(`(?m)^[ \t]*={2,}[ \t]*$`)

// QuotationParser turns raw PNR text into one or more quotations
type QuotationParser struct {
	extractor *FieldExtractor
	logger    logger.Logger
}

// NewQuotationParser creates a new quotation parser with dependencies
func NewQuotationParser(logger logger.Logger) *QuotationParser {
	return &QuotationParser{
		extractor: NewFieldExtractor(),
		logger:    logger,
	}
}

// Parse extracts every quotation found in text. Input split by "==" lines
// yields one quotation per block that carries fares or segment lines; if no
// block qualifies, or there is nothing to split, the whole text is a single
// quotation.
func (p *QuotationParser) Parse(text string) (*ParseResult, error) {
	text = normalizeNewlines(text)
	blocks := SplitBlocks(text)

	if len(blocks) > 1 {
		p.logger.Debug("Multiple quotation blocks detected", "blocks", len(blocks))

		var quotations []Quotation
		for i, block := range blocks {
			q, err := p.extractor.Extract(block)
			if err != nil {
				p.logger.Warn("Failed to extract quotation block", "block", i, "error", err)
				return nil, err
			}
			if !q.HasContent() {
				p.logger.Debug("Discarding block without fares or segments", "block", i)
				continue
			}
			quotations = append(quotations, q)
		}

		if len(quotations) > 0 {
			p.logger.Info("Parsed multi-quotation input", "quotations", len(quotations))
			return &ParseResult{
				Quotation:  quotations[0],
				Quotations: quotations,
				IsMulti:    true,
			}, nil
		}

		p.logger.Debug("No usable block, parsing input as a single quotation")
	}

	q, err := p.extractor.Extract(text)
	if err != nil {
		p.logger.Warn("Failed to extract quotation", "error", err)
		return nil, err
	}

	p.logger.Info("Parsed quotation",
		"currency", q.Currency,
		"fareLines", len(q.FareLines),
		"segmentLines", len(q.SegmentLines))

	return &ParseResult{Quotation: q}, nil
}

// SplitBlocks splits text on separator lines and drops blank blocks.
func SplitBlocks(text string) []string {
	var blocks []string
	for _, part := range blockSeparatorRe.Split(text, -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			blocks = append(blocks, trimmed)
		}
	}
	return blocks
}
