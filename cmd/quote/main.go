package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"pnr-quote-service/internal/domain/entity"
	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/internal/infrastructure/config"
	"pnr-quote-service/internal/interface/decoder"
	repo "pnr-quote-service/internal/interface/repository"
	"pnr-quote-service/internal/usecase"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/utils"
)

// Reads a quotation from a file argument or stdin and prints the JSON report.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	var (
		ravFlag   string
		year      int
		pnrshPath string
		level     string
	)
	flag.StringVar(&ravFlag, "rav", cfg.DefaultRAVPercent.String(), "RAV percentage applied to each fare")
	flag.IntVar(&year, "year", 0, "year segment dates fall in (default current year)")
	flag.StringVar(&pnrshPath, "decode", cfg.PnrshPath, "path to an external segment decoder (optional)")
	flag.StringVar(&level, "level", "warn", "log level")
	flag.Parse()

	log := logger.NewLogger(level)
	defer log.Sync()

	ravPercent, err := decimal.NewFromString(ravFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -rav %q: %v\n", ravFlag, err)
		os.Exit(2)
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	catalog := usecase.NewCatalogLookup(
		[]repository.AirlineRepository{repo.NewStaticAirlineRepository()},
		[]repository.AirportRepository{repo.NewStaticAirportRepository()},
		log,
	)

	var primary usecase.SegmentDecoder
	if pnrshPath != "" {
		pnrsh, err := decoder.NewProcessDecoder(pnrshPath, cfg.PnrshTimeout, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decoder: %v\n", err)
			os.Exit(1)
		}
		primary = pnrsh
	}

	processor := usecase.NewQuotationProcessor(
		utils.NewQuotationParser(log),
		usecase.NewFallbackDecoder(primary, utils.NewFlightSegmentDecoder(catalog, log), nil, log),
		nil,
		nil,
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := processor.Process(ctx, text, usecase.QuoteOptions{
		RAVPercent: ravPercent,
		Year:       year,
		Source:     entity.SourceCLI,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "quote: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
