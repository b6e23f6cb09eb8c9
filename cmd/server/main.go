package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/internal/infrastructure/config"
	"pnr-quote-service/internal/infrastructure/oauth"
	"pnr-quote-service/internal/infrastructure/persistence"
	"pnr-quote-service/internal/infrastructure/router"
	"pnr-quote-service/internal/interface/api"
	"pnr-quote-service/internal/interface/decoder"
	"pnr-quote-service/internal/interface/gmail"
	repo "pnr-quote-service/internal/interface/repository"
	"pnr-quote-service/internal/usecase"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/metrics"
	"pnr-quote-service/pkg/utils"
	"pnr-quote-service/templates"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	zapLog := logger.NewLogger(cfg.LogLevel)
	defer zapLog.Sync()
	var log logger.Logger = zapLog.With("version", cfg.AppVersion)
	log.Info("Starting PNR Quote Service")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	// Catalog: PostgreSQL first when configured, built-in tables after
	airlines := []repository.AirlineRepository{}
	airports := []repository.AirportRepository{}
	if cfg.PostgresDSN != "" {
		log.Info("Connecting to PostgreSQL catalog")
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airlines = append(airlines, repo.NewGormAirlineRepository(gormDB))
		airports = append(airports, repo.NewGormAirportRepository(gormDB))
	}
	airlines = append(airlines, repo.NewStaticAirlineRepository())
	airports = append(airports, repo.NewStaticAirportRepository())
	catalog := usecase.NewCatalogLookup(airlines, airports, log)

	// Segment decoding: external decoder when configured, internal parser otherwise
	var primary usecase.SegmentDecoder
	if cfg.PnrshPath != "" {
		pnrsh, err := decoder.NewProcessDecoder(cfg.PnrshPath, cfg.PnrshTimeout, log)
		if err != nil {
			log.Fatal("Failed to create external decoder", "error", err)
		}
		primary = pnrsh
		log.Info("External segment decoder enabled", "path", cfg.PnrshPath)
	}
	segmentDecoder := usecase.NewFallbackDecoder(primary, utils.NewFlightSegmentDecoder(catalog, log), m, log)

	// Archive and email log
	var (
		mongoClient *mongo.Client
		quoteRepo   repository.QuoteRepository
		emailRepo   repository.EmailRepository
	)
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		mongoClient = client
		quoteRepo = repo.NewMongoQuoteRepository(db, log)
		emailRepo = repo.NewMongoEmailRepository(db, log)
	} else {
		log.Warn("MONGODB_DSN not set, quotes will not be archived")
	}

	parser := utils.NewQuotationParser(log)
	processor := usecase.NewQuotationProcessor(parser, segmentDecoder, quoteRepo, m, log)

	// Gmail import
	gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, "", log)
	switch {
	case !gmailOAuth.Configured():
		log.Info("Gmail credentials not set, email import disabled")
	case emailRepo == nil:
		log.Warn("Gmail credentials set but MongoDB is not configured, email import disabled")
	default:
		subjectRouter := router.NewSubjectRouter(log)
		subjectRouter.Register(templates.NewQuotationEmailHandler(processor, quoteRepo, cfg.DefaultRAVPercent, cfg.GmailSubjects, log))
		importer := usecase.NewEmailImporter(emailRepo, subjectRouter, m, log)

		gmailService, err := gmail.NewGmailService(ctx, gmailOAuth.GetTokenSource(ctx), emailRepo, importer, log, cfg.GmailPollInterval, cfg.GmailQuery)
		if err != nil {
			log.Fatal("Failed to create Gmail service", "error", err)
		}

		// Start Gmail polling in a goroutine
		go gmailService.StartPolling(ctx)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	api.NewHandler(parser, segmentDecoder, processor, quoteRepo, cfg.DefaultRAVPercent, log).Routes(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("PNR Quote Service stopped")
}
