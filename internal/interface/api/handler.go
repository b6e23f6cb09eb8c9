package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pnr-quote-service/internal/domain/entity"
	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/internal/usecase"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/utils"
)

const (
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 1 << 20
)

// Handler serves the JSON API
type Handler struct {
	parser     *utils.QuotationParser
	decoder    usecase.SegmentDecoder
	processor  usecase.QuoteProcessor
	quoteRepo  repository.QuoteRepository
	ravPercent decimal.Decimal
	logger     logger.Logger
	now        func() time.Time
}

// NewHandler creates the API handler. quoteRepo may be nil, in which case
// GET /api/quotes answers 503.
func NewHandler(
	parser *utils.QuotationParser,
	decoder usecase.SegmentDecoder,
	processor usecase.QuoteProcessor,
	quoteRepo repository.QuoteRepository,
	ravPercent decimal.Decimal,
	logger logger.Logger,
) *Handler {
	return &Handler{
		parser:     parser,
		decoder:    decoder,
		processor:  processor,
		quoteRepo:  quoteRepo,
		ravPercent: ravPercent,
		logger:     logger,
		now:        time.Now,
	}
}

// Routes registers the API on mux
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/parse", h.withRequestID(h.handleParse))
	mux.HandleFunc("POST /api/decode", h.withRequestID(h.handleDecode))
	mux.HandleFunc("POST /api/price", h.withRequestID(h.handlePrice))
	mux.HandleFunc("POST /api/quote", h.withRequestID(h.handleQuote))
	mux.HandleFunc("GET /api/quotes", h.withRequestID(h.handleListQuotes))
}

type handlerFunc func(w http.ResponseWriter, r *http.Request, log logger.Logger)

func (h *Handler) withRequestID(next handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		log := h.logger.With("requestId", requestID, "path", r.URL.Path)
		start := time.Now()
		next(w, r, log)
		log.Debug("Request served", "duration", time.Since(start))
	}
}

type textRequest struct {
	Text string `json:"text"`
}

type decodeRequest struct {
	Lines []string `json:"lines"`
	Year  int      `json:"year"`
}

type quoteRequest struct {
	Text       string           `json:"text"`
	RAVPercent *decimal.Decimal `json:"ravPercent"`
	Year       int              `json:"year"`
	SourceID   string           `json:"sourceId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request, log logger.Logger) {
	var req textRequest
	if !decodeJSON(w, r, &req, log) {
		return
	}

	result, err := h.parser.Parse(req.Text)
	if err != nil {
		writeError(w, err, log)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleDecode(w http.ResponseWriter, r *http.Request, log logger.Logger) {
	var req decodeRequest
	if !decodeJSON(w, r, &req, log) {
		return
	}
	if req.Year == 0 {
		req.Year = h.now().Year()
	}

	it, err := h.decoder.Decode(r.Context(), req.Lines, req.Year)
	if err != nil {
		writeError(w, err, log)
		return
	}
	if it == nil {
		it = &utils.DecodedItinerary{Legs: []utils.FlightSegment{}}
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *Handler) handlePrice(w http.ResponseWriter, r *http.Request, log logger.Logger) {
	var in utils.PricingInput
	if !decodeJSON(w, r, &in, log) {
		return
	}
	if err := utils.ValidatePricingInput(in); err != nil {
		writeError(w, err, log)
		return
	}
	writeJSON(w, http.StatusOK, utils.ComputeTotals(in))
}

func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request, log logger.Logger) {
	var req quoteRequest
	if !decodeJSON(w, r, &req, log) {
		return
	}

	opts := usecase.QuoteOptions{
		RAVPercent: h.ravPercent,
		Year:       req.Year,
		Source:     entity.SourceAPI,
		SourceID:   req.SourceID,
	}
	if req.RAVPercent != nil {
		opts.RAVPercent = *req.RAVPercent
	}

	report, err := h.processor.Process(r.Context(), req.Text, opts)
	if err != nil {
		writeError(w, err, log)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleListQuotes(w http.ResponseWriter, r *http.Request, log logger.Logger) {
	if h.quoteRepo == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "quote archive is not configured"})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	records, err := h.quoteRepo.FindRecent(r.Context(), limit)
	if err != nil {
		writeError(w, err, log)
		return
	}
	if records == nil {
		records = []*entity.QuoteRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, log logger.Logger) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		log.Debug("Rejected request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

// writeError maps domain errors to status codes
func writeError(w http.ResponseWriter, err error, log logger.Logger) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, utils.ErrInvalidAmount), errors.Is(err, utils.ErrInvalidPricingInput):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
	} else {
		log.Info("Request rejected", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
