// Package server exposes the forecast engine over HTTP: a JSON API plus the
// embedded browser UI.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/avanzyl/property-forecast/internal/config"
	"github.com/avanzyl/property-forecast/internal/forecast"
	"github.com/avanzyl/property-forecast/internal/listing"
	"github.com/avanzyl/property-forecast/pkg/bond"
	"github.com/avanzyl/property-forecast/pkg/constants"
	"github.com/avanzyl/property-forecast/pkg/investment"
	"github.com/avanzyl/property-forecast/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

// chartSeriesYears is the span of the chart projection series.
const chartSeriesYears = 10

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	listings    *listing.Service
	schedules   *bond.ScheduleGenerator
}

// Options configures the HTTP handler.
type Options struct {
	Logger      *zap.Logger
	MaxBodySize int64
	Version     string
	Listings    *listing.Service
	RateLimiter *RateLimiter
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// forecast API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	listings := opts.Listings
	if listings == nil {
		listings = listing.NewService(nil, logger)
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     version,
		listings:    listings,
		schedules:   bond.NewScheduleGenerator(logger),
	}

	mux := http.NewServeMux()

	api := http.NewServeMux()
	api.HandleFunc("/api/forecast", h.handleForecast)
	api.HandleFunc("/api/listing", h.handleListing)
	api.HandleFunc("/api/chart", h.handleChart)
	api.HandleFunc("/api/schedule", h.handleSchedule)
	api.HandleFunc("/api/version", h.handleVersion)

	var apiHandler http.Handler = api
	if opts.RateLimiter != nil {
		apiHandler = RateLimitMiddleware(opts.RateLimiter, api)
	}
	mux.Handle("/api/", apiHandler)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

type forecastResponse struct {
	Forecast *forecast.Forecast `json:"forecast"`
	Duration string             `json:"duration"`
}

type listingRequest struct {
	URL string `json:"url"`
}

type chartPoint struct {
	investment.ProjectionPoint
	BondBalance float64 `json:"bondBalance"`
}

type chartResponse struct {
	Series   []chartPoint `json:"series"`
	Duration string       `json:"duration"`
}

type scheduleResponse struct {
	MonthlyPayment float64        `json:"monthlyPayment"`
	Schedule       []bond.Payment `json:"schedule"`
}

func (h *handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	input, ok := h.decodeProperty(w, r, "server.handleForecast")
	if !ok {
		return
	}

	result, err := forecast.GenerateForecast(h.logger, input)
	if err != nil {
		h.respondComputeError(w, err, "server.handleForecast")
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("forecast computed",
		zap.String("op", "server.handleForecast"),
		zap.String("property", input.Name),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, forecastResponse{
		Forecast: result,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleListing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	var req listingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleListing")
		return
	}

	property, err := h.listings.Lookup(r.Context(), req.URL)
	if err != nil {
		var unsupported *listing.ErrUnsupportedURL
		if errors.As(err, &unsupported) {
			h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleListing")
			return
		}
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("listing lookup failed: %v", err), "server.handleListing")
		return
	}

	h.writeJSON(w, http.StatusOK, property)
}

func (h *handler) handleChart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	input, ok := h.decodeProperty(w, r, "server.handleChart")
	if !ok {
		return
	}

	// The chart is derived from the same forecast computation as the
	// tables; the series shares the projection helpers so the two cannot
	// drift apart.
	result, err := forecast.GenerateForecast(h.logger, input)
	if err != nil {
		h.respondComputeError(w, err, "server.handleChart")
		return
	}

	series := investment.ProjectionSeries(investment.ProjectionParams{
		Deposit:          input.Deposit,
		TotalInvestment:  result.TotalInvestment,
		AnnualCashFlow:   result.CashFlow.Annual,
		BondPayment:      result.MonthlyBondPayment,
		LoanTermYears:    input.LoanTermYears,
		AppreciationRate: constants.DefaultAppreciationRate,
	}, chartSeriesYears)

	schedule := h.schedules.GenerateSchedule(result.LoanAmount, input.InterestRate, input.LoanTermYears)

	points := make([]chartPoint, 0, len(series))
	for _, point := range series {
		points = append(points, chartPoint{
			ProjectionPoint: point,
			BondBalance:     bond.RemainingPrincipalAt(schedule, point.Year*constants.MonthsPerYear),
		})
	}

	h.writeJSON(w, http.StatusOK, chartResponse{
		Series:   points,
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeProperty(w, r, "server.handleSchedule")
	if !ok {
		return
	}

	if err := input.Validate(); err != nil {
		h.respondComputeError(w, err, "server.handleSchedule")
		return
	}

	loanAmount := input.PurchasePrice - input.Deposit
	schedule := h.schedules.GenerateSchedule(loanAmount, input.InterestRate, input.LoanTermYears)

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		MonthlyPayment: bond.CalculateMonthlyPayment(loanAmount, input.InterestRate, input.LoanTermYears),
		Schedule:       schedule,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeProperty handles the shared method check, body capping, and JSON
// decoding for endpoints that take a property input.
func (h *handler) decodeProperty(w http.ResponseWriter, r *http.Request, op string) (config.Property, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return config.Property{}, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var input config.Property
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return config.Property{}, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return config.Property{}, false
	}

	return input, true
}

// respondComputeError maps validation failures to 400 and everything else to
// 500.
func (h *handler) respondComputeError(w http.ResponseWriter, err error, op string) {
	var invalid validation.InvalidInputErrors
	if errors.As(err, &invalid) {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute forecast: %v", err), op)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
