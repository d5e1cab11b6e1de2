package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/planfit/hpgo/internal/calculation"
	"github.com/planfit/hpgo/internal/catalog"
)

// Handler serves the planning tool endpoints. Every dependency is
// optional except the engine: endpoints whose backing catalog was not
// configured answer success=false instead of 404.
type Handler struct {
	engine  *calculation.Engine
	savings *catalog.SavingsCatalog
	prices  catalog.PriceProvider
	logger  *logrus.Logger
}

// NewHandler wires the tool endpoints to their dependencies. savings,
// prices and logger may be nil.
func NewHandler(engine *calculation.Engine, savings *catalog.SavingsCatalog, prices catalog.PriceProvider, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	if savings != nil && engine != nil {
		engine.SavingsCatalog = savings
	}
	return &Handler{engine: engine, savings: savings, prices: prices, logger: logger}
}

// Router builds the tool route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.loggingMiddleware)

	r.HandleFunc("/plan/health", h.Health).Methods("GET")
	r.HandleFunc("/plan/parse_currency", h.ParseCurrency).Methods("POST")
	r.HandleFunc("/plan/parse_ratio", h.ParseRatio).Methods("POST")
	r.HandleFunc("/plan/normalize_location", h.NormalizeLocation).Methods("POST")
	r.HandleFunc("/plan/validate_input", h.ValidateInput).Methods("POST")
	r.HandleFunc("/plan/calc_shortage", h.CalcShortage).Methods("POST")
	r.HandleFunc("/plan/simulate", h.Simulate).Methods("POST")
	r.HandleFunc("/plan/calculate_ltv", h.CalculateLTV).Methods("POST")
	r.HandleFunc("/plan/allocate", h.Allocate).Methods("POST")
	r.HandleFunc("/plan/validate_selection", h.ValidateSelection).Methods("POST")
	r.HandleFunc("/plan/rank_funds", h.RankFunds).Methods("POST")
	r.HandleFunc("/plan/top_by_risk", h.TopByRisk).Methods("POST")
	r.HandleFunc("/plan/filter_top_savings", h.FilterTopSavings).Methods("POST")
	r.HandleFunc("/plan/build_plan", h.BuildPlan).Methods("POST")
	r.HandleFunc("/db/get_market_price", h.MarketPrice).Methods("POST")
	return r
}

// Serve runs the HTTP server until it fails.
func Serve(cfg *Config, h *Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      h.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	h.logger.WithField("addr", srv.Addr).Info("starting server")
	return srv.ListenAndServe()
}

func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

// envelope is the uniform tool response body.
type envelope map[string]any

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithError(err).Error("failed to encode response")
	}
}

// ok answers a successful tool call.
func (h *Handler) ok(w http.ResponseWriter, tool string, fields envelope) {
	body := envelope{"tool_name": tool, "success": true}
	for k, v := range fields {
		body[k] = v
	}
	h.writeJSON(w, http.StatusOK, body)
}

// fail answers a failed tool call. Tool failures are part of the
// protocol and still ship with HTTP 200; only transport-level problems
// (unreadable body) use error statuses.
func (h *Handler) fail(w http.ResponseWriter, tool string, errMsg string, fields envelope) {
	body := envelope{"tool_name": tool, "success": false, "error": errMsg}
	for k, v := range fields {
		body[k] = v
	}
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, tool string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, envelope{
			"tool_name": tool,
			"success":   false,
			"error":     fmt.Sprintf("잘못된 요청 본문: %v", err),
		})
		return false
	}
	return true
}
