package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"autoquote-bot/internal/pricing"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	engine   *pricing.Engine
	validate *validator.Validate
	logger   *zap.Logger
}

type QuoteRequest struct {
	Service string            `json:"service"`
	Params  map[string]string `json:"params" validate:"max=16,dive,keys,max=32,endkeys,max=64"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// unknownServiceResponse always carries the rejected id, even when empty.
type unknownServiceResponse struct {
	Error   string `json:"error"`
	Service string `json:"service"`
}

func NewHandler(engine *pricing.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		engine:   engine,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/quotes", h.HandleQuote)
	mux.HandleFunc("GET /api/services", h.HandleServices)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	quote, err := h.engine.Calculate(r.Context(), req.Service, pricing.Params(req.Params))
	if err != nil {
		var unknown *pricing.UnknownServiceError
		if errors.As(err, &unknown) {
			h.writeJSON(w, http.StatusBadRequest, unknownServiceResponse{Error: err.Error(), Service: unknown.Service})
			return
		}

		h.logger.Error("Failed to calculate quote",
			zap.String("service", req.Service),
			zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to calculate quote"})
		return
	}

	h.writeJSON(w, http.StatusOK, quote)
}

func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.engine.Services())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
