package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/customerr"
)

const latestDate = "latest"

//go:generate minimock -i rateGetter -o ./mock/rate_getter_mock.go -n RateGetterMock
type rateGetter interface {
	GetRate(ctx context.Context, from, to string, at *time.Time) (decimal.Decimal, error)
}

type rateResponse struct {
	From string      `json:"from"`
	To   string      `json:"to"`
	Date string      `json:"date"`
	Rate json.Number `json:"rate"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type rateHandler struct {
	rates rateGetter
}

// getRate serves GET /v1/rates/{from}/{to}?date=YYYY-MM-DD.
func (h *rateHandler) getRate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	from, to := strings.ToUpper(vars["from"]), strings.ToUpper(vars["to"])

	date, at := latestDate, (*time.Time)(nil)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(rates.DateLayout, raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "date should be YYYY-MM-DD")
			return
		}
		date, at = parsed.Format(rates.DateLayout), &parsed
	}

	rate, err := h.rates.GetRate(r.Context(), from, to, at)
	if err != nil {
		status := statusOf(err)
		if status == http.StatusInternalServerError || status == http.StatusBadGateway {
			logger.Error("rate lookup failed", zap.String("request_id", requestID(r.Context())), zap.Error(err))
		}
		writeError(w, r, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rateResponse{
		From: from,
		To:   to,
		Date: date,
		Rate: json.Number(rate.String()),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, customerr.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, customerr.ErrRateNotFound):
		return http.StatusNotFound
	case errors.Is(err, customerr.ErrFetchFailed), errors.Is(err, customerr.ErrParseFailed):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write response", zap.Error(err))
	}
}
