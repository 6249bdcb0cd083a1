package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"cleaning-quote/internal/order"
	"cleaning-quote/internal/quote"
	"cleaning-quote/internal/validation"
	"cleaning-quote/pkg/logger"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields validation.Errors `json:"fields,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, status int, err error) {
	respondWithJSON(w, status, errorResponse{Error: err.Error()})
}

// serviceError maps service failures onto statuses.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *quote.InvalidError

	switch {
	case errors.As(err, &invalid):
		respondWithJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  quote.ErrInvalid.Error(),
			Fields: invalid.Errors,
		})
	case errors.Is(err, quote.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err)
	case errors.Is(err, order.ErrUnknownField),
		errors.Is(err, order.ErrUnknownLine),
		errors.Is(err, quote.ErrUnknownVendor),
		errors.Is(err, quote.ErrUnknownMode):
		respondWithError(w, http.StatusBadRequest, err)
	case errors.Is(err, quote.ErrSubmissionInFlight),
		errors.Is(err, quote.ErrAlreadySubmitted):
		respondWithError(w, http.StatusConflict, err)
	case errors.Is(err, quote.ErrSubmissionFailed):
		respondWithError(w, http.StatusBadGateway, quote.ErrSubmissionFailed)
	default:
		logger.FromCtx(r.Context()).Error("Request failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, errors.New(http.StatusText(http.StatusInternalServerError)))
	}
}
