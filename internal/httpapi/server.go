package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
	"cleaning-quote/internal/validation"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// QuoteService is implemented by *quote.Service.
type QuoteService interface {
	Start(ctx context.Context, vendor catalog.Vendor, mode order.Mode) (order.Order, error)
	Get(ctx context.Context, id string) (order.Order, error)
	Mutate(ctx context.Context, id, path string, value any) (order.Order, error)
	SwitchVendor(ctx context.Context, id string, v catalog.Vendor) (order.Order, error)
	Confirm(ctx context.Context, id string) (validation.Errors, error)
	Submit(ctx context.Context, id string) (order.Order, error)
}

// SubmitLimiter reports whether key has exceeded limit hits for action in
// the current window.
type SubmitLimiter interface {
	CheckRateLimit(ctx context.Context, key, action string, limit int64, window time.Duration) (bool, error)
}

type Options struct {
	RatePerSecond float64
	RateBurst     int
	SubmitLimit   int64
	SubmitWindow  time.Duration
}

type Server struct {
	svc      QuoteService
	limiter  SubmitLimiter
	visitors *visitors
	opts     Options
	logger   *zap.Logger
	router   *mux.Router
}

// NewServer wires the routes. A nil limiter disables submit throttling.
func NewServer(svc QuoteService, limiter SubmitLimiter, opts Options, logger *zap.Logger) *Server {
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 10
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 20
	}
	s := &Server{
		svc:      svc,
		limiter:  limiter,
		visitors: newVisitors(opts.RatePerSecond, opts.RateBurst),
		opts:     opts,
		logger:   logger,
		router:   mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.requestID, s.accessLog, s.rateLimit)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/catalogs/{vendor}", s.getCatalog).Methods(http.MethodGet)
	api.HandleFunc("/quotes", s.startQuote).Methods(http.MethodPost)
	api.HandleFunc("/quotes/{id}", s.getQuote).Methods(http.MethodGet)
	api.HandleFunc("/quotes/{id}", s.mutateQuote).Methods(http.MethodPatch)
	api.HandleFunc("/quotes/{id}/vendor", s.switchVendor).Methods(http.MethodPut)
	api.HandleFunc("/quotes/{id}/confirm", s.confirmQuote).Methods(http.MethodPost)
	api.HandleFunc("/quotes/{id}/submit", s.submitQuote).Methods(http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Sweep drops idle per-client limiters until ctx is done.
func (s *Server) Sweep(ctx context.Context) {
	s.visitors.sweep(ctx, time.Minute, 3*time.Minute)
}

func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request) {
	c, ok := catalog.Lookup(catalog.Vendor(mux.Vars(r)["vendor"]))
	if !ok {
		respondWithError(w, http.StatusNotFound, errors.New("unknown vendor"))
		return
	}
	respondWithJSON(w, http.StatusOK, c.Summary())
}

type startRequest struct {
	Vendor catalog.Vendor `json:"vendor"`
	Mode   order.Mode     `json:"mode"`
}

func (s *Server) startQuote(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	o, err := s.svc.Start(r.Context(), req.Vendor, req.Mode)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, o)
}

func (s *Server) getQuote(w http.ResponseWriter, r *http.Request) {
	o, err := s.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, o)
}

type mutateRequest struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

func (s *Server) mutateQuote(w http.ResponseWriter, r *http.Request) {
	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if req.Path == "" {
		respondWithError(w, http.StatusBadRequest, errors.New("path is required"))
		return
	}

	o, err := s.svc.Mutate(r.Context(), mux.Vars(r)["id"], req.Path, req.Value)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, o)
}

func (s *Server) switchVendor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Vendor catalog.Vendor `json:"vendor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	o, err := s.svc.SwitchVendor(r.Context(), mux.Vars(r)["id"], req.Vendor)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, o)
}

type confirmResponse struct {
	Valid  bool              `json:"valid"`
	Errors validation.Errors `json:"errors"`
}

func (s *Server) confirmQuote(w http.ResponseWriter, r *http.Request) {
	errs, err := s.svc.Confirm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if errs == nil {
		errs = validation.Errors{}
	}
	respondWithJSON(w, http.StatusOK, confirmResponse{Valid: errs.Empty(), Errors: errs})
}

func (s *Server) submitQuote(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && s.opts.SubmitLimit > 0 {
		exceeded, err := s.limiter.CheckRateLimit(r.Context(), clientIP(r), "submit", s.opts.SubmitLimit, s.opts.SubmitWindow)
		if err != nil {
			s.logger.Warn("Submit rate limit check failed", zap.Error(err))
		} else if exceeded {
			respondWithError(w, http.StatusTooManyRequests, errors.New("too many submissions"))
			return
		}
	}

	o, err := s.svc.Submit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, o)
}
