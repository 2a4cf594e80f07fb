package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ttpr0/go-mosp/cache"
	"golang.org/x/time/rate"
)

//**********************************************************
// router
//**********************************************************

// Handlers of the route alternatives service.
type Service struct {
	manager *ProfileManager
	results cache.ICache
	ttl     time.Duration
}

func NewService(manager *ProfileManager, results cache.ICache, ttl time.Duration) *Service {
	return &Service{
		manager: manager,
		results: results,
		ttl:     ttl,
	}
}

func NewRouter(service *Service, options ServerOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)
	if options.Timeout > 0 {
		r.Use(middleware.Timeout(options.Timeout))
	}

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/v0", func(r chi.Router) {
		if options.RateLimit > 0 {
			r.Use(RateLimit(options.RateLimit, options.Burst))
		}
		MapPost(r, "/alternatives", service.HandleAlternativesRequest)
		MapGet(r, "/profiles", service.HandleProfilesRequest)
		MapGet(r, "/frontier", service.HandleFrontierRequest)
	})
	return r
}

//**********************************************************
// middleware
//**********************************************************

type _RequestIDKey struct{}

const RequestIDHeader = "X-Request-ID"

// Takes the request id from the request header or creates a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), _RequestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(_RequestIDKey{}).(string)
	return id
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		requestTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Rejects requests exceeding limit per second with 429.
func RateLimit(limit float64, burst int) func(http.Handler) http.Handler {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(limit), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				WriteResponse(w, NewErrorResponse(r.URL.Path, "rate limit exceeded"), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
