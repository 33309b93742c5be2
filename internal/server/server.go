package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/RewardReels_Go/internal/achievements"
	"github.com/osse101/RewardReels_Go/internal/bonus"
	"github.com/osse101/RewardReels_Go/internal/database"
	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/eventlog"
	"github.com/osse101/RewardReels_Go/internal/handler"
	"github.com/osse101/RewardReels_Go/internal/history"
	"github.com/osse101/RewardReels_Go/internal/ledger"
	"github.com/osse101/RewardReels_Go/internal/logger"
	"github.com/osse101/RewardReels_Go/internal/metrics"
	"github.com/osse101/RewardReels_Go/internal/slots"
	"github.com/osse101/RewardReels_Go/internal/sse"
	"github.com/osse101/RewardReels_Go/internal/stats"
)

// Options configures the HTTP listener and its middleware
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	CORSOrigins    []string
}

// Services are the game services exposed over HTTP
type Services struct {
	Slots           slots.Service
	Autoplay        handler.AutoplayController
	Ledger          ledger.Ledger
	Bonus           bonus.Service
	Achievements    achievements.Service
	History         history.Service
	Stats           stats.Service
	EventLog        eventlog.Service
	Stream          *sse.Hub
	StartingBalance domain.Money
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with middleware and all routes mounted
func NewRouter(opts Options, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	// outermost first
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", HeaderAPIKey},
		AllowCredentials: false,
		MaxAge:           CORSMaxAgeSeconds,
	}))
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	slotsHandler := handler.NewSlotsHandler(svc.Slots)
	autoplayHandler := handler.NewAutoplayHandler(svc.Autoplay)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/spin", slotsHandler.HandleSpin)
		r.Get("/jackpot", slotsHandler.HandleGetJackpot)
		r.Get("/paytable", slotsHandler.HandleGetPaytable)

		r.Post("/accounts", handler.HandleOpenAccount(svc.Ledger, svc.StartingBalance))
		r.Get("/balance", handler.HandleGetBalance(svc.Ledger))

		r.Route("/autoplay", func(r chi.Router) {
			r.Post("/start", autoplayHandler.HandleStart)
			r.Post("/stop", autoplayHandler.HandleStop)
			r.Get("/state", autoplayHandler.HandleGetState)
		})

		r.Route("/bonus", func(r chi.Router) {
			r.Post("/daily", handler.HandleClaimDailyBonus(svc.Bonus))
			r.Get("/table", handler.HandleGetBonusTable(svc.Bonus))
		})

		r.Get("/history", handler.HandleGetHistory(svc.History))
		r.Get("/stats", handler.HandleGetStats(svc.Stats))
		r.Get("/achievements", handler.HandleGetAchievements(svc.Achievements))
		if svc.Stream != nil {
			r.Get("/stream", sse.Handler(svc.Stream))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Post("/maintenance", slotsHandler.HandleSetMaintenance)
			r.Post("/stats/reset", handler.HandleResetStats(svc.Stats))
			r.Get("/events", handler.HandleGetEventLog(svc.EventLog))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter captures the status code for request logging
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
