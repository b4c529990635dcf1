package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/StudyQuest_Go/internal/boss"
	"github.com/osse101/StudyQuest_Go/internal/handler"
	"github.com/osse101/StudyQuest_Go/internal/leaderboard"
	"github.com/osse101/StudyQuest_Go/internal/logger"
	"github.com/osse101/StudyQuest_Go/internal/metrics"
	"github.com/osse101/StudyQuest_Go/internal/progression"
	"github.com/osse101/StudyQuest_Go/internal/sse"
)

// Options carries the identity and limits of the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
}

type Server struct {
	httpServer         *http.Server
	progressionService progression.Service
	bossService        boss.Service
	board              leaderboard.Board
}

// NewServer creates a new Server instance. db may be nil when the memory store
// is used; a nil history or hub leaves its routes unmounted.
func NewServer(opts Options, db handler.Pinger, progressionService progression.Service, bossService boss.Service, board leaderboard.Board, history handler.EventHistory, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, db, progressionService, bossService, board, history, hub),
			ReadHeaderTimeout: 5 * time.Second,
		},
		progressionService: progressionService,
		bossService:        bossService,
		board:              board,
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(opts Options, db handler.Pinger, progressionService progression.Service, bossService boss.Service, board leaderboard.Board, history handler.EventHistory, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(db))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	characters := handler.NewCharacterHandlers(progressionService, bossService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/characters", func(r chi.Router) {
			r.Post("/", characters.HandleCreate())
			r.Post("/import", characters.HandleImport())

			r.Route("/{"+handler.ParamCharacterID+"}", func(r chi.Router) {
				r.Use(characterContextMiddleware)
				r.Get("/", characters.HandleGet())
				r.Post("/activities", characters.HandleLogActivity())
				r.Post("/quests/{"+handler.ParamQuestID+"}/complete", characters.HandleCompleteQuest())
				r.Post("/prestige", characters.HandlePrestige())
				r.Get("/recap", characters.HandleRecap())
				if history != nil {
					r.Get("/history", handler.HandleGetHistory(history))
				}

				r.Route("/bosses", func(r chi.Router) {
					r.Get("/", characters.HandleListBosses())
					r.Post("/", characters.HandleAddBoss())
					r.Put("/active", characters.HandleSetActiveBoss())
					r.Delete("/{"+handler.ParamBossID+"}", characters.HandleDeleteBoss())
				})
			})
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/activities", handler.HandleGetActivities())
			r.Get("/cosmetics", handler.HandleGetCosmetics())
			r.Get("/classes", handler.HandleGetClasses())
			r.Get("/quests", handler.HandleGetQuests(progressionService))
		})

		r.Get("/leaderboard", handler.HandleGetLeaderboard(board))

		if hub != nil {
			r.Get("/events", sse.Handler(hub))
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
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

// Flush lets streaming handlers push events through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isProbePath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// characterContextMiddleware tags request logs with the character from the path
func characterContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithCharacterID(r.Context(), chi.URLParam(r, handler.ParamCharacterID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isProbePath(r.URL.Path) {
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

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
