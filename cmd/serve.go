package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/retireus/checkpoint/internal/config"
	"github.com/retireus/checkpoint/internal/engine"
	"github.com/retireus/checkpoint/internal/normalize"
	"github.com/retireus/checkpoint/internal/scenario"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the assessment API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(cfg.Server),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				zap.L().Warn("server shutdown", zap.Error(err))
			}
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the API routes. Split out of the command so handler
// behavior is testable without binding a listener.
func newRouter(serverCfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: serverCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	limiters := newClientLimiters(rate.Limit(serverCfg.RatePerSecond), serverCfg.RateBurst)

	r.Post("/api/analyze", func(w http.ResponseWriter, req *http.Request) {
		if !limiters.allow(req.RemoteAddr) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		var raw map[string]any
		if err := json.NewDecoder(req.Body).Decode(&raw); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result := engine.Assess(normalize.Answers(raw))
		writeJSON(w, http.StatusOK, result)
	})

	r.Get("/api/scenarios", func(w http.ResponseWriter, _ *http.Request) {
		all, err := scenario.List()
		if err != nil {
			zap.L().Error("scenario list failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "scenario fixtures unavailable")
			return
		}
		writeJSON(w, http.StatusOK, all)
	})

	r.Get("/api/scenarios/{id}", func(w http.ResponseWriter, req *http.Request) {
		s, err := scenario.Get(chi.URLParam(req, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "scenario not found")
			return
		}
		writeJSON(w, http.StatusOK, s.Answers)
	})

	return r
}

// clientLimiters hands out one token bucket per client address, so one
// chatty client exhausting its budget does not 429 everyone else.
type clientLimiters struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	byClient map[string]*rate.Limiter
}

func newClientLimiters(limit rate.Limit, burst int) *clientLimiters {
	return &clientLimiters{
		limit:    limit,
		burst:    burst,
		byClient: make(map[string]*rate.Limiter),
	}
}

func (c *clientLimiters) allow(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	c.mu.Lock()
	limiter, ok := c.byClient[host]
	if !ok {
		limiter = rate.NewLimiter(c.limit, c.burst)
		c.byClient[host] = limiter
	}
	c.mu.Unlock()

	return limiter.Allow()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("response encode failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
