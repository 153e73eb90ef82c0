// Package server provides the HTTP API for the cover letter generator.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/covercraft/internal/budget"
	"github.com/jonathan/covercraft/internal/config"
	"github.com/jonathan/covercraft/internal/generation"
	"github.com/jonathan/covercraft/internal/session"
	"github.com/jonathan/covercraft/internal/tokenizer"
)

// generateTimeout bounds a single completion call.
const generateTimeout = 60 * time.Second

// tokenCounter is the slice of tokenizer.Counter the handlers need.
type tokenCounter interface {
	Count(text string) (int, error)
	Truncate(text string, maxTokens int) (string, int, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	app        *config.Config
	store      *session.Store
	counter    tokenCounter
	guard      *budget.Guard
	generator  generation.Generator // nil when no API key is configured
}

// Config holds server configuration
type Config struct {
	Port   int
	APIKey string
	App    *config.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.App == nil {
		cfg.App = config.Default()
	}

	counter, err := tokenizer.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}

	s := &Server{
		app:     cfg.App,
		store:   session.NewStore(cfg.App.SessionTTL(), cfg.App.CacheTTL()),
		counter: counter,
		guard: budget.NewGuard(counter, budget.Limits{
			ResumeMax:  cfg.App.ResumeMaxTokens,
			JobDescMax: cfg.App.JobDescMaxTokens,
			TotalMax:   cfg.App.TotalMaxTokens,
		}),
	}

	if cfg.APIKey != "" {
		gen, err := generation.NewGeminiGenerator(context.Background(), cfg.APIKey, generation.Options{
			Model:           cfg.App.Model,
			MaxOutputTokens: cfg.App.MaxOutputTokens,
			Temperature:     0.7,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create generator: %w", err)
		}
		s.generator = gen
	} else {
		log.Println("GEMINI_API_KEY not set; generation endpoints will return 503")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router with middleware applied.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /session", s.handleCreateSession)
	mux.HandleFunc("POST /resume", s.handleResume)
	mux.HandleFunc("POST /job-description", s.handleJobDescription)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("POST /personalize", s.handlePersonalize)
	mux.HandleFunc("GET /export/csv", s.handleExportCSV)
	mux.HandleFunc("GET /export/document", s.handleExportDocument)
	mux.HandleFunc("POST /cache/clear", s.handleCacheClear)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.generator != nil {
		if err := s.generator.Close(); err != nil {
			log.Printf("Error closing generator: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Session-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
