// Package api exposes the reminder engine as a local JSON API for the POS
// front-end.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/reminders"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/suggestions"
)

type Server struct {
	mgr *reminders.Manager
}

func NewServer(mgr *reminders.Manager) *Server {
	return &Server{mgr: mgr}
}

// Router wires every route.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)

	r.HandleFunc("/healthz", s.health).Methods("GET")

	r.HandleFunc("/reminders", s.listReminders).Methods("GET")
	r.HandleFunc("/reminders", s.createReminder).Methods("POST")
	r.HandleFunc("/reminders/buckets", s.buckets).Methods("GET")
	r.HandleFunc("/reminders/{id}", s.getReminder).Methods("GET")
	r.HandleFunc("/reminders/{id}", s.updateReminder).Methods("PATCH")
	r.HandleFunc("/reminders/{id}", s.deleteReminder).Methods("DELETE")
	r.HandleFunc("/reminders/{id}/complete", s.completeReminder).Methods("POST")
	r.HandleFunc("/reminders/{id}/snooze", s.snoozeReminder).Methods("POST")
	r.HandleFunc("/reminders/{id}/recur", s.recurReminder).Methods("POST")

	r.HandleFunc("/suggestions", s.listSuggestions).Methods("GET")
	r.HandleFunc("/suggestions/{id}/accept", s.acceptSuggestion).Methods("POST")
	r.HandleFunc("/suggestions/{id}/dismiss", s.dismissSuggestion).Methods("POST")

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if l := logger.With("method", r.Method, "path", r.URL.Path); l != nil {
			l.Debug("HTTP request", "status", rec.status, "duration", time.Since(start))
		}
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response", "error", err)
	}
}

// writeError maps engine errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, reminders.ErrNotFound), errors.Is(err, suggestions.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrEmptyTitle), errors.Is(err, reminders.ErrInvalidRecurrence):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
