// Package scheduler runs the polling loop that turns due reminders into
// notifications, at most once per occurrence for the life of the process.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/clock"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/notifier"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/reminders"
)

// Source exposes the live reminder collection.
type Source interface {
	List() []models.Reminder
}

// History records dispatched notifications. Optional.
type History interface {
	LogNotification(rec models.NotificationRecord) error
}

type Scheduler struct {
	Clock    clock.Clock
	Interval time.Duration
	Window   time.Duration
	Source   Source
	Notifier notifier.Notifier
	History  History

	mu        sync.Mutex
	triggered map[string]time.Time // occurrence key -> scheduled instant
	cancel    context.CancelFunc
	done      chan struct{}
}

type Option func(*Scheduler)

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.Interval = d
		}
	}
}

func WithWindow(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.Window = d
		}
	}
}

func WithHistory(h History) Option {
	return func(s *Scheduler) { s.History = h }
}

func New(clk clock.Clock, src Source, n notifier.Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		Clock:    clk,
		Interval: constants.DefaultPollInterval,
		Window:   constants.DefaultDueWindow,
		Source:   src,
		Notifier: n,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick performs one poll at Clock.Now() and returns the reminders it
// notified about.
func (s *Scheduler) Tick() []models.Reminder {
	now := s.Clock.Now()
	list := s.Source.List()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.triggered == nil {
		s.triggered = make(map[string]time.Time)
	}

	var dispatched []models.Reminder
	live := make(map[string]struct{}, len(list))
	for _, r := range list {
		key := reminders.OccurrenceKey(r)
		live[key] = struct{}{}
		if !reminders.IsDueNow(r, now, s.Window) {
			continue
		}
		if _, seen := s.triggered[key]; seen {
			continue
		}

		at, _ := reminders.Instant(r, now.Location())
		s.triggered[key] = at
		s.dispatch(r, key, now)
		dispatched = append(dispatched, r)
	}

	// Forget an occurrence only once it can never come due again: its
	// reminder moved or vanished, or its instant fell behind the window.
	// Snoozing or reactivating inside the window must not re-arm it.
	cutoff := now.Add(-s.Window)
	for key, at := range s.triggered {
		if _, ok := live[key]; !ok || at.Before(cutoff) {
			delete(s.triggered, key)
		}
	}

	return dispatched
}

func (s *Scheduler) dispatch(r models.Reminder, key string, now time.Time) {
	logger.Info("Reminder due", "id", r.ID, "title", r.Title, "occurrence", key)

	if s.Notifier != nil {
		if err := s.Notifier.Notify(notifier.FromReminder(r, now)); err != nil {
			logger.Warn("Failed to deliver notification", "id", r.ID, "error", err)
		}
	}
	if s.History != nil {
		rec := models.NotificationRecord{ReminderID: r.ID, Occurrence: key, SentAt: now}
		if err := s.History.LogNotification(rec); err != nil {
			logger.Warn("Failed to record notification", "id", r.ID, "error", err)
		}
	}
}

// Run polls until ctx is cancelled: once immediately, then every Interval.
func (s *Scheduler) Run(ctx context.Context) {
	logger.Debug("Scheduler started", "interval", s.Interval, "window", s.Window)
	defer logger.Debug("Scheduler stopped")

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Start launches Run in the background. Calling it while running is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go func() {
		defer close(done)
		s.Run(ctx)
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call repeatedly.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
