// Package notifier delivers due-reminder notifications to the in-app toast
// line and, when the platform allows it, to the desktop tray helper.
package notifier

import (
	"fmt"
	"sync"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
)

type Notification struct {
	ReminderID string          `json:"reminderId"`
	Title      string          `json:"title"`
	Body       string          `json:"body,omitempty"`
	Priority   models.Priority `json:"priority,omitempty"`
	At         time.Time       `json:"at"`
}

// FromReminder builds the notification for a due occurrence.
func FromReminder(r models.Reminder, at time.Time) Notification {
	return Notification{
		ReminderID: r.ID,
		Title:      r.Title,
		Body:       r.Description,
		Priority:   r.Priority,
		At:         at,
	}
}

// Text is the single-line rendering used by every sink.
func (n Notification) Text() string {
	if n.Body == "" {
		return n.Title
	}
	return fmt.Sprintf("%s: %s", n.Title, n.Body)
}

type Notifier interface {
	Notify(n Notification) error
}

type Permission int

const (
	PermissionNotRequested Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "not-requested"
	}
}

// Prober reports whether an OS-level channel can currently deliver.
type Prober interface {
	Notifier
	Available() error
}

// Dispatch sends every notification to the toast sink and additionally to
// the OS channel once permission has been granted. Permission is asked for
// once, on the first notification; a denial leaves toasts working.
type Dispatch struct {
	toast   Notifier
	desktop Prober

	once       sync.Once
	mu         sync.Mutex
	permission Permission
}

// NewDispatch combines the sinks. desktop may be nil when OS notifications
// are disabled.
func NewDispatch(toast Notifier, desktop Prober) *Dispatch {
	return &Dispatch{toast: toast, desktop: desktop}
}

// RequestPermission probes the OS channel. Later calls return the first answer.
func (d *Dispatch) RequestPermission() Permission {
	d.once.Do(func() {
		p := PermissionDenied
		if d.desktop != nil {
			if err := d.desktop.Available(); err != nil {
				logger.Info("Desktop notifications unavailable, using toasts only", "reason", err)
			} else {
				p = PermissionGranted
			}
		}
		d.mu.Lock()
		d.permission = p
		d.mu.Unlock()
	})
	return d.Permission()
}

func (d *Dispatch) Permission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.permission
}

// Notify never fails because of the OS channel; only a toast failure is
// returned.
func (d *Dispatch) Notify(n Notification) error {
	var err error
	if d.toast != nil {
		err = d.toast.Notify(n)
	}

	if d.RequestPermission() == PermissionGranted {
		if derr := d.desktop.Notify(n); derr != nil {
			logger.Warn("Desktop notification failed", "reminder", n.ReminderID, "error", derr)
		}
	}
	return err
}
