package storage

import "github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"

// Provider persists the reminder collection and the dismissed-suggestion set.
// Loads never fail: a missing or unreadable record yields an empty result.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Reminders
	LoadReminders() []models.Reminder
	SaveReminders([]models.Reminder) error

	// Suggestions
	LoadDismissed() []string
	SaveDismissed([]string) error

	// Utils
	GetConfigPath() string
}

// Backend stores opaque named records. Each record is read and replaced
// whole; found is false when the record has never been written.
type Backend interface {
	Init() error
	Load() error
	Close() error
	GetRecord(name string) (value []byte, found bool, err error)
	PutRecord(name string, value []byte) error
	GetConfigPath() string
}

// NotificationLog is implemented by backends that keep a delivery history.
type NotificationLog interface {
	LogNotification(models.NotificationRecord) error
	RecentNotifications(limit int) ([]models.NotificationRecord, error)
}
