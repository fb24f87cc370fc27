package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/logger"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage/mongo"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage/postgres"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/storage/sqlite"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/utils"
)

var ErrNoHistory = errors.New("store does not keep notification history")

// Store adapts a Backend to Provider, encoding each record as a JSON array.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

type openOptions struct {
	allowCredentials bool
}

type OpenOption func(*openOptions)

// AllowCredentials accepts connection strings with embedded passwords.
// Only targets read from the OS keyring should use it.
func AllowCredentials() OpenOption {
	return func(o *openOptions) { o.allowCredentials = true }
}

// Open picks a backend from the target: postgres:// and mongodb:// URLs,
// a .json file or an existing directory for the JSON store, otherwise SQLite.
func Open(target string, opts ...OpenOption) (*Store, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	target = strings.TrimSpace(target)
	if target == "" {
		return nil, fmt.Errorf("store target cannot be empty")
	}

	switch {
	case strings.HasPrefix(target, "postgres://"), strings.HasPrefix(target, "postgresql://"):
		if _, err := postgres.ValidateConnString(target); err != nil && !(o.allowCredentials && errors.Is(err, postgres.ErrEmbeddedCredentials)) {
			return nil, err
		}
		return New(postgres.New(target)), nil
	case strings.HasPrefix(target, "mongodb://"), strings.HasPrefix(target, "mongodb+srv://"):
		if _, err := mongo.ValidateURI(target); err != nil && !(o.allowCredentials && errors.Is(err, mongo.ErrEmbeddedCredentials)) {
			return nil, err
		}
		return New(mongo.New(target)), nil
	}

	path := utils.ExpandPath(target)
	if strings.HasSuffix(path, ".json") {
		return New(NewJSONStore(filepath.Dir(path))), nil
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return New(NewJSONStore(path)), nil
	}
	return New(sqlite.NewStore(path)), nil
}

func (s *Store) Backend() Backend {
	return s.backend
}

func (s *Store) Init() error  { return s.backend.Init() }
func (s *Store) Load() error  { return s.backend.Load() }
func (s *Store) Close() error { return s.backend.Close() }

func (s *Store) GetConfigPath() string {
	return s.backend.GetConfigPath()
}

func (s *Store) LoadReminders() []models.Reminder {
	var reminders []models.Reminder
	if !s.loadRecord(constants.RecordReminders, &reminders) {
		return []models.Reminder{}
	}
	return reminders
}

func (s *Store) SaveReminders(reminders []models.Reminder) error {
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	return s.saveRecord(constants.RecordReminders, reminders)
}

func (s *Store) LoadDismissed() []string {
	var ids []string
	if !s.loadRecord(constants.RecordDismissedSuggestions, &ids) {
		return []string{}
	}
	return ids
}

func (s *Store) SaveDismissed(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.saveRecord(constants.RecordDismissedSuggestions, ids)
}

// LogNotification records a delivery when the backend keeps history and is
// a no-op otherwise.
func (s *Store) LogNotification(rec models.NotificationRecord) error {
	if log, ok := s.backend.(NotificationLog); ok {
		return log.LogNotification(rec)
	}
	return nil
}

func (s *Store) RecentNotifications(limit int) ([]models.NotificationRecord, error) {
	if log, ok := s.backend.(NotificationLog); ok {
		return log.RecentNotifications(limit)
	}
	return nil, ErrNoHistory
}

// loadRecord decodes the named record into out. Absence and corruption both
// report false so the caller can fall back to an empty collection.
func (s *Store) loadRecord(name string, out interface{}) bool {
	data, found, err := s.backend.GetRecord(name)
	if err != nil {
		logger.Warn("Failed to read record, using empty collection", "record", name, "error", err)
		return false
	}
	if !found || len(data) == 0 {
		logger.Debug("Record not found, using empty collection", "record", name)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Corrupt record, using empty collection", "record", name, "error", err)
		return false
	}
	return true
}

func (s *Store) saveRecord(name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", name, err)
	}
	if err := s.backend.PutRecord(name, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
