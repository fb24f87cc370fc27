package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
)

func (s *Store) GetRecord(name string) ([]byte, bool, error) {
	if s.db == nil {
		return nil, false, ErrNotInitialized
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE name = ?", name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read record %s: %w", name, err)
	}
	return []byte(value), true, nil
}

func (s *Store) PutRecord(name string, value []byte) error {
	if s.db == nil {
		return ErrNotInitialized
	}

	_, err := s.db.Exec(`
		INSERT INTO records (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, name, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write record %s: %w", name, err)
	}
	return nil
}

func (s *Store) LogNotification(rec models.NotificationRecord) error {
	if s.db == nil {
		return ErrNotInitialized
	}

	_, err := s.db.Exec(
		"INSERT INTO notification_log (reminder_id, occurrence, sent_at) VALUES (?, ?, ?)",
		rec.ReminderID, rec.Occurrence, rec.SentAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to log notification: %w", err)
	}
	return nil
}

func (s *Store) RecentNotifications(limit int) ([]models.NotificationRecord, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(`
		SELECT reminder_id, occurrence, sent_at
		FROM notification_log
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.NotificationRecord
	for rows.Next() {
		var rec models.NotificationRecord
		var sentAt string
		if err := rows.Scan(&rec.ReminderID, &rec.Occurrence, &sentAt); err != nil {
			return nil, err
		}
		if rec.SentAt, err = time.Parse(time.RFC3339, sentAt); err != nil {
			return nil, fmt.Errorf("invalid sent_at %q: %w", sentAt, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
