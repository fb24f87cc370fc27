package postgres

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
	err := s.db.QueryRow("SELECT value FROM records WHERE name = $1", name).Scan(&value)
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
		INSERT INTO records (name, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, name, string(value), time.Now().UTC())
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
		"INSERT INTO notification_log (reminder_id, occurrence, sent_at) VALUES ($1, $2, $3)",
		rec.ReminderID, rec.Occurrence, rec.SentAt.UTC(),
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

	query := "SELECT reminder_id, occurrence, sent_at FROM notification_log ORDER BY id DESC"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.NotificationRecord
	for rows.Next() {
		var rec models.NotificationRecord
		if err := rows.Scan(&rec.ReminderID, &rec.Occurrence, &rec.SentAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
