package postgres

import (
	"database/sql"
	"fmt"

	"guestPass/internal/config"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Migrate declares the schema. The unique pair indexes on rsvp_responses and
// attendances are load-bearing: the application's check-then-insert sequences
// cannot rule out duplicate rows from concurrent submissions on their own.
func (s *Storage) Migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			event_type TEXT NOT NULL DEFAULT '',
			dress_code TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ,
			template_id TEXT NOT NULL DEFAULT 'modern',
			validate_full_attendance BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS guests (
			id SERIAL PRIMARY KEY,
			event_id INTEGER NOT NULL REFERENCES events(id),
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			invitation_code TEXT NOT NULL,
			qr_code_data TEXT NOT NULL DEFAULT '',
			adults_count INTEGER NOT NULL DEFAULT 0,
			children_count INTEGER NOT NULL DEFAULT 0,
			pets_count INTEGER NOT NULL DEFAULT 0,
			passes_count INTEGER NOT NULL DEFAULT 0,
			UNIQUE (event_id, invitation_code)
		)`,
		`CREATE TABLE IF NOT EXISTS rsvp_responses (
			id SERIAL PRIMARY KEY,
			guest_id INTEGER NOT NULL REFERENCES guests(id),
			event_id INTEGER NOT NULL REFERENCES events(id),
			response TEXT NOT NULL,
			adults_count INTEGER NOT NULL DEFAULT 0,
			children_count INTEGER NOT NULL DEFAULT 0,
			pets_count INTEGER NOT NULL DEFAULT 0,
			passes_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (guest_id, event_id)
		)`,
		`CREATE TABLE IF NOT EXISTS attendances (
			id SERIAL PRIMARY KEY,
			guest_id INTEGER NOT NULL REFERENCES guests(id),
			event_id INTEGER NOT NULL REFERENCES events(id),
			checked_in_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			actual_adults_count INTEGER,
			actual_children_count INTEGER,
			actual_pets_count INTEGER,
			UNIQUE (guest_id, event_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
