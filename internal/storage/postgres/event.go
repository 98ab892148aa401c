package postgres

import (
	"database/sql"
	"fmt"

	"guestPass/internal/models"
)

func (s *Storage) CreateEvent(event models.Event) (int, error) {
	query := `
		INSERT INTO events (name, description, location, event_type, dress_code, image_url,
			start_date, end_date, template_id, validate_full_attendance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		event.Name,
		event.Description,
		event.Location,
		event.EventType,
		event.DressCode,
		event.ImageURL,
		event.StartDate,
		event.EndDate,
		event.TemplateID,
		event.ValidateFullAttendance,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	query := `
		SELECT id, name, description, location, event_type, dress_code, image_url,
			start_date, end_date, template_id, validate_full_attendance
		FROM events
		WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event not found")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT id, name, description, location, event_type, dress_code, image_url,
			start_date, end_date, template_id, validate_full_attendance
		FROM events
		ORDER BY start_date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Location,
		&event.EventType,
		&event.DressCode,
		&event.ImageURL,
		&event.StartDate,
		&event.EndDate,
		&event.TemplateID,
		&event.ValidateFullAttendance,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
