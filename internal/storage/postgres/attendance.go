package postgres

import (
	"errors"
	"fmt"

	"guestPass/internal/models"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code a duplicate key insert fails with.
const uniqueViolation = "23505"

// CreateAttendance records a guest's check-in exactly once. A second attempt
// for the same pair is rejected, whether it is caught by the pre-check or by
// the unique pair index when two scans race.
func (s *Storage) CreateAttendance(guestID, eventID int, actualAdults, actualChildren, actualPets *int) (*models.Attendance, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM attendances
			WHERE guest_id = $1 AND event_id = $2
		)`

	if err = tx.QueryRow(checkQuery, guestID, eventID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("already checked in")
	}

	insertQuery := `
		INSERT INTO attendances (guest_id, event_id, checked_in_at,
			actual_adults_count, actual_children_count, actual_pets_count)
		VALUES ($1, $2, NOW(), $3, $4, $5)
		RETURNING id, guest_id, event_id, checked_in_at,
			actual_adults_count, actual_children_count, actual_pets_count`

	attendance, err := scanAttendance(tx.QueryRow(insertQuery, guestID, eventID, actualAdults, actualChildren, actualPets))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("already checked in")
		}
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return attendance, nil
}

func (s *Storage) ListAttendancesForEvent(eventID int) ([]models.Attendance, error) {
	query := `
		SELECT id, guest_id, event_id, checked_in_at,
			actual_adults_count, actual_children_count, actual_pets_count
		FROM attendances
		WHERE event_id = $1
		ORDER BY checked_in_at ASC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendances: %w", err)
	}
	defer rows.Close()

	var attendances []models.Attendance
	for rows.Next() {
		attendance, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, *attendance)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendances: %w", err)
	}

	return attendances, nil
}

func scanAttendance(row rowScanner) (*models.Attendance, error) {
	var a models.Attendance
	err := row.Scan(
		&a.ID,
		&a.GuestID,
		&a.EventID,
		&a.CheckedInAt,
		&a.ActualAdultsCount,
		&a.ActualChildrenCount,
		&a.ActualPetsCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
