package postgres

import (
	"database/sql"
	"fmt"

	"guestPass/internal/models"
)

func (s *Storage) GetRSVPResponse(guestID, eventID int) (*models.RSVPResponse, error) {
	query := `
		SELECT id, guest_id, event_id, response, adults_count, children_count,
			pets_count, passes_count, created_at, updated_at
		FROM rsvp_responses
		WHERE guest_id = $1 AND event_id = $2`

	var resp models.RSVPResponse
	err := s.DB.QueryRow(query, guestID, eventID).Scan(
		&resp.ID,
		&resp.GuestID,
		&resp.EventID,
		&resp.Response,
		&resp.AdultsCount,
		&resp.ChildrenCount,
		&resp.PetsCount,
		&resp.PassesCount,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// no answer yet is not an error
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rsvp response: %w", err)
	}

	return &resp, nil
}

// UpsertRSVPResponse stores a guest's answer, keyed by the guest/event pair.
// ON CONFLICT on the unique pair index makes the insert-or-update atomic, so
// two racing submissions from the same guest cannot produce two rows.
func (s *Storage) UpsertRSVPResponse(guestID, eventID int, status models.RSVPStatus, adults, children, pets, total int) (*models.RSVPResponse, error) {
	query := `
		INSERT INTO rsvp_responses (guest_id, event_id, response,
			adults_count, children_count, pets_count, passes_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (guest_id, event_id) DO UPDATE
		SET response = EXCLUDED.response,
			adults_count = EXCLUDED.adults_count,
			children_count = EXCLUDED.children_count,
			pets_count = EXCLUDED.pets_count,
			passes_count = EXCLUDED.passes_count,
			updated_at = NOW()
		RETURNING id, guest_id, event_id, response, adults_count, children_count,
			pets_count, passes_count, created_at, updated_at`

	var resp models.RSVPResponse
	err := s.DB.QueryRow(query, guestID, eventID, status, adults, children, pets, total).Scan(
		&resp.ID,
		&resp.GuestID,
		&resp.EventID,
		&resp.Response,
		&resp.AdultsCount,
		&resp.ChildrenCount,
		&resp.PetsCount,
		&resp.PassesCount,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert rsvp response: %w", err)
	}

	return &resp, nil
}
