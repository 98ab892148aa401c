package postgres

import (
	"database/sql"
	"fmt"

	"guestPass/internal/invite"
	"guestPass/internal/models"
)

const guestColumns = `id, event_id, name, email, phone, invitation_code, qr_code_data,
	adults_count, children_count, pets_count, passes_count`

// CreateGuest inserts a guest and generates the invitation code and QR
// payload in the same transaction, using the current guest count as the
// sequence number. The (event_id, invitation_code) unique constraint is the
// backstop if two inserts race to the same sequence.
func (s *Storage) CreateGuest(guest models.Guest) (*models.Guest, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var eventName string
	err = tx.QueryRow(`SELECT name FROM events WHERE id = $1`, guest.EventID).Scan(&eventName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event not found")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var seq int
	err = tx.QueryRow(`SELECT COUNT(*) FROM guests WHERE event_id = $1`, guest.EventID).Scan(&seq)
	if err != nil {
		return nil, fmt.Errorf("failed to count guests: %w", err)
	}

	guest.PassesCount = guest.AdultsCount + guest.ChildrenCount + guest.PetsCount
	guest.InvitationCode = invite.InvitationCode(eventName, guest.EventID, guest.Name, seq+1)
	guest.QRCodeData = invite.QRPayload{
		EventID:        guest.EventID,
		EventName:      eventName,
		GuestName:      guest.Name,
		InvitationCode: guest.InvitationCode,
	}.Encode()

	query := `
		INSERT INTO guests (event_id, name, email, phone, invitation_code, qr_code_data,
			adults_count, children_count, pets_count, passes_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err = tx.QueryRow(query,
		guest.EventID,
		guest.Name,
		guest.Email,
		guest.Phone,
		guest.InvitationCode,
		guest.QRCodeData,
		guest.AdultsCount,
		guest.ChildrenCount,
		guest.PetsCount,
		guest.PassesCount,
	).Scan(&guest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &guest, nil
}

func (s *Storage) GetGuestByInvitationCode(code string) (*models.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE invitation_code = $1`

	guest, err := scanGuest(s.DB.QueryRow(query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("guest not found")
		}
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}

	return guest, nil
}

// UpdateGuestAllotment replaces the adults/children/pets triple and
// recomputes passes_count in the same statement, keeping the sum invariant.
func (s *Storage) UpdateGuestAllotment(guestID, adults, children, pets int) (*models.Guest, error) {
	query := `
		UPDATE guests
		SET adults_count = $2, children_count = $3, pets_count = $4,
			passes_count = $2 + $3 + $4
		WHERE id = $1
		RETURNING ` + guestColumns

	guest, err := scanGuest(s.DB.QueryRow(query, guestID, adults, children, pets))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("guest not found")
		}
		return nil, fmt.Errorf("failed to update guest allotment: %w", err)
	}

	return guest, nil
}

func (s *Storage) ListGuestsForEvent(eventID int) ([]models.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1 ORDER BY id ASC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	defer rows.Close()

	var guests []models.Guest
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, *guest)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guests: %w", err)
	}

	return guests, nil
}

func scanGuest(row rowScanner) (*models.Guest, error) {
	var guest models.Guest
	err := row.Scan(
		&guest.ID,
		&guest.EventID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.InvitationCode,
		&guest.QRCodeData,
		&guest.AdultsCount,
		&guest.ChildrenCount,
		&guest.PetsCount,
		&guest.PassesCount,
	)
	if err != nil {
		return nil, err
	}
	return &guest, nil
}
