package models

import "time"

// RSVPStatus is a guest's stored answer. Unanswered is never persisted: it is
// what a lookup reports when no row exists for the guest/event pair yet.
type RSVPStatus string

const (
	RSVPUnanswered   RSVPStatus = "unanswered"
	RSVPAttending    RSVPStatus = "attending"
	RSVPNotAttending RSVPStatus = "not_attending"
	RSVPMaybe        RSVPStatus = "maybe"
)

type RSVPResponse struct {
	ID            int        `json:"id"`
	GuestID       int        `json:"guest_id"`
	EventID       int        `json:"event_id"`
	Response      RSVPStatus `json:"response"`
	AdultsCount   int        `json:"adults_count"`
	ChildrenCount int        `json:"children_count"`
	PetsCount     int        `json:"pets_count"`
	PassesCount   int        `json:"passes_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
