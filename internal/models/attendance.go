package models

import "time"

// Attendance records a guest's physical check-in. The actual counts are only
// captured when the event validates full attendance; nil means reporting
// falls back to the guest's allotment.
type Attendance struct {
	ID                  int       `json:"id"`
	GuestID             int       `json:"guest_id"`
	EventID             int       `json:"event_id"`
	CheckedInAt         time.Time `json:"checked_in_at"`
	ActualAdultsCount   *int      `json:"actual_adults_count,omitempty"`
	ActualChildrenCount *int      `json:"actual_children_count,omitempty"`
	ActualPetsCount     *int      `json:"actual_pets_count,omitempty"`
}
