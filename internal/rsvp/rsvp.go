package rsvp

import (
	"errors"
	"fmt"

	"guestPass/internal/models"
)

var (
	ErrExceedsAllotted = errors.New("exceeds allotted passes")
	ErrNoAttendees     = errors.New("must select at least one attendee")
	ErrNegativeCount   = errors.New("counts cannot be negative")
	ErrUnknownResponse = errors.New("unknown response")
)

type Counts struct {
	Adults   int
	Children int
	Pets     int
	Total    int
}

// Normalize applies the submission rules before anything is persisted: an
// attending answer must bring between 1 and maxPasses people, any other
// answer carries no headcount at all, whatever the form inputs held.
func Normalize(status models.RSVPStatus, adults, children, pets, maxPasses int) (Counts, error) {
	if adults < 0 || children < 0 || pets < 0 {
		return Counts{}, ErrNegativeCount
	}

	switch status {
	case models.RSVPAttending:
		total := adults + children + pets
		if total == 0 {
			return Counts{}, ErrNoAttendees
		}
		if total > maxPasses {
			return Counts{}, ErrExceedsAllotted
		}
		return Counts{Adults: adults, Children: children, Pets: pets, Total: total}, nil
	case models.RSVPNotAttending, models.RSVPMaybe:
		return Counts{}, nil
	default:
		return Counts{}, fmt.Errorf("%w: %q", ErrUnknownResponse, status)
	}
}

// ConfirmationMessage is the guest-facing acknowledgement for a stored
// answer. Only the attending message carries the headcount.
func ConfirmationMessage(status models.RSVPStatus, total int) string {
	switch status {
	case models.RSVPAttending:
		return fmt.Sprintf("Thank you! We look forward to welcoming your party of %d.", total)
	case models.RSVPNotAttending:
		return "Thank you for letting us know. We're sorry you won't make it."
	case models.RSVPMaybe:
		return "Thanks! We've noted you might attend. You can update your answer any time."
	default:
		return "Your response has been recorded."
	}
}
