package checkin

import (
	"errors"
	"fmt"

	"guestPass/internal/models"
)

var (
	ErrCountsRequired    = errors.New("this event requires actual headcounts at check-in")
	ErrHeadcountMismatch = errors.New("headcount does not match allotted passes")
)

// ValidateStrict enforces the full-attendance rule: when an event validates
// attendance, the reported headcount must equal the guest's allotment
// exactly. Under-reporting fails the same way over-reporting does.
func ValidateStrict(guest models.Guest, adults, children, pets *int) error {
	if adults == nil || children == nil || pets == nil {
		return ErrCountsRequired
	}
	if *adults < 0 || *children < 0 || *pets < 0 {
		return fmt.Errorf("%w: counts cannot be negative", ErrCountsRequired)
	}

	total := *adults + *children + *pets
	if total != guest.PassesCount {
		return fmt.Errorf("%w: got %d, expected %d", ErrHeadcountMismatch, total, guest.PassesCount)
	}

	return nil
}
