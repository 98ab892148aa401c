package invite

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// QRPayload is the exact structure serialized into a guest's QR symbol. The
// encoded string is stored on the guest record and parsed back out by
// check-in scanners, so field names and order are part of the contract.
type QRPayload struct {
	EventID        int    `json:"event_id"`
	EventName      string `json:"event_name"`
	GuestName      string `json:"guest_name"`
	InvitationCode string `json:"invitation_code"`
}

func (p QRPayload) Encode() string {
	data, err := json.Marshal(p)
	if err != nil {
		// all fields are ints and strings, Marshal cannot fail here
		return ""
	}
	return string(data)
}

func ParseQRPayload(data string) (QRPayload, error) {
	var p QRPayload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return QRPayload{}, fmt.Errorf("failed to parse qr payload: %w", err)
	}
	if p.InvitationCode == "" {
		return QRPayload{}, fmt.Errorf("qr payload has no invitation code")
	}
	return p, nil
}

// InvitationCode composes a guest's invitation code from an event code, the
// truncated guest name and a per-event sequence number. Only uniqueness per
// event is contractual; the shape exists for human readability at the door.
func InvitationCode(eventName string, eventID int, guestName string, seq int) string {
	return fmt.Sprintf("%s%d-%s-%03d", codePart(eventName, 3, "EVT"), eventID, codePart(guestName, 4, "GST"), seq)
}

func codePart(name string, n int, fallback string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() >= n {
				break
			}
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
