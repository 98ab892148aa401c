package models

// Guest is one invitation on an event's guest list. InvitationCode and
// QRCodeData are generated once at creation and never change afterwards.
type Guest struct {
	ID             int    `json:"id"`
	EventID        int    `json:"event_id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	InvitationCode string `json:"invitation_code"`
	QRCodeData     string `json:"qr_code_data,omitempty"`
	AdultsCount    int    `json:"adults_count"`
	ChildrenCount  int    `json:"children_count"`
	PetsCount      int    `json:"pets_count"`
	PassesCount    int    `json:"passes_count"`
}
