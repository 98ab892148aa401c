package invite

import (
	"time"

	"guestPass/internal/models"
)

const DefaultTemplate = "modern"

// TemplateIDs is the closed set of layout variants. Anything outside it
// resolves to DefaultTemplate.
var TemplateIDs = []string{"modern", "elegant", "festive", "corporate", "minimalist"}

// Params is the raw renderer input: a template choice, the event and guest as
// they arrived from storage, and caller-supplied pass-count defaults for call
// sites that render a preview without a real guest.
type Params struct {
	TemplateID      string
	Event           models.Event
	Guest           models.Guest
	ShowRSVP        bool
	MaxPasses       int
	DefaultAdults   int
	DefaultChildren int
	DefaultPets     int
}

// View is the normalized input every layout variant renders from.
type View struct {
	Template        string
	Event           models.Event
	Guest           models.Guest
	ShowRSVP        bool
	ShowQR          bool
	MaxPasses       int
	DefaultAdults   int
	DefaultChildren int
	DefaultPets     int
	Now             time.Time
}

// Resolve applies the defaulting and precedence rules in one place, before
// any rendering happens:
//   - unknown or empty template ids become the default variant,
//   - a missing start date becomes now, so date widgets always have a value,
//   - a guest that carries an allotment overrides caller-supplied pass
//     defaults; caller defaults apply only to allotment-less preview guests,
//   - the RSVP widget needs both a persisted event and a persisted guest.
func Resolve(p Params, now time.Time) View {
	v := View{
		Template:        DefaultTemplate,
		Event:           p.Event,
		Guest:           p.Guest,
		MaxPasses:       p.MaxPasses,
		DefaultAdults:   p.DefaultAdults,
		DefaultChildren: p.DefaultChildren,
		DefaultPets:     p.DefaultPets,
		Now:             now,
	}

	for _, id := range TemplateIDs {
		if p.TemplateID == id {
			v.Template = id
			break
		}
	}

	if v.Event.StartDate.IsZero() {
		v.Event.StartDate = now
	}

	if p.Guest.PassesCount > 0 {
		v.MaxPasses = p.Guest.PassesCount
		v.DefaultAdults = p.Guest.AdultsCount
		v.DefaultChildren = p.Guest.ChildrenCount
		v.DefaultPets = p.Guest.PetsCount
	}
	if v.MaxPasses <= 0 {
		v.MaxPasses = 1
	}

	v.ShowRSVP = p.ShowRSVP && p.Event.ID != 0 && p.Guest.ID != 0
	v.ShowQR = p.Guest.QRCodeData != ""

	return v
}
