package invite

import "time"

// dressCodeLabels maps the closed dress-code enumeration to display strings.
// Codes outside the set render verbatim.
var dressCodeLabels = map[string]string{
	"formal":      "Formal Attire",
	"semi-formal": "Semi-Formal Attire",
	"casual":      "Casual",
	"business":    "Business Attire",
	"cocktail":    "Cocktail Attire",
	"black-tie":   "Black Tie",
	"white-tie":   "White Tie",
	"theme":       "Themed Dress",
}

func DressCodeLabel(code string) string {
	if label, ok := dressCodeLabels[code]; ok {
		return label
	}
	return code
}

// FormatDate renders the long-form date line shared by all layout variants.
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatTime renders a 24-hour HH:MM time line.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// DaysUntil is the whole number of days from now until the event start,
// never negative, for the countdown block.
func DaysUntil(start, now time.Time) int {
	d := int(start.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
