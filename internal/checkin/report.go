package checkin

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"guestPass/internal/models"
)

// ReportRow is one guest's line in the reconciliation report. Present counts
// come from the attendance record when actuals were captured; an attendance
// without actuals counts as the full allotment having shown up, never as zero.
type ReportRow struct {
	GuestID          int        `json:"guest_id"`
	GuestName        string     `json:"guest_name"`
	InvitationCode   string     `json:"invitation_code"`
	AllottedAdults   int        `json:"allotted_adults"`
	AllottedChildren int        `json:"allotted_children"`
	AllottedPets     int        `json:"allotted_pets"`
	AllottedPasses   int        `json:"allotted_passes"`
	CheckedIn        bool       `json:"checked_in"`
	CheckedInAt      *time.Time `json:"checked_in_at,omitempty"`
	PresentAdults    int        `json:"present_adults"`
	PresentChildren  int        `json:"present_children"`
	PresentPets      int        `json:"present_pets"`
	PresentTotal     int        `json:"present_total"`
}

type Totals struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Pets     int `json:"pets"`
	Total    int `json:"total"`
}

type Report struct {
	EventID   int         `json:"event_id"`
	EventName string      `json:"event_name"`
	Rows      []ReportRow `json:"rows"`
	Confirmed Totals      `json:"confirmed"`
	Present   Totals      `json:"present"`
	// PresentRatio is present total over confirmed total, 0 for an empty list.
	PresentRatio float64 `json:"present_ratio"`
}

// BuildReport aggregates confirmed vs. present headcounts for one event.
// Pure aggregation, no side effects.
func BuildReport(event models.Event, guests []models.Guest, attendances []models.Attendance) Report {
	byGuest := make(map[int]models.Attendance, len(attendances))
	for _, a := range attendances {
		byGuest[a.GuestID] = a
	}

	report := Report{
		EventID:   event.ID,
		EventName: event.Name,
		Rows:      make([]ReportRow, 0, len(guests)),
	}

	for _, g := range guests {
		row := ReportRow{
			GuestID:          g.ID,
			GuestName:        g.Name,
			InvitationCode:   g.InvitationCode,
			AllottedAdults:   g.AdultsCount,
			AllottedChildren: g.ChildrenCount,
			AllottedPets:     g.PetsCount,
			AllottedPasses:   g.PassesCount,
		}

		report.Confirmed.Adults += g.AdultsCount
		report.Confirmed.Children += g.ChildrenCount
		report.Confirmed.Pets += g.PetsCount
		report.Confirmed.Total += g.PassesCount

		if a, ok := byGuest[g.ID]; ok {
			checkedInAt := a.CheckedInAt
			row.CheckedIn = true
			row.CheckedInAt = &checkedInAt
			row.PresentAdults = countOr(a.ActualAdultsCount, g.AdultsCount)
			row.PresentChildren = countOr(a.ActualChildrenCount, g.ChildrenCount)
			row.PresentPets = countOr(a.ActualPetsCount, g.PetsCount)
			row.PresentTotal = row.PresentAdults + row.PresentChildren + row.PresentPets

			report.Present.Adults += row.PresentAdults
			report.Present.Children += row.PresentChildren
			report.Present.Pets += row.PresentPets
			report.Present.Total += row.PresentTotal
		}

		report.Rows = append(report.Rows, row)
	}

	if report.Confirmed.Total > 0 {
		report.PresentRatio = float64(report.Present.Total) / float64(report.Confirmed.Total)
	}

	return report
}

func countOr(actual *int, allotted int) int {
	if actual != nil {
		return *actual
	}
	return allotted
}

// WriteCSV writes the report in the organizer-export layout: one row per
// guest, then a totals row.
func WriteCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)

	header := []string{
		"guest_name", "invitation_code",
		"allotted_adults", "allotted_children", "allotted_pets", "allotted_passes",
		"checked_in", "checked_in_at",
		"present_adults", "present_children", "present_pets", "present_total",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range report.Rows {
		checkedInAt := ""
		if row.CheckedInAt != nil {
			checkedInAt = row.CheckedInAt.Format(time.RFC3339)
		}

		record := []string{
			row.GuestName, row.InvitationCode,
			itoa(row.AllottedAdults), itoa(row.AllottedChildren), itoa(row.AllottedPets), itoa(row.AllottedPasses),
			fmt.Sprintf("%t", row.CheckedIn), checkedInAt,
			itoa(row.PresentAdults), itoa(row.PresentChildren), itoa(row.PresentPets), itoa(row.PresentTotal),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	totals := []string{
		"TOTAL", "",
		itoa(report.Confirmed.Adults), itoa(report.Confirmed.Children), itoa(report.Confirmed.Pets), itoa(report.Confirmed.Total),
		"", "",
		itoa(report.Present.Adults), itoa(report.Present.Children), itoa(report.Present.Pets), itoa(report.Present.Total),
	}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("failed to write csv totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
