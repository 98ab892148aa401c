package models

import "time"

type Event struct {
	ID                     int        `json:"id"`
	Name                   string     `json:"name"`
	Description            string     `json:"description,omitempty"`
	Location               string     `json:"location,omitempty"`
	EventType              string     `json:"event_type,omitempty"`
	DressCode              string     `json:"dress_code,omitempty"`
	ImageURL               string     `json:"image_url,omitempty"`
	StartDate              time.Time  `json:"start_date"`
	EndDate                *time.Time `json:"end_date,omitempty"`
	TemplateID             string     `json:"template_id"`
	ValidateFullAttendance bool       `json:"validate_full_attendance"`
}
