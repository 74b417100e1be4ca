package model

import (
	"time"

	"tzform/shared/model"
)

const (
	TableName  = "preferences"
	EntityName = "preference"

	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldDateTime    = "date_time"
	FieldTimeZone    = "time_zone"
)

// Preference is a scheduling preference. DateTime is the stored instant in UTC;
// TimeZone only records which zone the user picked and never changes DateTime.
type Preference struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	PhoneNumber string    `db:"phone_number"`
	DateTime    time.Time `db:"date_time"`
	TimeZone    *string   `db:"time_zone"`
	model.Metadata
}

// Filter narrows list queries. Empty fields match everything.
type Filter struct {
	Name  string
	Email string
}

const (
	EventCreated = "preference.created"
	EventUpdated = "preference.updated"
	EventDeleted = "preference.deleted"
)

type Event struct {
	Type       string     `json:"type"`
	ID         string     `json:"id"`
	DateTime   *time.Time `json:"dateTime,omitempty"`
	TimeZone   *string    `json:"timeZone,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}

func NewEvent(eventType string, pref Preference, now time.Time) Event {
	event := Event{
		Type:       eventType,
		ID:         pref.ID,
		OccurredAt: now.UTC(),
	}

	if eventType != EventDeleted {
		at := pref.DateTime.UTC()
		event.DateTime = &at
		event.TimeZone = pref.TimeZone
	}

	return event
}
