package dto

import (
	"time"

	prefDto "tzform/internal/domains/preference/model/dto"
	"tzform/shared/civiltime"
	"tzform/shared/zonecatalog"
)

type ViewRequest struct {
	ClientIP  string
	Zone      string
	LocalZone string
}

type ViewResponse struct {
	Catalog      []zonecatalog.Entry     `json:"catalog"`
	DefaultZone  string                  `json:"defaultZone"`
	SelectedZone string                  `json:"selectedZone"`
	DetectedZone string                  `json:"detectedZone,omitempty"`
	Advisory     string                  `json:"advisory,omitempty"`
	Now          civiltime.CivilDateTime `json:"now"`
}

// SubmitRequest carries a wall clock reading typed in TimeZone.
type SubmitRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Email       string `json:"email"       validate:"required,email,max=255"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=32"`
	DateTime    string `json:"dateTime"    validate:"required,civil"`
	TimeZone    string `json:"timeZone"    validate:"required"`
}

func (r *SubmitRequest) ToPreferenceRequest(instant civiltime.Instant) prefDto.PreferenceRequest {
	zone := r.TimeZone

	return prefDto.PreferenceRequest{
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		DateTime:    instant.Time(),
		TimeZone:    &zone,
	}
}

// FormPreference is a stored record shown as a reading in TimeZone.
type FormPreference struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	PhoneNumber string                  `json:"phoneNumber"`
	DateTime    civiltime.CivilDateTime `json:"dateTime"`
	Instant     time.Time               `json:"instant"`
	TimeZone    string                  `json:"timeZone"`
}

func (p *FormPreference) FromResponse(res prefDto.PreferenceResponse, zone string, civil civiltime.CivilDateTime) {
	p.ID = res.ID
	p.Name = res.Name
	p.Email = res.Email
	p.PhoneNumber = res.PhoneNumber
	p.DateTime = civil
	p.Instant = res.DateTime.UTC()
	p.TimeZone = zone
}

type Resolution struct {
	Kind     civiltime.Kind `json:"kind"`
	Advisory string         `json:"advisory,omitempty"`
}

type SubmitResponse struct {
	Message    string         `json:"message"`
	Preference FormPreference `json:"preference"`
	Resolution Resolution     `json:"resolution"`
}

type EditRequest struct {
	ClientIP  string
	Zone      string
	LocalZone string
}

const (
	ZoneFromRecord  = "record"
	ZoneFromRequest = "requested"
	ZoneFromDefault = "default"
)

type EditResponse struct {
	Preference FormPreference `json:"preference"`
	ZoneSource string         `json:"zoneSource"`
}

type ClockRequest struct {
	ClientIP  string
	Zone      string
	LocalZone string
}

type ClockFrame struct {
	Zone string                  `json:"zone"`
	Now  civiltime.CivilDateTime `json:"now"`
}
