package dto

import (
	"time"

	"github.com/google/uuid"

	"tzform/internal/domains/preference/model"
	"tzform/shared"
	gDto "tzform/shared/dto"
	gModel "tzform/shared/model"
	"tzform/shared/timezone"
)

// PreferenceRequest is the body of create and replace calls. DateTime is an
// absolute instant; TimeZone is a display hint.
type PreferenceRequest struct {
	Name        string    `json:"name"        validate:"required,max=255"`
	Email       string    `json:"email"       validate:"required,email,max=255"`
	PhoneNumber string    `json:"phoneNumber" validate:"required,max=32"`
	DateTime    time.Time `json:"dateTime"    validate:"required"`
	TimeZone    *string   `json:"timeZone"    validate:"omitempty,zoneid"`
}

func (r *PreferenceRequest) ToModel() model.Preference {
	return model.Preference{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		DateTime:    r.DateTime.UTC(),
		TimeZone:    emptyToNil(r.TimeZone),
		Metadata:    gModel.NewMetadata(timezone.Now()),
	}
}

// Apply replaces every field of existing. An omitted timeZone keeps the stored one.
func (r *PreferenceRequest) Apply(existing model.Preference) model.Preference {
	existing.Name = r.Name
	existing.Email = r.Email
	existing.PhoneNumber = r.PhoneNumber
	existing.DateTime = r.DateTime.UTC()

	if r.TimeZone != nil {
		existing.TimeZone = emptyToNil(r.TimeZone)
	}

	existing.Touch(timezone.Now())

	return existing
}

func emptyToNil(zone *string) *string {
	if zone == nil || *zone == "" {
		return nil
	}

	z := *zone

	return &z
}

type PreferenceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	DateTime    time.Time `json:"dateTime"`
	TimeZone    *string   `json:"timeZone,omitempty"`
	gDto.Metadata
}

func (r *PreferenceResponse) FromModel(p model.Preference) {
	r.ID = p.ID
	r.Name = p.Name
	r.Email = p.Email
	r.PhoneNumber = p.PhoneNumber
	r.DateTime = p.DateTime.UTC()
	r.TimeZone = p.TimeZone
	r.Metadata.FromModel(p.Metadata)
}

type GetPreferencesResponse struct {
	Preferences []PreferenceResponse `json:"preferences"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetPreferencesResponse) FromModels(models []model.Preference, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Preferences = make([]PreferenceResponse, len(models))
	for i, mod := range models {
		r.Preferences[i].FromModel(mod)
	}
}

// MutationResponse pairs a confirmation message with the stored record.
type MutationResponse struct {
	Message    string             `json:"message"`
	Preference PreferenceResponse `json:"preference"`
}
