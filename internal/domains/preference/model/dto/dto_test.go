package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzform/internal/domains/preference/model"
	"tzform/internal/domains/preference/model/dto"
)

func strPtr(s string) *string {
	return &s
}

func TestPreferenceRequest_ToModel(t *testing.T) {
	ny := time.FixedZone("EST", -5*60*60)
	req := dto.PreferenceRequest{
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "1234567890",
		DateTime:    time.Date(2025, 1, 1, 5, 0, 0, 0, ny),
		TimeZone:    strPtr("America/New_York"),
	}

	pref := req.ToModel()

	assert.NotEmpty(t, pref.ID)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), pref.DateTime)
	assert.Equal(t, time.UTC, pref.DateTime.Location())
	assert.Equal(t, "America/New_York", *pref.TimeZone)
	assert.False(t, pref.CreatedAt.IsZero())
	assert.Equal(t, pref.CreatedAt, pref.ModifiedAt)
}

func TestPreferenceRequest_ToModelEmptyZone(t *testing.T) {
	req := dto.PreferenceRequest{DateTime: time.Now(), TimeZone: strPtr("")}

	assert.Nil(t, req.ToModel().TimeZone)
}

func TestPreferenceRequest_Apply(t *testing.T) {
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := model.Preference{
		ID:       "1",
		Name:     "John Doe",
		DateTime: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		TimeZone: strPtr("Europe/Berlin"),
	}
	existing.CreatedAt = created

	tests := []struct {
		name     string
		zone     *string
		wantZone *string
	}{
		{name: "omitted zone is kept", zone: nil, wantZone: strPtr("Europe/Berlin")},
		{name: "new zone replaces", zone: strPtr("Asia/Tokyo"), wantZone: strPtr("Asia/Tokyo")},
		{name: "empty zone clears", zone: strPtr(""), wantZone: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.PreferenceRequest{
				Name:        "Jane Roe",
				Email:       "jane@example.com",
				PhoneNumber: "555",
				DateTime:    time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
				TimeZone:    tt.zone,
			}

			updated := req.Apply(existing)

			assert.Equal(t, "1", updated.ID)
			assert.Equal(t, "Jane Roe", updated.Name)
			assert.Equal(t, req.DateTime, updated.DateTime)
			assert.Equal(t, tt.wantZone, updated.TimeZone)
			assert.Equal(t, created, updated.CreatedAt)
			assert.True(t, updated.ModifiedAt.After(created))
		})
	}
}

func TestPreferenceResponse_JSON(t *testing.T) {
	res := dto.PreferenceResponse{}
	res.FromModel(model.Preference{
		ID:          "1",
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "1234567890",
		DateTime:    time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "2025-01-01T10:00:00Z", body["dateTime"])
	assert.Equal(t, "1234567890", body["phoneNumber"])
	assert.NotContains(t, body, "timeZone")
}

func TestGetPreferencesResponse_FromModels(t *testing.T) {
	res := dto.GetPreferencesResponse{}
	res.FromModels([]model.Preference{{ID: "1"}, {ID: "2"}}, 21, 10)

	assert.Len(t, res.Preferences, 2)
	assert.Equal(t, 21, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}
