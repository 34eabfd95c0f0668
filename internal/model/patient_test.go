package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientJSONShape(t *testing.T) {
	birthDate, err := ParseDate("1990-05-01")
	require.NoError(t, err)

	email := "ana@example.com"
	p := Patient{
		ID:        ID(9007199254740993),
		FirstName: "Ana",
		LastName:  "Diaz",
		BirthDate: birthDate,
		Gender:    GenderFemale,
		Phone:     "555-1111",
		Email:     &email,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "9007199254740993", decoded["id"])
	assert.Equal(t, "1990-05-01", decoded["birthDate"])
	assert.Equal(t, "F", decoded["gender"])
	assert.Nil(t, decoded["deletedAt"])
	assert.Nil(t, decoded["address"])
	// Appointments only appear on single-record fetch.
	_, hasAppointments := decoded["appointments"]
	assert.False(t, hasAppointments)
}

func TestParseDateRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "01-05-1990", "1990/05/01", "1990-13-01", "not a date"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestPatientPatchTracksPresence(t *testing.T) {
	var patch PatientPatch
	require.NoError(t, json.Unmarshal([]byte(`{"symptoms":"fever","email":null}`), &patch))

	assert.True(t, patch.Symptoms.Set)
	assert.True(t, patch.Symptoms.Valid)
	assert.Equal(t, "fever", patch.Symptoms.Value)

	// Explicit null: present but invalid.
	assert.True(t, patch.Email.Set)
	assert.False(t, patch.Email.Valid)

	// Absent keys stay unset.
	assert.False(t, patch.FirstName.Set)
	assert.False(t, patch.BirthDate.Set)
}

func TestPatientPatchIgnoresSystemFields(t *testing.T) {
	var patch PatientPatch
	body := `{"id":"99","createdAt":"2020-01-01T00:00:00Z","deletedAt":"2020-01-01T00:00:00Z","phone":"555"}`
	require.NoError(t, json.Unmarshal([]byte(body), &patch))

	assert.True(t, patch.Phone.Set)
	assert.Equal(t, "555", patch.Phone.Value)
}

func TestMissingFields(t *testing.T) {
	req := CreatePatientRequest{FirstName: "Ana", Gender: "F"}
	assert.Equal(t, []string{"lastName", "birthDate", "phone"}, req.MissingFields())

	full := CreatePatientRequest{
		FirstName: "Ana",
		LastName:  "Diaz",
		BirthDate: "1990-05-01",
		Gender:    "F",
		Phone:     "555-1111",
	}
	assert.Empty(t, full.MissingFields())
}
