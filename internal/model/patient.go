package model

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "OTHER"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Patient is the persisted patient record. DeletedAt non-nil means the
// record is soft-deleted and invisible to normal clinical workflows.
type Patient struct {
	ID           ID             `db:"id" json:"id"`
	FirstName    string         `db:"first_name" json:"firstName"`
	LastName     string         `db:"last_name" json:"lastName"`
	BirthDate    Date           `db:"birth_date" json:"birthDate"`
	Gender       Gender         `db:"gender" json:"gender"`
	Phone        string         `db:"phone" json:"phone"`
	Email        *string        `db:"email" json:"email"`
	Address      *string        `db:"address" json:"address"`
	Allergies    *string        `db:"allergies" json:"allergies"`
	Symptoms     *string        `db:"symptoms" json:"symptoms"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	DeletedAt    *time.Time     `db:"deleted_at" json:"deletedAt"`
	Appointments []*Appointment `db:"-" json:"appointments,omitempty"`
}

type CreatePatientRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	BirthDate string  `json:"birthDate"`
	Gender    string  `json:"gender"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Address   *string `json:"address"`
	Allergies *string `json:"allergies"`
	Symptoms  *string `json:"symptoms"`
}

// MissingFields lists the required fields that are absent or empty, in the
// order clients expect to see them named.
func (r *CreatePatientRequest) MissingFields() []string {
	var missing []string
	if r.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if r.LastName == "" {
		missing = append(missing, "lastName")
	}
	if r.BirthDate == "" {
		missing = append(missing, "birthDate")
	}
	if r.Phone == "" {
		missing = append(missing, "phone")
	}
	if r.Gender == "" {
		missing = append(missing, "gender")
	}
	return missing
}

// PatientPatch is a partial update. System-owned fields (id, createdAt,
// deletedAt) deliberately have no counterpart here, so clients can never
// set them through an update.
type PatientPatch struct {
	FirstName Optional[string] `json:"firstName"`
	LastName  Optional[string] `json:"lastName"`
	BirthDate Optional[string] `json:"birthDate"`
	Gender    Optional[string] `json:"gender"`
	Phone     Optional[string] `json:"phone"`
	Email     Optional[string] `json:"email"`
	Address   Optional[string] `json:"address"`
	Allergies Optional[string] `json:"allergies"`
	Symptoms  Optional[string] `json:"symptoms"`
}
