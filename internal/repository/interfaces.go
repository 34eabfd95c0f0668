package repository

import (
	"context"

	"github.com/medoffice/patient-api/internal/model"
)

// PatientRepository is the only component allowed to read or write the
// patients table. Soft-delete visibility lives in its queries, not in
// callers.
type PatientRepository interface {
	// ListActive returns non-deleted patients, newest first.
	ListActive(ctx context.Context) ([]*model.Patient, error)
	// GetActive returns the non-deleted patient with the given id, or
	// (nil, nil) when no such record exists.
	GetActive(ctx context.Context, id model.ID) (*model.Patient, error)
	// Create persists a new patient and fills in its id and created_at.
	Create(ctx context.Context, patient *model.Patient) error
	// Update rewrites the mutable columns of an existing row. Returns
	// (false, nil) when no row with that id exists.
	Update(ctx context.Context, patient *model.Patient) (bool, error)
	// SoftDelete stamps deleted_at on the row, re-stamping an already
	// deleted one. Returns (false, nil) when no row with that id exists.
	SoftDelete(ctx context.Context, id model.ID) (bool, error)
}

// AppointmentRepository reads the appointments joined onto a patient.
type AppointmentRepository interface {
	ListForPatient(ctx context.Context, patientID model.ID) ([]*model.Appointment, error)
}
