package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medoffice/patient-api/internal/model"
	"github.com/medoffice/patient-api/internal/repository"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientID model.ID) ([]*model.Appointment, error) {
	query := `
		SELECT id, patient_id, start_time, reason, status, created_at
		FROM appointments
		WHERE patient_id = $1
		ORDER BY start_time
	`

	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
