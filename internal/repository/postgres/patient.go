package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medoffice/patient-api/internal/model"
	"github.com/medoffice/patient-api/internal/repository"
)

const patientColumns = `id, first_name, last_name, birth_date, gender, phone,
		email, address, allergies, symptoms, created_at, deleted_at`

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) ListActive(ctx context.Context) ([]*model.Patient, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM patients
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`, patientColumns)

	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) GetActive(ctx context.Context, id model.ID) (*model.Patient, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM patients
		WHERE id = $1 AND deleted_at IS NULL
	`, patientColumns)

	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (first_name, last_name, birth_date, gender, phone,
			email, address, allergies, symptoms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	row := r.db.QueryRowContext(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.BirthDate,
		patient.Gender,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.Allergies,
		patient.Symptoms,
	)
	if err := row.Scan(&patient.ID, &patient.CreatedAt); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) (bool, error) {
	query := `
		UPDATE patients
		SET first_name = $1, last_name = $2, birth_date = $3, gender = $4,
			phone = $5, email = $6, address = $7, allergies = $8, symptoms = $9
		WHERE id = $10
	`

	res, err := r.db.ExecContext(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.BirthDate,
		patient.Gender,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.Allergies,
		patient.Symptoms,
		patient.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update patient: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update patient: %w", err)
	}
	return rows > 0, nil
}

func (r *patientRepository) SoftDelete(ctx context.Context, id model.ID) (bool, error) {
	// Re-stamps deleted_at when the row is already soft-deleted; the record
	// never reappears either way.
	query := `UPDATE patients SET deleted_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete patient: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete patient: %w", err)
	}
	return rows > 0, nil
}
