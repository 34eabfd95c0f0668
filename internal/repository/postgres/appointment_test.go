package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medoffice/patient-api/internal/model"
)

func TestListForPatient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)

	start := time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "patient_id", "start_time", "reason", "status", "created_at"}).
		AddRow(int64(1), int64(7), start, "checkup", "scheduled", time.Now())

	mock.ExpectQuery(`(?s)SELECT .+ FROM appointments\s+WHERE patient_id = \$1\s+ORDER BY start_time`).
		WithArgs(model.ID(7)).
		WillReturnRows(rows)

	appointments, err := repo.ListForPatient(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, model.AppointmentStatusScheduled, appointments[0].Status)
	assert.Equal(t, model.ID(7), appointments[0].PatientID)
}

func TestListForPatientEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)

	mock.ExpectQuery(`(?s)SELECT .+ FROM appointments\s+WHERE patient_id = \$1`).
		WithArgs(model.ID(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "start_time", "reason", "status", "created_at"}))

	appointments, err := repo.ListForPatient(context.Background(), 8)
	require.NoError(t, err)
	assert.Empty(t, appointments)
}
