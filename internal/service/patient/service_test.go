package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medoffice/patient-api/internal/model"
	apperrors "github.com/medoffice/patient-api/pkg/errors"
)

type fakePatientRepo struct {
	patients map[model.ID]*model.Patient
	nextID   model.ID
	creates  int
	err      error
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{
		patients: make(map[model.ID]*model.Patient),
		nextID:   1,
	}
}

func (f *fakePatientRepo) ListActive(_ context.Context) ([]*model.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Patient
	for _, p := range f.patients {
		if p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePatientRepo) GetActive(_ context.Context, id model.ID) (*model.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.patients[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	if f.err != nil {
		return f.err
	}
	f.creates++
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	f.nextID++
	cp := *p
	f.patients[p.ID] = &cp
	return nil
}

func (f *fakePatientRepo) Update(_ context.Context, p *model.Patient) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	stored, ok := f.patients[p.ID]
	if !ok {
		return false, nil
	}
	cp := *p
	cp.CreatedAt = stored.CreatedAt
	cp.DeletedAt = stored.DeletedAt
	f.patients[p.ID] = &cp
	return true, nil
}

func (f *fakePatientRepo) SoftDelete(_ context.Context, id model.ID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	p, ok := f.patients[id]
	if !ok {
		return false, nil
	}
	now := time.Now()
	p.DeletedAt = &now
	return true, nil
}

type fakeAppointmentRepo struct {
	appointments []*model.Appointment
	err          error
}

func (f *fakeAppointmentRepo) ListForPatient(_ context.Context, _ model.ID) ([]*model.Appointment, error) {
	return f.appointments, f.err
}

func newTestService() (*Service, *fakePatientRepo) {
	repo := newFakePatientRepo()
	return NewService(repo, &fakeAppointmentRepo{}), repo
}

func validCreateRequest() *model.CreatePatientRequest {
	return &model.CreatePatientRequest{
		FirstName: "Ana",
		LastName:  "Diaz",
		BirthDate: "1990-05-01",
		Gender:    "F",
		Phone:     "555-1111",
	}
}

func TestCreatePatient(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, model.ID(1), p.ID)
	assert.Equal(t, "1990-05-01", p.BirthDate.String())
	assert.Equal(t, model.GenderFemale, p.Gender)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Nil(t, p.DeletedAt)
}

func TestCreatePatientMissingFieldsSkipsStorage(t *testing.T) {
	svc, repo := newTestService()

	req := validCreateRequest()
	req.Phone = ""
	req.Gender = ""

	_, err := svc.CreatePatient(context.Background(), req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "phone")
	assert.Contains(t, appErr.Message, "gender")
	assert.Zero(t, repo.creates)
}

func TestCreatePatientRejectsBadGender(t *testing.T) {
	svc, repo := newTestService()

	req := validCreateRequest()
	req.Gender = "X"

	_, err := svc.CreatePatient(context.Background(), req)
	require.Error(t, err)
	assert.Zero(t, repo.creates)
}

func TestCreatePatientRejectsBadBirthDate(t *testing.T) {
	svc, repo := newTestService()

	req := validCreateRequest()
	req.BirthDate = "05/01/1990"

	_, err := svc.CreatePatient(context.Background(), req)
	require.Error(t, err)
	assert.Zero(t, repo.creates)
}

func TestGetPatientPopulatesAppointments(t *testing.T) {
	repo := newFakePatientRepo()
	appointments := &fakeAppointmentRepo{
		appointments: []*model.Appointment{{ID: 3, PatientID: 1, Status: model.AppointmentStatusScheduled}},
	}
	svc := NewService(repo, appointments)

	created, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)

	got, err := svc.GetPatient(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Appointments, 1)
}

func TestGetPatientNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetPatient(context.Background(), 404)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdatePatientPartialMerge(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)

	patch := &model.PatientPatch{
		Symptoms: model.Optional[string]{Set: true, Valid: true, Value: "fever"},
	}
	updated, err := svc.UpdatePatient(context.Background(), created.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, "Diaz", updated.LastName)
	assert.Equal(t, "1990-05-01", updated.BirthDate.String())
	require.NotNil(t, updated.Symptoms)
	assert.Equal(t, "fever", *updated.Symptoms)
}

func TestUpdatePatientParsesBirthDate(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)

	patch := &model.PatientPatch{
		BirthDate: model.Optional[string]{Set: true, Valid: true, Value: "1985-12-24"},
	}
	updated, err := svc.UpdatePatient(context.Background(), created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "1985-12-24", updated.BirthDate.String())
}

func TestUpdatePatientNullClearsOptionalField(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	email := "ana@example.com"
	req.Email = &email
	created, err := svc.CreatePatient(context.Background(), req)
	require.NoError(t, err)

	patch := &model.PatientPatch{
		Email: model.Optional[string]{Set: true, Valid: false},
	}
	updated, err := svc.UpdatePatient(context.Background(), created.ID, patch)
	require.NoError(t, err)
	assert.Nil(t, updated.Email)
}

func TestUpdatePatientRejectsEmptyRequiredField(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)

	patch := &model.PatientPatch{
		FirstName: model.Optional[string]{Set: true, Valid: true, Value: ""},
	}
	_, err = svc.UpdatePatient(context.Background(), created.ID, patch)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
}

func TestUpdateDeletedPatientIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, svc.DeletePatient(context.Background(), created.ID))

	patch := &model.PatientPatch{
		Symptoms: model.Optional[string]{Set: true, Valid: true, Value: "fever"},
	}
	_, err = svc.UpdatePatient(context.Background(), created.ID, patch)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeletePatientHidesFromListAndGet(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePatient(context.Background(), created.ID))

	_, err = svc.GetPatient(context.Background(), created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	patients, err := svc.ListPatients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestDeletePatientTwiceStaysDeleted(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePatient(context.Background(), created.ID))
	// Second delete re-stamps but never errors or resurrects.
	require.NoError(t, svc.DeletePatient(context.Background(), created.ID))

	patients, err := svc.ListPatients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestDeleteMissingPatientIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.DeletePatient(context.Background(), 404)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStorageFailureWrapped(t *testing.T) {
	repo := newFakePatientRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo, &fakeAppointmentRepo{})

	_, err := svc.ListPatients(context.Background())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrStorage, appErr.Code)
}
