package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medoffice/patient-api/internal/model"
	"github.com/medoffice/patient-api/internal/repository"
	apperrors "github.com/medoffice/patient-api/pkg/errors"
)

type PatientService interface {
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	GetPatient(ctx context.Context, id model.ID) (*model.Patient, error)
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id model.ID, patch *model.PatientPatch) (*model.Patient, error)
	DeletePatient(ctx context.Context, id model.ID) error
}

type Service struct {
	repo            repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	validate        *validator.Validate
}

func NewService(repo repository.PatientRepository, appointmentRepo repository.AppointmentRepository) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		validate:        validator.New(),
	}
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id model.ID) (*model.Patient, error) {
	patient, err := s.repo.GetActive(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if patient == nil {
		return nil, apperrors.NotFound("patient")
	}

	appointments, err := s.appointmentRepo.ListForPatient(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	patient.Appointments = appointments

	return patient, nil
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, apperrors.Validation("Missing required fields: " + strings.Join(missing, ", "))
	}

	gender := model.Gender(req.Gender)
	if !gender.Valid() {
		return nil, apperrors.Validation("gender must be one of M, F, OTHER")
	}

	birthDate, err := model.ParseDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Validation("email is not a valid address")
	}

	patient := &model.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
		Gender:    gender,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Allergies: req.Allergies,
		Symptoms:  req.Symptoms,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, apperrors.Storage(err)
	}
	return patient, nil
}

// UpdatePatient merges the patch over the stored record field by field. An
// already soft-deleted target is treated as not found rather than
// resurrected.
func (s *Service) UpdatePatient(ctx context.Context, id model.ID, patch *model.PatientPatch) (*model.Patient, error) {
	patient, err := s.repo.GetActive(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if patient == nil {
		return nil, apperrors.NotFound("patient")
	}

	if err := s.applyPatch(patient, patch); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, patient)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if !updated {
		return nil, apperrors.NotFound("patient")
	}
	return patient, nil
}

// DeletePatient soft-deletes the record. Deleting a nonexistent id is not
// found; deleting an already-deleted record succeeds and re-stamps
// deleted_at.
func (s *Service) DeletePatient(ctx context.Context, id model.ID) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return apperrors.Storage(err)
	}
	if !deleted {
		return apperrors.NotFound("patient")
	}
	return nil
}

func (s *Service) applyPatch(patient *model.Patient, patch *model.PatientPatch) error {
	if v, err := requiredField(patch.FirstName, "firstName"); err != nil {
		return err
	} else if patch.FirstName.Set {
		patient.FirstName = v
	}
	if v, err := requiredField(patch.LastName, "lastName"); err != nil {
		return err
	} else if patch.LastName.Set {
		patient.LastName = v
	}
	if v, err := requiredField(patch.Phone, "phone"); err != nil {
		return err
	} else if patch.Phone.Set {
		patient.Phone = v
	}

	if patch.BirthDate.Set {
		if !patch.BirthDate.Valid {
			return apperrors.Validation("birthDate cannot be null")
		}
		birthDate, err := model.ParseDate(patch.BirthDate.Value)
		if err != nil {
			return apperrors.Validation(err.Error())
		}
		patient.BirthDate = birthDate
	}

	if patch.Gender.Set {
		if !patch.Gender.Valid {
			return apperrors.Validation("gender cannot be null")
		}
		gender := model.Gender(patch.Gender.Value)
		if !gender.Valid() {
			return apperrors.Validation("gender must be one of M, F, OTHER")
		}
		patient.Gender = gender
	}

	if patch.Email.Set {
		if patch.Email.Valid && patch.Email.Value != "" {
			if err := s.validate.Var(patch.Email.Value, "email"); err != nil {
				return apperrors.Validation("email is not a valid address")
			}
		}
		patient.Email = optionalValue(patch.Email)
	}
	if patch.Address.Set {
		patient.Address = optionalValue(patch.Address)
	}
	if patch.Allergies.Set {
		patient.Allergies = optionalValue(patch.Allergies)
	}
	if patch.Symptoms.Set {
		patient.Symptoms = optionalValue(patch.Symptoms)
	}

	return nil
}

func requiredField(f model.Optional[string], name string) (string, error) {
	if f.Set && (!f.Valid || f.Value == "") {
		return "", apperrors.Validation(fmt.Sprintf("%s cannot be empty", name))
	}
	return f.Value, nil
}

func optionalValue(f model.Optional[string]) *string {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
