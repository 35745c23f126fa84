package medication

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAssociation is returned when a medication does not reference both
// the patient it is prescribed to and the prescribing doctor.
var ErrMissingAssociation = errors.New("medication requires both a patient and a doctor")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(m *Medication) error {
	if m.PatientID == 0 || m.DoctorID == 0 {
		return ErrMissingAssociation
	}
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Frequency == "" {
		return fmt.Errorf("frequency is required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, m *Medication) error {
	if err := validate(m); err != nil {
		return err
	}
	return s.repo.Create(ctx, m)
}

// Get returns the medication with the given id, or nil when absent.
func (s *Service) Get(ctx context.Context, id int64) (*Medication, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Medication, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*Medication, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// Update fetches the stored medication and overwrites its fields from in.
// The id is never taken from the request body. Returns nil when absent.
func (s *Service) Update(ctx context.Context, id int64, in *Medication) (*Medication, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	existing.Name = in.Name
	existing.Dosage = in.Dosage
	existing.Frequency = in.Frequency
	existing.PatientID = in.PatientID
	existing.DoctorID = in.DoctorID
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the medication with the given id, reporting whether a row
// existed.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
