package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMissingAssociation is returned when an appointment does not reference
// both a patient and a doctor.
var ErrMissingAssociation = errors.New("appointment requires both a patient and a doctor")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(a *Appointment) error {
	if a.PatientID == 0 || a.DoctorID == 0 {
		return ErrMissingAssociation
	}
	if a.Date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", a.Date)
	}
	if a.Time == "" {
		return fmt.Errorf("time is required")
	}
	if _, err := time.Parse("15:04", a.Time); err != nil {
		return fmt.Errorf("invalid time %q, want HH:MM", a.Time)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if err := validate(a); err != nil {
		return err
	}
	return s.repo.Create(ctx, a)
}

// Get returns the appointment with the given id, or nil when absent.
func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// Update fetches the stored appointment and overwrites its fields from in.
// The id is never taken from the request body. Returns nil when absent.
func (s *Service) Update(ctx context.Context, id int64, in *Appointment) (*Appointment, error) {
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
	existing.Date = in.Date
	existing.Time = in.Time
	existing.Reason = in.Reason
	existing.PatientID = in.PatientID
	existing.DoctorID = in.DoctorID
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the appointment with the given id, reporting whether a row
// existed.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
