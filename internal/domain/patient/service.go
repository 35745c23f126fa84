package patient

import (
	"context"
	"errors"
	"fmt"
)

// ErrDuplicateEmail is returned when a save would reuse another patient's email.
var ErrDuplicateEmail = errors.New("a patient with this email already exists")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(p *Patient) error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	taken, err := s.repo.ExistsByEmail(ctx, p.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}
	return s.repo.Create(ctx, p)
}

// Get returns the patient with the given id, or nil when no such patient exists.
func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update fetches the stored patient and overwrites its fields from in. The id
// is never taken from the request body. Returns nil when no patient with the
// given id exists.
func (s *Service) Update(ctx context.Context, id int64, in *Patient) (*Patient, error) {
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
	if in.Email != existing.Email {
		taken, err := s.repo.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateEmail
		}
	}
	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Email = in.Email
	existing.PhoneNumber = in.PhoneNumber
	existing.Address = in.Address
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the patient with the given id. Returns false when no such
// patient exists; the patient's appointments and medications go with it.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
