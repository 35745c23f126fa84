package doctor

import (
	"context"
	"errors"
	"fmt"
)

// ErrDuplicateEmail is returned when a save would reuse another doctor's email.
var ErrDuplicateEmail = errors.New("a doctor with this email already exists")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(d *Doctor) error {
	if d.FirstName == "" || d.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if d.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if err := validate(d); err != nil {
		return err
	}
	taken, err := s.repo.ExistsByEmail(ctx, d.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}
	return s.repo.Create(ctx, d)
}

// Get returns the doctor with the given id, or nil when no such doctor exists.
func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update fetches the stored doctor and overwrites its fields from in. The id
// is never taken from the request body. Returns nil when no doctor with the
// given id exists.
func (s *Service) Update(ctx context.Context, id int64, in *Doctor) (*Doctor, error) {
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
	existing.Specialization = in.Specialization
	existing.Hospital = in.Hospital
	existing.Address = in.Address
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the doctor with the given id. Returns false when no such
// doctor exists; the doctor's appointments and medications go with it.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
