package medication

import "context"

type Repository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, id int64) (*Medication, error)
	List(ctx context.Context, limit, offset int) ([]*Medication, int, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Medication, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*Medication, error)
	Update(ctx context.Context, m *Medication) error
	Delete(ctx context.Context, id int64) (bool, error)
}
