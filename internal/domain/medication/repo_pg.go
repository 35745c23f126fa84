package medication

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type medicationRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &medicationRepoPG{pool: pool}
}

const medicationCols = `id, name, dosage, frequency, patient_id, doctor_id`

func scanMedication(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.Name, &m.Dosage, &m.Frequency, &m.PatientID, &m.DoctorID)
	return &m, err
}

func (r *medicationRepoPG) Create(ctx context.Context, m *Medication) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO medications (name, dosage, frequency, patient_id, doctor_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		m.Name, m.Dosage, m.Frequency, m.PatientID, m.DoctorID).Scan(&m.ID)
}

func (r *medicationRepoPG) GetByID(ctx context.Context, id int64) (*Medication, error) {
	m, err := scanMedication(r.pool.QueryRow(ctx, `SELECT `+medicationCols+` FROM medications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *medicationRepoPG) List(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medications`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+medicationCols+` FROM medications ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collect(rows)
	return items, total, err
}

func (r *medicationRepoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Medication, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+medicationCols+` FROM medications WHERE patient_id = $1 ORDER BY id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *medicationRepoPG) ListByDoctor(ctx context.Context, doctorID int64) ([]*Medication, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+medicationCols+` FROM medications WHERE doctor_id = $1 ORDER BY id`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]*Medication, error) {
	var items []*Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *medicationRepoPG) Update(ctx context.Context, m *Medication) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE medications SET name=$2, dosage=$3, frequency=$4, patient_id=$5, doctor_id=$6
		WHERE id = $1`,
		m.ID, m.Name, m.Dosage, m.Frequency, m.PatientID, m.DoctorID)
	return err
}

func (r *medicationRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
