package medication

// Medication maps to the medications table. Every medication is prescribed
// to one patient by one doctor.
type Medication struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Dosage    *string `db:"dosage" json:"dosage,omitempty"`
	Frequency string  `db:"frequency" json:"frequency"`
	PatientID int64   `db:"patient_id" json:"patient_id"`
	DoctorID  int64   `db:"doctor_id" json:"doctor_id"`
}
