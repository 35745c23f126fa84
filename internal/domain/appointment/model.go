package appointment

// Appointment maps to the appointments table. Date is a calendar day in
// YYYY-MM-DD form and Time a wall-clock HH:MM; both are stored in Postgres
// DATE/TIME columns.
type Appointment struct {
	ID        int64   `db:"id" json:"id"`
	Date      string  `db:"appointment_date" json:"date"`
	Time      string  `db:"appointment_time" json:"time"`
	Reason    *string `db:"reason" json:"reason,omitempty"`
	PatientID int64   `db:"patient_id" json:"patient_id"`
	DoctorID  int64   `db:"doctor_id" json:"doctor_id"`
}
