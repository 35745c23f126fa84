package doctor

// Doctor maps to the doctors table.
type Doctor struct {
	ID             int64   `db:"id" json:"id"`
	FirstName      string  `db:"first_name" json:"first_name"`
	LastName       string  `db:"last_name" json:"last_name"`
	Email          string  `db:"email" json:"email"`
	PhoneNumber    *string `db:"phone_number" json:"phone_number,omitempty"`
	Specialization *string `db:"specialization" json:"specialization,omitempty"`
	Hospital       *string `db:"hospital" json:"hospital,omitempty"`
	Address        *string `db:"address" json:"address,omitempty"`
}

// FullName returns the doctor's display name.
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
