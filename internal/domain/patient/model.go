package patient

// Patient maps to the patients table.
type Patient struct {
	ID          int64   `db:"id" json:"id"`
	FirstName   string  `db:"first_name" json:"first_name"`
	LastName    string  `db:"last_name" json:"last_name"`
	Email       string  `db:"email" json:"email"`
	PhoneNumber *string `db:"phone_number" json:"phone_number,omitempty"`
	Address     *string `db:"address" json:"address,omitempty"`
}

// FullName returns the patient's display name.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
