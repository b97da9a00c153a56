package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. Only full_name and primary_phone are
// required at registration; everything else is optional intake detail.
type Patient struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	FullName        string     `db:"full_name" json:"full_name"`
	PrimaryPhone    string     `db:"primary_phone" json:"primary_phone"`
	BirthDate       *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Gender          *string    `db:"gender" json:"gender,omitempty"`
	NationalID      *string    `db:"national_id" json:"national_id,omitempty"`
	Email           *string    `db:"email" json:"email,omitempty"`
	PostalCode      *string    `db:"postal_code" json:"postal_code,omitempty"`
	Street          *string    `db:"street" json:"street,omitempty"`
	Number          *string    `db:"number" json:"number,omitempty"`
	Complement      *string    `db:"complement" json:"complement,omitempty"`
	Neighborhood    *string    `db:"neighborhood" json:"neighborhood,omitempty"`
	City            *string    `db:"city" json:"city,omitempty"`
	State           *string    `db:"state" json:"state,omitempty"`
	ReferralSource  *string    `db:"referral_source" json:"referral_source,omitempty"`
	InitialReason   *string    `db:"initial_reason" json:"initial_reason,omitempty"`
	NextAppointment *time.Time `db:"next_appointment_date" json:"next_appointment_date,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	LastModifiedAt  time.Time  `db:"last_modified_at" json:"last_modified_at"`
}

// CreateInput is the request body for patient registration. Date fields
// arrive as strings and are normalized by the service.
type CreateInput struct {
	FullName            string  `json:"full_name"`
	PrimaryPhone        string  `json:"primary_phone"`
	BirthDate           *string `json:"birth_date"`
	Gender              *string `json:"gender"`
	NationalID          *string `json:"national_id"`
	Email               *string `json:"email"`
	PostalCode          *string `json:"postal_code"`
	Street              *string `json:"street"`
	Number              *string `json:"number"`
	Complement          *string `json:"complement"`
	Neighborhood        *string `json:"neighborhood"`
	City                *string `json:"city"`
	State               *string `json:"state"`
	ReferralSource      *string `json:"referral_source"`
	InitialReason       *string `json:"initial_reason"`
	NextAppointmentDate *string `json:"next_appointment_date"`
}

// UpdateInput is the request body for a partial update. A nil field was not
// supplied and stays untouched. The struct is the explicit allow-list; body
// keys outside it are never applied.
type UpdateInput struct {
	FullName            *string `json:"full_name"`
	PrimaryPhone        *string `json:"primary_phone"`
	BirthDate           *string `json:"birth_date"`
	Gender              *string `json:"gender"`
	NationalID          *string `json:"national_id"`
	Email               *string `json:"email"`
	PostalCode          *string `json:"postal_code"`
	Street              *string `json:"street"`
	Number              *string `json:"number"`
	Complement          *string `json:"complement"`
	Neighborhood        *string `json:"neighborhood"`
	City                *string `json:"city"`
	State               *string `json:"state"`
	ReferralSource      *string `json:"referral_source"`
	InitialReason       *string `json:"initial_reason"`
	NextAppointmentDate *string `json:"next_appointment_date"`
}

// Empty reports whether the input carries no recognized field.
func (u *UpdateInput) Empty() bool {
	return u.FullName == nil && u.PrimaryPhone == nil && u.BirthDate == nil &&
		u.Gender == nil && u.NationalID == nil && u.Email == nil &&
		u.PostalCode == nil && u.Street == nil && u.Number == nil &&
		u.Complement == nil && u.Neighborhood == nil && u.City == nil &&
		u.State == nil && u.ReferralSource == nil && u.InitialReason == nil &&
		u.NextAppointmentDate == nil
}

// Update holds the typed column changes of a partial update after date
// normalization. The *Set flags distinguish "not supplied" from "supplied as
// empty", which clears the column.
type Update struct {
	FullName       *string
	PrimaryPhone   *string
	Gender         *string
	NationalID     *string
	Email          *string
	PostalCode     *string
	Street         *string
	Number         *string
	Complement     *string
	Neighborhood   *string
	City           *string
	State          *string
	ReferralSource *string
	InitialReason  *string

	BirthDate          *time.Time
	BirthDateSet       bool
	NextAppointment    *time.Time
	NextAppointmentSet bool
}
