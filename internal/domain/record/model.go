package record

import (
	"time"

	"github.com/google/uuid"
)

// Record maps to the record table. A record is written once at the end of a
// visit; the API exposes no update or delete for it.
type Record struct {
	RecordID        uuid.UUID  `db:"record_id" json:"record_id"`
	PatientID       uuid.UUID  `db:"patient_id" json:"patient_id"`
	StaffID         *uuid.UUID `db:"staff_id" json:"staff_id"`
	VisitDatetime   time.Time  `db:"visit_datetime" json:"visit_datetime"`
	VisitType       *string    `db:"visit_type" json:"visit_type,omitempty"`
	ChiefComplaint  string     `db:"chief_complaint" json:"chief_complaint"`
	PatientAccount  *string    `db:"patient_account" json:"patient_account,omitempty"`
	StaffNotes      *string    `db:"staff_notes" json:"staff_notes,omitempty"`
	Interventions   *string    `db:"interventions" json:"interventions,omitempty"`
	Referrals       *string    `db:"referrals" json:"referrals,omitempty"`
	NextSessionPlan *string    `db:"next_session_plan" json:"next_session_plan,omitempty"`
	NextSessionDate *time.Time `db:"next_session_date" json:"next_session_date,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	LastModifiedAt  time.Time  `db:"last_modified_at" json:"last_modified_at"`
}

// EnrichedRecord is a Record joined to the owning patient's name and, when
// the staff link survives, the attending staff member's name.
type EnrichedRecord struct {
	Record
	PatientName   string  `db:"patient_name" json:"patient_name"`
	AttendantName *string `db:"attendant_name" json:"attendant_name"`
}

// CreateInput is the request body for appending a visit record. The owning
// patient comes from the URL path; a patient_id in the body is ignored.
type CreateInput struct {
	StaffID         string  `json:"staff_id"`
	VisitDatetime   string  `json:"visit_datetime"`
	VisitType       *string `json:"visit_type"`
	ChiefComplaint  string  `json:"chief_complaint"`
	PatientAccount  *string `json:"patient_account"`
	StaffNotes      *string `json:"staff_notes"`
	Interventions   *string `json:"interventions"`
	Referrals       *string `json:"referrals"`
	NextSessionPlan *string `json:"next_session_plan"`
	NextSessionDate *string `json:"next_session_date"`
}
