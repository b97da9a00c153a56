package record

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/pkg/pagination"
)

// timestampLayouts are the accepted wire formats for visit timestamps, tried
// in order. Whatever arrives is stored normalized to UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Invalidf("%s %q is not a valid timestamp", field, value)
}

// Service appends and lists visit records on top of a Repository.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log.With().Str("component", "record").Logger()}
}

func (s *Service) ListForPatient(ctx context.Context, patientID uuid.UUID, page pagination.Params) ([]Record, error) {
	return s.repo.ListForPatient(ctx, patientID, page)
}

func (s *Service) ListAllEnriched(ctx context.Context) ([]EnrichedRecord, error) {
	return s.repo.ListAllEnriched(ctx)
}

// Create appends a visit record for the patient identified in the URL path.
// The path id is authoritative; any patient_id in the body is discarded.
func (s *Service) Create(ctx context.Context, patientID uuid.UUID, in *CreateInput) (*Record, error) {
	in.ChiefComplaint = strings.TrimSpace(in.ChiefComplaint)
	if strings.TrimSpace(in.VisitDatetime) == "" {
		return nil, apperr.Invalidf("visit_datetime is required")
	}
	if in.ChiefComplaint == "" {
		return nil, apperr.Invalidf("chief_complaint is required")
	}
	if strings.TrimSpace(in.StaffID) == "" {
		return nil, apperr.Invalidf("staff_id is required")
	}
	staffID, err := uuid.Parse(strings.TrimSpace(in.StaffID))
	if err != nil {
		return nil, apperr.Invalidf("staff_id %q is not a valid id", in.StaffID)
	}
	visitAt, err := parseTimestamp("visit_datetime", in.VisitDatetime)
	if err != nil {
		return nil, err
	}
	var nextSession *time.Time
	if in.NextSessionDate != nil && strings.TrimSpace(*in.NextSessionDate) != "" {
		t, err := parseTimestamp("next_session_date", *in.NextSessionDate)
		if err != nil {
			return nil, err
		}
		nextSession = &t
	}

	now := time.Now().UTC()
	rec := &Record{
		RecordID:        uuid.New(),
		PatientID:       patientID,
		StaffID:         &staffID,
		VisitDatetime:   visitAt,
		VisitType:       in.VisitType,
		ChiefComplaint:  in.ChiefComplaint,
		PatientAccount:  in.PatientAccount,
		StaffNotes:      in.StaffNotes,
		Interventions:   in.Interventions,
		Referrals:       in.Referrals,
		NextSessionPlan: in.NextSessionPlan,
		NextSessionDate: nextSession,
		CreatedAt:       now,
		LastModifiedAt:  now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("record_id", rec.RecordID.String()).
		Str("patient_id", patientID.String()).
		Msg("visit record created")
	return rec, nil
}
