package patient

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/apperr"
)

// dateLayouts are the accepted wire formats for patient date fields, tried
// in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperr.Invalidf("%s %q is not a valid date", field, value)
}

// Service implements patient registration, lookup, partial update and
// removal on top of a Repository.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log.With().Str("component", "patient").Logger()}
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (*Patient, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.PrimaryPhone = strings.TrimSpace(in.PrimaryPhone)
	if in.FullName == "" {
		return nil, apperr.Invalidf("full_name is required")
	}
	if in.PrimaryPhone == "" {
		return nil, apperr.Invalidf("primary_phone is required")
	}

	birth, err := parseOptionalDate("birth_date", in.BirthDate)
	if err != nil {
		return nil, err
	}
	next, err := parseOptionalDate("next_appointment_date", in.NextAppointmentDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &Patient{
		ID:              uuid.New(),
		FullName:        in.FullName,
		PrimaryPhone:    in.PrimaryPhone,
		BirthDate:       birth,
		Gender:          normalize(in.Gender),
		NationalID:      normalize(in.NationalID),
		Email:           normalize(in.Email),
		PostalCode:      normalize(in.PostalCode),
		Street:          normalize(in.Street),
		Number:          normalize(in.Number),
		Complement:      normalize(in.Complement),
		Neighborhood:    normalize(in.Neighborhood),
		City:            normalize(in.City),
		State:           normalize(in.State),
		ReferralSource:  normalize(in.ReferralSource),
		InitialReason:   normalize(in.InitialReason),
		NextAppointment: next,
		CreatedAt:       now,
		LastModifiedAt:  now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("patient_id", p.ID.String()).Msg("patient registered")
	return p, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in *UpdateInput) (*Patient, error) {
	if in.Empty() {
		return nil, apperr.Invalidf("request body contains no updatable fields")
	}

	u := &Update{
		FullName:       in.FullName,
		PrimaryPhone:   in.PrimaryPhone,
		Gender:         in.Gender,
		NationalID:     in.NationalID,
		Email:          in.Email,
		PostalCode:     in.PostalCode,
		Street:         in.Street,
		Number:         in.Number,
		Complement:     in.Complement,
		Neighborhood:   in.Neighborhood,
		City:           in.City,
		State:          in.State,
		ReferralSource: in.ReferralSource,
		InitialReason:  in.InitialReason,
	}
	if u.FullName != nil && strings.TrimSpace(*u.FullName) == "" {
		return nil, apperr.Invalidf("full_name cannot be blank")
	}
	if u.PrimaryPhone != nil && strings.TrimSpace(*u.PrimaryPhone) == "" {
		return nil, apperr.Invalidf("primary_phone cannot be blank")
	}
	if in.BirthDate != nil {
		t, err := parseDate("birth_date", *in.BirthDate)
		if err != nil {
			return nil, err
		}
		u.BirthDate, u.BirthDateSet = t, true
	}
	if in.NextAppointmentDate != nil {
		t, err := parseDate("next_appointment_date", *in.NextAppointmentDate)
		if err != nil {
			return nil, err
		}
		u.NextAppointment, u.NextAppointmentSet = t, true
	}

	p, err := s.repo.Update(ctx, id, u)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("patient_id", id.String()).Msg("patient updated")
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("patient_id", id.String()).Msg("patient deleted")
	return nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	return parseDate(field, *value)
}

// normalize maps absent and blank optional strings to NULL.
func normalize(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
