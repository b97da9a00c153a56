package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/apperr"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) List(_ context.Context) ([]Patient, error) {
	out := make([]Patient, 0, len(m.patients))
	for _, p := range m.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockRepo) Get(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, apperr.NotFoundf("patient %s not found", id)
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	if p.NationalID != nil {
		for _, existing := range m.patients {
			if existing.NationalID != nil && *existing.NationalID == *p.NationalID {
				return apperr.Conflictf("national_id is already registered to another patient")
			}
		}
	}
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) Update(_ context.Context, id uuid.UUID, u *Update) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, apperr.NotFoundf("patient %s not found", id)
	}
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.PrimaryPhone != nil {
		p.PrimaryPhone = *u.PrimaryPhone
	}
	if u.Email != nil {
		p.Email = u.Email
	}
	if u.BirthDateSet {
		p.BirthDate = u.BirthDate
	}
	if u.NextAppointmentSet {
		p.NextAppointment = u.NextAppointment
	}
	p.LastModifiedAt = time.Now().UTC()
	cp := *p
	return &cp, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.patients[id]; !ok {
		return apperr.NotFoundf("patient %s not found", id)
	}
	delete(m.patients, id)
	return nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo, zerolog.Nop()), repo
}

func str(s string) *string { return &s }

func TestCreate_MinimalFields(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), &CreateInput{
		FullName:     "Maria Souza",
		PrimaryPhone: "+55 11 99999-0000",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
	if !p.CreatedAt.Equal(p.LastModifiedAt) {
		t.Errorf("created_at %v and last_modified_at %v should match on insert", p.CreatedAt, p.LastModifiedAt)
	}
	if p.BirthDate != nil || p.Email != nil {
		t.Error("optional fields should stay nil when not supplied")
	}
}

func TestCreate_RequiredFieldValidation(t *testing.T) {
	svc, _ := newTestService()

	cases := []CreateInput{
		{FullName: "", PrimaryPhone: "123"},
		{FullName: "  ", PrimaryPhone: "123"},
		{FullName: "Ana", PrimaryPhone: ""},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), &in); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("Create(%+v) = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestCreate_ParsesDates(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), &CreateInput{
		FullName:            "Maria Souza",
		PrimaryPhone:        "123",
		BirthDate:           str("1984-03-21"),
		NextAppointmentDate: str("2026-09-10T14:30:00Z"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.BirthDate == nil || p.BirthDate.Format("2006-01-02") != "1984-03-21" {
		t.Errorf("birth_date = %v, want 1984-03-21", p.BirthDate)
	}
	if p.NextAppointment == nil || !p.NextAppointment.Equal(time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC)) {
		t.Errorf("next_appointment_date = %v", p.NextAppointment)
	}
}

func TestCreate_RejectsBadDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), &CreateInput{
		FullName:     "Maria Souza",
		PrimaryPhone: "123",
		BirthDate:    str("21/03/1984"),
	})
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("Create with bad date = %v, want ErrInvalidInput", err)
	}
}

func TestCreate_DuplicateNationalID(t *testing.T) {
	svc, _ := newTestService()

	in := &CreateInput{FullName: "A", PrimaryPhone: "1", NationalID: str("123.456.789-00")}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(context.Background(), &CreateInput{
		FullName: "B", PrimaryPhone: "2", NationalID: str("123.456.789-00"),
	})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("second Create = %v, want ErrConflict", err)
	}
}

func TestUpdate_EmptyBody(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), uuid.New(), &UpdateInput{})
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("Update with empty input = %v, want ErrInvalidInput", err)
	}
}

func TestUpdate_ClearsDateWithEmptyString(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), &CreateInput{
		FullName:     "Maria Souza",
		PrimaryPhone: "123",
		BirthDate:    str("1984-03-21"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), p.ID, &UpdateInput{BirthDate: str("")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.BirthDate != nil {
		t.Errorf("birth_date = %v, want cleared", updated.BirthDate)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), uuid.New(), &UpdateInput{FullName: str("X")})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Update = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()

	p, err := svc.Create(context.Background(), &CreateInput{FullName: "A", PrimaryPhone: "1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.patients) != 0 {
		t.Errorf("expected empty repo, have %d patients", len(repo.patients))
	}
	if err := svc.Delete(context.Background(), p.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}
