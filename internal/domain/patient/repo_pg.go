package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/platform/apperr"
)

const patientCols = `id, full_name, primary_phone, birth_date, gender, national_id,
	email, postal_code, street, number, complement, neighborhood, city, state,
	referral_source, initial_reason, next_appointment_date, created_at, last_modified_at`

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG returns a Repository backed by the clinic Postgres database.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FullName, &p.PrimaryPhone, &p.BirthDate, &p.Gender,
		&p.NationalID, &p.Email, &p.PostalCode, &p.Street, &p.Number, &p.Complement,
		&p.Neighborhood, &p.City, &p.State, &p.ReferralSource, &p.InitialReason,
		&p.NextAppointment, &p.CreatedAt, &p.LastModifiedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) List(ctx context.Context) ([]Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patient ORDER BY full_name ASC`)
	if err != nil {
		return nil, apperr.FromPG(err)
	}
	defer rows.Close()

	patients := make([]Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, apperr.FromPG(err)
		}
		patients = append(patients, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromPG(err)
	}
	return patients, nil
}

func (r *repoPG) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundf("patient %s not found", id)
	}
	if err != nil {
		return nil, apperr.FromPG(err)
	}
	return p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO patient (`+patientCols+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		p.ID, p.FullName, p.PrimaryPhone, p.BirthDate, p.Gender, p.NationalID,
		p.Email, p.PostalCode, p.Street, p.Number, p.Complement, p.Neighborhood,
		p.City, p.State, p.ReferralSource, p.InitialReason, p.NextAppointment,
		p.CreatedAt, p.LastModifiedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.Conflictf("national_id is already registered to another patient")
		}
		return apperr.FromPG(err)
	}
	return nil
}

func (r *repoPG) Update(ctx context.Context, id uuid.UUID, u *Update) (*Patient, error) {
	var sets []string
	var args []interface{}
	add := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if u.FullName != nil {
		add("full_name", *u.FullName)
	}
	if u.PrimaryPhone != nil {
		add("primary_phone", *u.PrimaryPhone)
	}
	if u.Gender != nil {
		add("gender", *u.Gender)
	}
	if u.NationalID != nil {
		add("national_id", *u.NationalID)
	}
	if u.Email != nil {
		add("email", *u.Email)
	}
	if u.PostalCode != nil {
		add("postal_code", *u.PostalCode)
	}
	if u.Street != nil {
		add("street", *u.Street)
	}
	if u.Number != nil {
		add("number", *u.Number)
	}
	if u.Complement != nil {
		add("complement", *u.Complement)
	}
	if u.Neighborhood != nil {
		add("neighborhood", *u.Neighborhood)
	}
	if u.City != nil {
		add("city", *u.City)
	}
	if u.State != nil {
		add("state", *u.State)
	}
	if u.ReferralSource != nil {
		add("referral_source", *u.ReferralSource)
	}
	if u.InitialReason != nil {
		add("initial_reason", *u.InitialReason)
	}
	if u.BirthDateSet {
		add("birth_date", u.BirthDate)
	}
	if u.NextAppointmentSet {
		add("next_appointment_date", u.NextAppointment)
	}
	if len(sets) == 0 {
		return nil, apperr.Invalidf("no updatable fields supplied")
	}

	sets = append(sets, "last_modified_at = NOW()")
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE patient SET %s WHERE id = $%d RETURNING `+patientCols,
		strings.Join(sets, ", "), len(args))

	p, err := scanPatient(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundf("patient %s not found", id)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperr.Conflictf("national_id is already registered to another patient")
		}
		return nil, apperr.FromPG(err)
	}
	return p, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return apperr.FromPG(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("patient %s not found", id)
	}
	return nil
}
