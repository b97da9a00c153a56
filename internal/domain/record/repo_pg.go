package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/pkg/pagination"
)

const recordCols = `record_id, patient_id, staff_id, visit_datetime, visit_type,
	chief_complaint, patient_account, staff_notes, interventions, referrals,
	next_session_plan, next_session_date, created_at, last_modified_at`

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG returns a Repository backed by the clinic Postgres database.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func scanRecord(row pgx.Row, rec *Record) error {
	return row.Scan(&rec.RecordID, &rec.PatientID, &rec.StaffID, &rec.VisitDatetime,
		&rec.VisitType, &rec.ChiefComplaint, &rec.PatientAccount, &rec.StaffNotes,
		&rec.Interventions, &rec.Referrals, &rec.NextSessionPlan, &rec.NextSessionDate,
		&rec.CreatedAt, &rec.LastModifiedAt)
}

func (r *repoPG) ListForPatient(ctx context.Context, patientID uuid.UUID, page pagination.Params) ([]Record, error) {
	order := "DESC"
	if page.Ascending {
		order = "ASC"
	}
	query := fmt.Sprintf(`SELECT %s FROM record WHERE patient_id = $1 ORDER BY visit_datetime %s`,
		recordCols, order)
	args := []interface{}{patientID}
	if page.Limit > 0 {
		args = append(args, page.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromPG(err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := scanRecord(rows, &rec); err != nil {
			return nil, apperr.FromPG(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromPG(err)
	}
	return records, nil
}

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO record (`+recordCols+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		rec.RecordID, rec.PatientID, rec.StaffID, rec.VisitDatetime, rec.VisitType,
		rec.ChiefComplaint, rec.PatientAccount, rec.StaffNotes, rec.Interventions,
		rec.Referrals, rec.NextSessionPlan, rec.NextSessionDate,
		rec.CreatedAt, rec.LastModifiedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperr.Invalidf("referenced %s does not exist", fkField(pgErr.ConstraintName))
		}
		return apperr.FromPG(err)
	}
	return nil
}

func (r *repoPG) ListAllEnriched(ctx context.Context) ([]EnrichedRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.record_id, r.patient_id, r.staff_id, r.visit_datetime, r.visit_type,
		       r.chief_complaint, r.patient_account, r.staff_notes, r.interventions,
		       r.referrals, r.next_session_plan, r.next_session_date,
		       r.created_at, r.last_modified_at,
		       p.full_name AS patient_name,
		       s.full_name AS attendant_name
		  FROM record r
		  JOIN patient p ON p.id = r.patient_id
		  LEFT JOIN staff s ON s.id = r.staff_id
		 ORDER BY r.visit_datetime DESC`)
	if err != nil {
		return nil, apperr.FromPG(err)
	}
	defer rows.Close()

	records := make([]EnrichedRecord, 0)
	for rows.Next() {
		var rec EnrichedRecord
		err := rows.Scan(&rec.RecordID, &rec.PatientID, &rec.StaffID, &rec.VisitDatetime,
			&rec.VisitType, &rec.ChiefComplaint, &rec.PatientAccount, &rec.StaffNotes,
			&rec.Interventions, &rec.Referrals, &rec.NextSessionPlan, &rec.NextSessionDate,
			&rec.CreatedAt, &rec.LastModifiedAt, &rec.PatientName, &rec.AttendantName)
		if err != nil {
			return nil, apperr.FromPG(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromPG(err)
	}
	return records, nil
}

// fkField maps a foreign key constraint name to the request field it guards.
func fkField(constraint string) string {
	switch constraint {
	case "record_staff_id_fkey":
		return "staff_id"
	case "record_patient_id_fkey":
		return "patient"
	default:
		return "row"
	}
}
