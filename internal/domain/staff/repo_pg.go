package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/platform/apperr"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const staffCols = `id, username, password_hash, full_name, created_at`

func (r *repoPG) Create(ctx context.Context, s *Staff) error {
	s.ID = uuid.New()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO staff (id, username, password_hash, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		s.ID, s.Username, s.PasswordHash, s.FullName,
	).Scan(&s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.Conflictf("username %q is already registered", s.Username)
		}
		return apperr.FromPG(err)
	}
	return nil
}

func (r *repoPG) GetByUsername(ctx context.Context, username string) (*Staff, error) {
	s := &Staff{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+staffCols+` FROM staff WHERE username = $1`, username,
	).Scan(&s.ID, &s.Username, &s.PasswordHash, &s.FullName, &s.CreatedAt)
	if err != nil {
		return nil, apperr.FromPG(err)
	}
	return s, nil
}

func (r *repoPG) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&n); err != nil {
		return 0, apperr.FromPG(err)
	}
	return n, nil
}
