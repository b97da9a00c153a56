// Package apperr defines the error taxonomy shared by services and
// repositories, and its mapping to HTTP status codes at the transport
// boundary. Repositories translate store-level failures into these kinds so
// handlers never inspect driver errors directly.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrStorage      = errors.New("storage failure")
)

func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Storage wraps a store-level failure. The original error is preserved for
// server-side logging but never reaches the client (see ToHTTP).
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// Postgres error codes relevant to the taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromPG translates a pgx/pgconn error into a taxonomy error. Unique
// violations become conflicts, foreign-key violations become invalid input
// (the request referenced a row that does not exist), no-rows becomes not
// found, and anything else is a storage failure.
func FromPG(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Conflictf("duplicate value for %s", pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return Invalidf("referenced row does not exist (%s)", pgErr.ConstraintName)
		}
	}
	return Storage(err)
}

// HTTPStatus maps a taxonomy error to its status code. Unknown errors map to
// 500 like storage failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ToHTTP converts a taxonomy error into an echo HTTPError. Storage and
// unclassified errors get a generic message so raw store error text is never
// echoed to callers.
func ToHTTP(err error) *echo.HTTPError {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(status, "internal server error").SetInternal(err)
	}
	return echo.NewHTTPError(status, err.Error())
}
