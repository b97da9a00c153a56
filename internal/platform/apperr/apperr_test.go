package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Invalidf("full_name is required"), http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{NotFoundf("patient %s", "x"), http.StatusNotFound},
		{Conflictf("username taken"), http.StatusConflict},
		{Storage(errors.New("connection refused")), http.StatusInternalServerError},
		{errors.New("something else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestFromPG_NoRows(t *testing.T) {
	if err := FromPG(pgx.ErrNoRows); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFromPG_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "patient_national_id_key"}
	err := FromPG(fmt.Errorf("insert: %w", pgErr))
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestFromPG_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "record_staff_id_fkey"}
	err := FromPG(pgErr)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFromPG_Other(t *testing.T) {
	err := FromPG(errors.New("broken pipe"))
	if !errors.Is(err, ErrStorage) {
		t.Errorf("expected ErrStorage, got %v", err)
	}
}

func TestToHTTP_HidesStorageDetail(t *testing.T) {
	httpErr := ToHTTP(Storage(errors.New("pq: column does not exist")))
	if httpErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", httpErr.Code)
	}
	if msg, _ := httpErr.Message.(string); msg != "internal server error" {
		t.Errorf("storage detail leaked to client: %q", msg)
	}
}

func TestToHTTP_KeepsClientMessage(t *testing.T) {
	httpErr := ToHTTP(Invalidf("primary_phone is required"))
	if httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.Code)
	}
	if msg, _ := httpErr.Message.(string); msg == "" || msg == "internal server error" {
		t.Errorf("expected validation message, got %q", msg)
	}
}
