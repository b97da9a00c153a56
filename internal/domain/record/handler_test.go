package record

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer() (*echo.Echo, uuid.UUID, uuid.UUID) {
	repo := newMockRepo()
	patientID, staffID := uuid.New(), uuid.New()
	repo.patients[patientID] = "Ana Silva"
	repo.staffNames[staffID] = "Dr. Costa"
	h := NewHandler(NewService(repo, zerolog.Nop()))
	e := echo.New()
	h.RegisterRoutes(e.Group("/api"))
	return e, patientID, staffID
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	e, patientID, staffID := newTestServer()

	rec := doJSON(e, http.MethodPost, "/api/patients/"+patientID.String()+"/records",
		`{"staff_id": "`+staffID.String()+`", "visit_datetime": "2026-08-01T10:00:00Z", "chief_complaint": "headache"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created Record
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.PatientID != patientID {
		t.Errorf("patient_id = %s, want %s", created.PatientID, patientID)
	}
}

func TestHandler_Create_PathWinsOverBody(t *testing.T) {
	e, patientID, staffID := newTestServer()

	body := `{"patient_id": "` + uuid.NewString() + `",
		"staff_id": "` + staffID.String() + `",
		"visit_datetime": "2026-08-01T10:00:00Z",
		"chief_complaint": "headache"}`
	rec := doJSON(e, http.MethodPost, "/api/patients/"+patientID.String()+"/records", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created Record
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.PatientID != patientID {
		t.Errorf("patient_id = %s, path id %s must win", created.PatientID, patientID)
	}
}

func TestHandler_Create_MissingFields(t *testing.T) {
	e, patientID, _ := newTestServer()

	rec := doJSON(e, http.MethodPost, "/api/patients/"+patientID.String()+"/records",
		`{"chief_complaint": "headache"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_ListForPatient_QueryParams(t *testing.T) {
	e, patientID, staffID := newTestServer()

	for _, ts := range []string{"2026-08-01T09:00:00Z", "2026-08-02T09:00:00Z", "2026-08-03T09:00:00Z"} {
		doJSON(e, http.MethodPost, "/api/patients/"+patientID.String()+"/records",
			`{"staff_id": "`+staffID.String()+`", "visit_datetime": "`+ts+`", "chief_complaint": "follow-up"}`)
	}

	rec := doJSON(e, http.MethodGet, "/api/patients/"+patientID.String()+"/records?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var records []Record
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}

	rec = doJSON(e, http.MethodGet, "/api/patients/"+patientID.String()+"/records?sort=asc", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 3 || !records[0].VisitDatetime.Before(records[2].VisitDatetime) {
		t.Errorf("expected 3 records oldest-first, got %d", len(records))
	}

	// junk limit is ignored rather than rejected
	rec = doJSON(e, http.MethodGet, "/api/patients/"+patientID.String()+"/records?limit=abc", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("len = %d, want all 3", len(records))
	}
}

func TestHandler_ListAll(t *testing.T) {
	e, patientID, staffID := newTestServer()

	doJSON(e, http.MethodPost, "/api/patients/"+patientID.String()+"/records",
		`{"staff_id": "`+staffID.String()+`", "visit_datetime": "2026-08-01T10:00:00Z", "chief_complaint": "headache"}`)

	rec := doJSON(e, http.MethodGet, "/api/general/all-records", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var enriched []EnrichedRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &enriched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(enriched) != 1 {
		t.Fatalf("len = %d, want 1", len(enriched))
	}
	if enriched[0].PatientName != "Ana Silva" {
		t.Errorf("patient_name = %q", enriched[0].PatientName)
	}
	if enriched[0].AttendantName == nil || *enriched[0].AttendantName != "Dr. Costa" {
		t.Errorf("attendant_name = %v", enriched[0].AttendantName)
	}
}
