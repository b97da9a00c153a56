package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return FromContext(c)
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.Limit != 0 {
		t.Errorf("expected no limit, got %d", p.Limit)
	}
	if p.Ascending {
		t.Error("expected newest-first by default")
	}
}

func TestFromContext_Limit(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"limit=2", 2},
		{"limit=50", 50},
		{"limit=0", 0},
		{"limit=-3", 0},
		{"limit=abc", 0},
	}
	for _, tc := range cases {
		if p := paramsFor(t, tc.query); p.Limit != tc.want {
			t.Errorf("query %q: expected limit %d, got %d", tc.query, tc.want, p.Limit)
		}
	}
}

func TestFromContext_Sort(t *testing.T) {
	if p := paramsFor(t, "sort=asc"); !p.Ascending {
		t.Error("expected sort=asc to select ascending order")
	}
	if p := paramsFor(t, "sort=ASC"); !p.Ascending {
		t.Error("expected sort matching to be case-insensitive")
	}
	if p := paramsFor(t, "sort=desc"); p.Ascending {
		t.Error("expected sort=desc to keep newest-first")
	}
	if p := paramsFor(t, "sort=garbage"); p.Ascending {
		t.Error("expected unknown sort value to keep newest-first")
	}
}
