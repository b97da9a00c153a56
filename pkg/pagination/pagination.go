// Package pagination extracts listing parameters from request query strings.
package pagination

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Params holds listing parameters extracted from a request.
type Params struct {
	// Limit caps the returned row count. Zero means no cap.
	Limit int
	// Ascending selects oldest-first ordering. The default is newest-first.
	Ascending bool
}

// FromContext extracts listing parameters from the echo context. A limit that
// is absent, non-numeric, or non-positive is ignored rather than rejected.
// sort=asc selects ascending order; any other value keeps the default.
func FromContext(c echo.Context) Params {
	p := Params{}

	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.Limit = n
		}
	}

	if strings.EqualFold(c.QueryParam("sort"), "asc") {
		p.Ascending = true
	}

	return p
}
