package record

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/pkg/pagination"
)

// Handler exposes visit records over HTTP: the per-patient record set and
// the clinic-wide enriched listing.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the record endpoints under the given API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:id/records", h.ListForPatient)
	api.POST("/patients/:id/records", h.Create)
	api.GET("/general/all-records", h.ListAll)
}

func (h *Handler) ListForPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.ToHTTP(apperr.Invalidf("invalid patient id %q", c.Param("id")))
	}
	records, err := h.svc.ListForPatient(c.Request().Context(), patientID, pagination.FromContext(c))
	if err != nil {
		return apperr.ToHTTP(err)
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) Create(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.ToHTTP(apperr.Invalidf("invalid patient id %q", c.Param("id")))
	}
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	rec, err := h.svc.Create(c.Request().Context(), patientID, &in)
	if err != nil {
		return apperr.ToHTTP(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListAll(c echo.Context) error {
	records, err := h.svc.ListAllEnriched(c.Request().Context())
	if err != nil {
		return apperr.ToHTTP(err)
	}
	return c.JSON(http.StatusOK, records)
}
