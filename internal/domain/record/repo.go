package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinic/clinic/pkg/pagination"
)

// Repository is the storage contract for visit records. Records are
// append-only at this layer: no update or delete.
type Repository interface {
	ListForPatient(ctx context.Context, patientID uuid.UUID, page pagination.Params) ([]Record, error)
	Create(ctx context.Context, rec *Record) error
	ListAllEnriched(ctx context.Context) ([]EnrichedRecord, error)
}
