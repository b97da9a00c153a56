package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the storage contract for patient rows.
type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	Get(ctx context.Context, id uuid.UUID) (*Patient, error)
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, id uuid.UUID, u *Update) (*Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
