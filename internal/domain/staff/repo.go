package staff

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByUsername(ctx context.Context, username string) (*Staff, error)
	Count(ctx context.Context) (int, error)
}
