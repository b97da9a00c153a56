// Package sandbox seeds a development database with a known staff login so a
// fresh environment is usable without a manual registration call. It is only
// wired up when the server runs with the development profile.
package sandbox

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/domain/staff"
	"github.com/clinic/clinic/internal/platform/auth"
)

const (
	devUsername = "dev"
	devPassword = "dev-password"
	devFullName = "Development User"
)

// Seeder inserts the development staff account when no accounts exist yet.
type Seeder struct {
	staff      staff.Repository
	bcryptCost int
	log        zerolog.Logger
}

func NewSeeder(repo staff.Repository, bcryptCost int, log zerolog.Logger) *Seeder {
	return &Seeder{
		staff:      repo,
		bcryptCost: bcryptCost,
		log:        log.With().Str("component", "sandbox").Logger(),
	}
}

// Seed creates the dev account if the staff table is empty. An already
// populated table means the environment is in use and is left alone.
func (s *Seeder) Seed(ctx context.Context) error {
	n, err := s.staff.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword(devPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	account := &staff.Staff{
		Username:     devUsername,
		PasswordHash: hash,
		FullName:     devFullName,
	}
	if err := s.staff.Create(ctx, account); err != nil {
		return err
	}
	s.log.Warn().
		Str("username", devUsername).
		Msg("seeded development staff account, do not use this profile in production")
	return nil
}
