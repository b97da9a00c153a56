package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/internal/platform/auth"
)

// errInvalidCredentials is returned for both an unknown username and a wrong
// password, so responses cannot be used to enumerate usernames.
var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthorized)

type Service struct {
	repo       Repository
	tokens     *auth.TokenIssuer
	bcryptCost int
}

func NewService(repo Repository, tokens *auth.TokenIssuer, bcryptCost int) *Service {
	return &Service{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a new staff account with a hashed password. The plaintext
// is discarded immediately after hashing.
func (s *Service) Register(ctx context.Context, fullName, username, password string) (*Staff, error) {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(username) == "" || password == "" {
		return nil, apperr.Invalidf("full_name, username and password are required")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	st := &Staff{
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Login verifies credentials and issues a signed session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, *Staff, error) {
	if username == "" || password == "" {
		return "", nil, apperr.Invalidf("username and password are required")
	}

	st, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(st.PasswordHash, password) {
		return "", nil, errInvalidCredentials
	}

	token, err := s.tokens.Issue(st.ID, st.FullName)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return token, st, nil
}
