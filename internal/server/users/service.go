package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmarques/despesas/internal/common"
	"github.com/dmarques/despesas/internal/server/auth"
	"github.com/dmarques/despesas/internal/server/config"
	"github.com/dmarques/despesas/internal/server/password"
)

// LoginResult is what a successful login hands back to the transport layer:
// the signed bearer token and the account it identifies.
type LoginResult struct {
	Token string
	User  *User
}

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates an account with a hashed password. It pre-checks the
// email, but the store's uniqueness constraint is what actually closes the
// check-then-insert race, so ErrorEmailTaken can still come from Create.
func (s *Service) Register(ctx context.Context, name, email, plaintext string) (*User, error) {

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || plaintext == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorEmailTaken
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hashed, err := password.Hash(plaintext)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and issues a signed token carrying the user's
// id and display name. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*LoginResult, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !password.Verify(user.PasswordHash, plaintext) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Name, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{Token: token, User: user}, nil
}
