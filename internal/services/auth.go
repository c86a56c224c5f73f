// Package services contains the application services of qrforge: credential
// checks, session lifecycle, the saved-item store, and the generation
// controller.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"qrforge/internal/common"
	"qrforge/internal/cryptox"
	"qrforge/internal/models"
	"qrforge/internal/repositories/accounts"
)

// Reserved demo identity. It is checked as a constant credential pair before
// the store is consulted and never exists as a stored account.
const (
	DemoUsername = "admin"
	demoPassword = "password"
)

const (
	minPasswordLen = 4
	saltSize       = 32
)

// AuthService is the credential store: it validates logins, registers new
// accounts, and renames existing ones. Every mutating operation rewrites the
// whole persisted collection.
type AuthService interface {
	// Authenticate returns the matching account, or a synthetic one for the
	// demo identity. Failures are always common.ErrAuth, with no detail.
	Authenticate(ctx context.Context, username, password string) (*models.Account, error)

	// Register creates a new account with CreatedAt = now.
	Register(ctx context.Context, username, password, confirm string) (*models.Account, error)

	// Rename changes an account's username after re-verifying its password.
	// Saved items are not touched here; callers cascade ownership separately.
	Rename(ctx context.Context, oldUsername, newUsername, confirmPassword string) (*models.Account, error)
}

type authService struct {
	accounts accounts.Repository
	now      func() time.Time
}

// NewAuthService constructs an AuthService over the given account repository.
func NewAuthService(repo accounts.Repository) AuthService {
	return &authService{accounts: repo, now: time.Now}
}

func isDemo(username, password string) bool {
	if username != DemoUsername {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(demoPassword)) == 1
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	if isDemo(username, password) {
		return &models.Account{Username: DemoUsername, CreatedAt: s.now()}, nil
	}

	all, err := s.accounts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		acc := &all[i]
		if acc.Username != username {
			continue
		}
		if cryptox.VerifyPassword([]byte(password), acc.Salt, acc.PasswordHash) {
			return acc, nil
		}
		break
	}
	return nil, common.ErrAuth
}

func (s *authService) Register(ctx context.Context, username, password, confirm string) (*models.Account, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" || confirm == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters long",
			common.ErrValidation, minPasswordLen)
	}

	all, err := s.accounts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if username == DemoUsername || usernameTaken(all, username) {
		return nil, common.ErrConflict
	}

	salt := common.GenerateRandByteArray(saltSize)
	account := models.Account{
		Username:     username,
		PasswordHash: cryptox.HashPassword([]byte(password), salt),
		Salt:         salt,
		CreatedAt:    s.now(),
	}

	if err := s.accounts.ReplaceAll(ctx, append(all, account)); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *authService) Rename(ctx context.Context, oldUsername, newUsername, confirmPassword string) (*models.Account, error) {
	newUsername = strings.TrimSpace(newUsername)
	if newUsername == "" {
		return nil, fmt.Errorf("%w: new username is required", common.ErrValidation)
	}

	all, err := s.accounts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if newUsername == DemoUsername || usernameTaken(all, newUsername) {
		return nil, common.ErrConflict
	}

	// Demo identity: verify against the constant pair, mutate nothing.
	if oldUsername == DemoUsername {
		if !isDemo(oldUsername, confirmPassword) {
			return nil, common.ErrAuth
		}
		return &models.Account{Username: newUsername, CreatedAt: s.now()}, nil
	}

	for i := range all {
		acc := &all[i]
		if acc.Username != oldUsername {
			continue
		}
		if !cryptox.VerifyPassword([]byte(confirmPassword), acc.Salt, acc.PasswordHash) {
			return nil, common.ErrAuth
		}
		acc.Username = newUsername
		if err := s.accounts.ReplaceAll(ctx, all); err != nil {
			return nil, err
		}
		return acc, nil
	}
	return nil, common.ErrAuth
}

func usernameTaken(all []models.Account, username string) bool {
	for i := range all {
		if all[i].Username == username {
			return true
		}
	}
	return false
}
