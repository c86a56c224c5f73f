package services

import (
	"context"
	"time"

	"qrforge/internal/models"
	"qrforge/internal/repositories/sessions"
)

// SessionService tracks the authenticated identity across restarts.
type SessionService interface {
	// Login validates credentials and persists a fresh session.
	Login(ctx context.Context, username, password string) (*models.Session, error)

	// Logout clears the persisted session.
	Logout(ctx context.Context) error

	// Restore reconstructs the session persisted by a previous run, or
	// returns common.ErrNotFound, directing the caller to the login flow.
	Restore(ctx context.Context) (*models.Session, error)

	// RenameCurrent renames the session's account, cascades saved-item
	// ownership, and re-persists the session under the new name.
	RenameCurrent(ctx context.Context, session *models.Session, newUsername, confirmPassword string) (*models.Session, error)
}

type sessionService struct {
	auth     AuthService
	sessions sessions.Repository
	items    ItemService
	now      func() time.Time
}

func NewSessionService(auth AuthService, repo sessions.Repository, items ItemService) SessionService {
	return &sessionService{auth: auth, sessions: repo, items: items, now: time.Now}
}

func (s *sessionService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	account, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		Username:  account.Username,
		LoginTime: s.now(),
		CreatedAt: account.CreatedAt,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *sessionService) Restore(ctx context.Context) (*models.Session, error) {
	return s.sessions.Load(ctx)
}

func (s *sessionService) RenameCurrent(ctx context.Context, session *models.Session, newUsername, confirmPassword string) (*models.Session, error) {
	account, err := s.auth.Rename(ctx, session.Username, newUsername, confirmPassword)
	if err != nil {
		return nil, err
	}

	if err := s.items.CascadeRename(ctx, session.Username, account.Username); err != nil {
		return nil, err
	}

	renamed := *session
	renamed.Username = account.Username
	if err := s.sessions.Save(ctx, &renamed); err != nil {
		return nil, err
	}
	return &renamed, nil
}
