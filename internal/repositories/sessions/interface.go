// Package sessions persists the current session so it survives process
// restarts.
package sessions

import (
	"context"

	"qrforge/internal/models"
)

// Repository stores at most one session. Load returns common.ErrNotFound
// when no session is persisted or the persisted blob fails verification.
type Repository interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}
