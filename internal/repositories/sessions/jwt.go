package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"qrforge/internal/common"
	"qrforge/internal/models"
	"qrforge/internal/storage"
)

const signingKeySize = 32

// TokenRepository persists the session as an HS256-signed token so a
// tampered or corrupted blob restores to "no session" instead of a forged
// identity. The signing key is generated on first use and kept in the same
// blob store.
type TokenRepository struct {
	kv storage.KV
}

func NewTokenRepository(kv storage.KV) *TokenRepository {
	return &TokenRepository{kv: kv}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Username  string    `json:"username"`
	LoginTime time.Time `json:"login_time"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *TokenRepository) signingKey(ctx context.Context) ([]byte, error) {
	key, err := r.kv.Get(ctx, storage.KeySessionKey)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to load session key: %w", err)
	}

	key = common.GenerateRandByteArray(signingKeySize)
	if err := r.kv.Set(ctx, storage.KeySessionKey, key); err != nil {
		return nil, fmt.Errorf("failed to store session key: %w", err)
	}
	return key, nil
}

func (r *TokenRepository) Save(ctx context.Context, session *models.Session) error {
	key, err := r.signingKey(ctx)
	if err != nil {
		return err
	}

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(session.LoginTime),
		},
		Username:  session.Username,
		LoginTime: session.LoginTime,
		CreatedAt: session.CreatedAt,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	if err := r.kv.Set(ctx, storage.KeyCurrentUser, []byte(signed)); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *TokenRepository) Load(ctx context.Context) (*models.Session, error) {
	data, err := r.kv.Get(ctx, storage.KeyCurrentUser)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	key, err := r.signingKey(ctx)
	if err != nil {
		return nil, err
	}

	claims := &sessionClaims{}
	_, err = jwt.ParseWithClaims(string(data), claims,
		func(*jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		// Unverifiable session blobs restore to "no session".
		return nil, common.ErrNotFound
	}

	return &models.Session{
		Username:  claims.Username,
		LoginTime: claims.LoginTime,
		CreatedAt: claims.CreatedAt,
	}, nil
}

func (r *TokenRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
