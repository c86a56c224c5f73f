// Package storage provides the keyed blob stores backing qrforge
// persistence.
//
// The whole application state lives under three independent keys (accounts,
// current session, saved items), each holding a full serialized snapshot of
// its collection. A write fully replaces the value under its key, so readers
// never observe partial state.
package storage

import "context"

// Well-known blob keys.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeySavedItems  = "savedItems"
	KeySessionKey  = "sessionKey"
)

// KV is a minimal keyed blob store. Get returns common.ErrNotFound when the
// key is absent. Delete on an absent key is a no-op.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
