// Package models defines the account, session, and saved-item types that
// make up the persisted state of qrforge.
package models

import "time"

// Account is a registered user record kept in the accounts blob.
//
// The password is stored as an argon2id verifier plus per-account salt,
// never in clear text. CreatedAt is set once at registration and is
// immutable; Username may change through a rename.
type Account struct {
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"password_hash"`
	Salt         []byte    `json:"salt"`
	CreatedAt    time.Time `json:"created_at"`
}
