package models

import "time"

// Session is the evidence of the currently authenticated identity.
// LoginTime is set at each login; CreatedAt is copied from the account
// (or synthesized for the demo identity). A session survives restarts
// until an explicit logout.
type Session struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"login_time"`
	CreatedAt time.Time `json:"created_at"`
}
