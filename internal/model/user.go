package model

import "time"

// User is an application account held in the in-memory user store.  There is
// no credential material: sign-in is simulated in this build, so a user is
// identity only.
//
// Fields:
//  ID        – account identifier.
//  Name      – display name; derived from the email local part on login.
//  Email     – unique email address, lower-cased.
//  Role      – CUSTOMER or OWNER.
//  CreatedAt – when the account first appeared.
type User struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Account roles.  Owners manage a shop queue; customers browse and book.
const (
	RoleCustomer = "CUSTOMER"
	RoleOwner    = "OWNER"
)

// RefreshToken is a stored session refresh token.  Only the SHA-256 hash of
// the raw token is kept; the raw value goes back to the client once.
//
// Fields:
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the raw token.
//  ExpiresAt – expiry timestamp.
//  RevokedAt – when the token was revoked (nil while active).
type RefreshToken struct {
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
}
