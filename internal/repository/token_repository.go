package repository

import (
	"sync"
	"time"

	"github.com/trimtime/queue-service/internal/model"
)

// TokenRepo stores refresh tokens for session continuity.  Only SHA-256
// hashes are kept, and the store is memory-only: restarting the process
// invalidates every session, consistent with the process-lifetime data model.
type TokenRepo struct {
	mu     sync.Mutex
	byHash map[string]*model.RefreshToken
}

func NewTokenRepo() *TokenRepo {
	return &TokenRepo{byHash: make(map[string]*model.RefreshToken)}
}

// StoreRefresh records a refresh token hash for a user.
func (r *TokenRepo) StoreRefresh(userID uint64, tokenHash string, exp time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byHash[tokenHash] = &model.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: exp,
	}
}

// ValidateRefresh returns the owning user id when a non-revoked, non-expired
// token with the given hash exists, otherwise ErrInvalidToken.
func (r *TokenRepo) ValidateRefresh(tokenHash string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byHash[tokenHash]
	if !ok || t.RevokedAt != nil || time.Now().After(t.ExpiresAt) {
		return 0, ErrInvalidToken
	}
	return t.UserID, nil
}

// RevokeByHash marks a single token revoked.  Revoking an unknown hash is a
// no-op.
func (r *TokenRepo) RevokeByHash(tokenHash string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.byHash[tokenHash]; ok && t.RevokedAt == nil {
		now := time.Now()
		t.RevokedAt = &now
	}
}

// RevokeAllForUser revokes every active token belonging to a user, logging
// them out of all sessions.
func (r *TokenRepo) RevokeAllForUser(userID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, t := range r.byHash {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
		}
	}
}
