package tokenstore

import "docnet-client/internal/app/models"

// TokenStore persists the bearer token together with the last-known profile.
// Operations are synchronous, idempotent and never fail the caller: a missing
// or corrupted persisted value is simply "no session". Token and profile are
// always written and cleared together, never independently.
type TokenStore interface {
	Save(token string, user *models.User)
	Load() (string, *models.User)
	Clear()
}
