package session

import (
	"context"

	"docnet-client/internal/app/models"
	"docnet-client/internal/pkg/dto/requests"
)

// SessionUsecase owns the session lifecycle:
// Unresolved -> Validating -> {Authenticated, Anonymous}, and
// Authenticated -> Anonymous on logout. Callers are expected to run their own
// form validation (password confirmation, doctor verification) before
// invoking Register; it is not re-checked here.
type SessionUsecase interface {
	// Restore resolves a persisted token against the backend. It ends in
	// Authenticated with a refreshed persisted profile, or in Anonymous with
	// the token store cleared; it never leaves the session in Validating.
	Restore(ctx context.Context)

	// Login authenticates and persists the returned token and profile. Any
	// failure comes back as a single generic invalid-credentials error;
	// wrong password, wrong role and unknown account are indistinguishable.
	Login(ctx context.Context, request *requests.Login) error

	Register(ctx context.Context, request *requests.Register) error

	// VerifyDoctor is a stateless NMC-number check used as a doctor
	// registration gate. It never touches session state.
	VerifyDoctor(ctx context.Context, nmcNumber string) (bool, error)

	// Logout invalidates the server-side session best-effort and tears the
	// local session down unconditionally.
	Logout(ctx context.Context)

	State() models.SessionState
	CurrentUser() *models.User
}
