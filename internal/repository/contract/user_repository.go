package contract

import (
	"context"

	"notevault-be/internal/entity"
)

type UserRepository interface {
	// Register stores a new account and returns its public shape. Fails
	// with AlreadyExists when the email is taken.
	Register(ctx context.Context, email, password string, name *string) (*entity.User, error)
	// Authenticate verifies the credentials and returns the matching user,
	// or InvalidCredentials when nothing matches.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)

	// CurrentUser and session bookkeeping exist for the local store, which
	// persists the signed-in user's public fields as a simulated session.
	// The remote backend resolves sessions per-token and keeps no ambient
	// session state, so its implementations are no-ops.
	SetCurrentUser(ctx context.Context, user *entity.User) error
	CurrentUser(ctx context.Context) (*entity.User, error)
	ClearCurrentUser(ctx context.Context) error
}
