package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
)

// AuthUseCase registers and authenticates users and resolves the caller
// identity from a session token.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	// Login returns ErrInvalidCredentials both for an unknown email and for
	// a wrong password.
	Login(ctx context.Context, in LoginInput) (*Session, error)
	// Logout ends a session. Tokens are stateless, so this only tells the
	// transport to drop the credential.
	Logout(ctx context.Context, token string) error
	// ResolveIdentity returns ErrUnauthorized for a missing, malformed,
	// expired or forged token, or a token whose user is gone. Only store
	// failures produce ErrDependency.
	ResolveIdentity(ctx context.Context, token string) (*domain.User, error)
}

// RegisterInput is the sign-up form. Password max counts runes; Register
// also caps it at 72 bytes, the most bcrypt reads.
type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is the result of a successful register or login. The transport
// attaches Token to the response as an HTTP-only credential.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.UserSummary
}

// PasswordHasher hashes passwords with a salted one-way function.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenClaims is the identity carried by a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenManager issues and verifies signed, time-bounded session tokens.
// Verification does no I/O.
type TokenManager interface {
	Issue(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)
	Verify(token string) (*TokenClaims, error)
}
