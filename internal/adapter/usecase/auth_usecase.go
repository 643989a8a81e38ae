package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
	"adsight/internal/validation"
)

// maxUsernameAttempts bounds the retries when a derived username is taken.
const maxUsernameAttempts = 5

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// timingPassword is hashed once and checked against when a login names an
// unknown email, so both failure paths run one hash comparison.
const timingPassword = "adsight-unknown-account"

// AuthUseCase implements port.AuthUseCase on top of the credential store,
// a password hasher and a token manager.
type AuthUseCase struct {
	users  port.UserRepository
	hasher port.PasswordHasher
	tokens port.TokenManager
	logger *slog.Logger
	now    func() time.Time

	timingOnce sync.Once
	timingHash string
}

// NewAuthUseCase wires the auth service.
func NewAuthUseCase(users port.UserRepository, hasher port.PasswordHasher, tokens port.TokenManager, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens, logger: logger, now: time.Now}
}

// Register creates an account and signs the user in.
func (u *AuthUseCase) Register(ctx context.Context, in port.RegisterInput) (*port.Session, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = normalizeEmail(in.Email)
	if verr := validation.ValidateStruct(&in); verr != nil {
		return nil, invalid(verr)
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, invalid(&validation.RequestValidationError{Fields: []validation.FieldError{{
			Field:   "password",
			Tag:     "max",
			Message: fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes),
		}}})
	}

	existing, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, dependency("lookup user", err)
	}
	if existing != nil {
		return nil, port.ErrDuplicateEmail
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         domain.RoleUser,
		CreatedAt:    u.now().UTC().Truncate(time.Microsecond),
	}
	if err = u.createWithUsername(ctx, user); err != nil {
		return nil, err
	}
	u.logger.Info("user registered", slog.String("user_id", user.ID.String()))
	return u.issue(user)
}

// createWithUsername derives the username from the email local part and
// appends a short suffix while it is taken.
func (u *AuthUseCase) createWithUsername(ctx context.Context, user *domain.User) error {
	base := usernameFromEmail(user.Email)
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		candidate := base
		if attempt > 0 {
			candidate = base + "-" + uuid.NewString()[:6]
		}
		taken, err := u.users.GetByUsername(ctx, candidate)
		if err != nil {
			return dependency("lookup username", err)
		}
		if taken != nil {
			continue
		}
		user.Username = candidate
		err = u.users.Create(ctx, user)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, port.ErrDuplicateEmail):
			return port.ErrDuplicateEmail
		case errors.Is(err, port.ErrDuplicateUsername):
			continue
		default:
			return dependency("create user", err)
		}
	}
	return fmt.Errorf("no free username for %q after %d attempts", base, maxUsernameAttempts)
}

// Login verifies credentials. Unknown email and wrong password produce the
// same error.
func (u *AuthUseCase) Login(ctx context.Context, in port.LoginInput) (*port.Session, error) {
	in.Email = normalizeEmail(in.Email)
	if verr := validation.ValidateStruct(&in); verr != nil {
		return nil, invalid(verr)
	}

	user, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, dependency("lookup user", err)
	}
	if user == nil {
		u.hasher.Verify(u.unknownAccountHash(), in.Password)
		return nil, port.ErrInvalidCredentials
	}
	if !u.hasher.Verify(user.PasswordHash, in.Password) {
		return nil, port.ErrInvalidCredentials
	}
	return u.issue(user)
}

// unknownAccountHash returns a hash produced with the configured hasher so
// its verification costs the same as a real account's.
func (u *AuthUseCase) unknownAccountHash() string {
	u.timingOnce.Do(func() {
		h, err := u.hasher.Hash(timingPassword)
		if err != nil {
			u.logger.Warn("hash timing password", slog.Any("error", err))
			return
		}
		u.timingHash = h
	})
	return u.timingHash
}

// Logout has nothing to revoke server side.
func (u *AuthUseCase) Logout(_ context.Context, token string) error {
	if claims, err := u.tokens.Verify(token); err == nil {
		u.logger.Debug("user logged out", slog.String("user_id", claims.UserID.String()))
	}
	return nil
}

// ResolveIdentity maps a session token to the stored user.
func (u *AuthUseCase) ResolveIdentity(ctx context.Context, token string) (*domain.User, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return nil, port.ErrUnauthorized
	}
	user, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, dependency("load user", err)
	}
	if user == nil || user.Email != claims.Email {
		return nil, port.ErrUnauthorized
	}
	return user, nil
}

func (u *AuthUseCase) issue(user *domain.User) (*port.Session, error) {
	tok, exp, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &port.Session{Token: tok, ExpiresAt: exp, User: user.Summary()}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "user"
	}
	return local
}
