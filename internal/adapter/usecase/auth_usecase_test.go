package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
	"adsight/internal/core/port/mocks"
	"adsight/internal/validation"
)

type authFixture struct {
	users  *mocks.MockUserRepository
	hasher *mocks.MockPasswordHasher
	tokens *mocks.MockTokenManager
	svc    *AuthUseCase
}

func newAuthFixture(t *testing.T) authFixture {
	f := authFixture{
		users:  mocks.NewMockUserRepository(t),
		hasher: mocks.NewMockPasswordHasher(t),
		tokens: mocks.NewMockTokenManager(t),
	}
	f.svc = NewAuthUseCase(f.users, f.hasher, f.tokens, discardLogger())
	return f
}

func TestRegisterCreatesUserAndIssuesSession(t *testing.T) {
	f := newAuthFixture(t)
	exp := time.Now().Add(7 * 24 * time.Hour)

	f.users.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(nil, nil)
	f.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	f.users.EXPECT().GetByUsername(mock.Anything, "jane").Return(nil, nil)
	f.users.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "jane@example.com" &&
				u.Username == "jane" &&
				u.PasswordHash == "hashed" &&
				u.Role == domain.RoleUser &&
				u.ID != uuid.Nil
		})).
		Return(nil)
	f.tokens.EXPECT().Issue(mock.AnythingOfType("uuid.UUID"), "jane@example.com").Return("tok", exp, nil)

	s, err := f.svc.Register(context.Background(), port.RegisterInput{
		FirstName: " Jane ",
		LastName:  "Doe",
		Email:     "  Jane@Example.COM ",
		Password:  "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)
	assert.Equal(t, exp, s.ExpiresAt)
	assert.Equal(t, "Jane", s.User.FirstName)
	assert.Equal(t, "jane@example.com", s.User.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.users.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(&domain.User{ID: uuid.New()}, nil)

	_, err := f.svc.Register(context.Background(), port.RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, port.ErrDuplicateEmail)
}

func TestRegisterDuplicateEmailOnInsert(t *testing.T) {
	f := newAuthFixture(t)
	f.users.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(nil, nil)
	f.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	f.users.EXPECT().GetByUsername(mock.Anything, "jane").Return(nil, nil)
	f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(port.ErrDuplicateEmail)

	_, err := f.svc.Register(context.Background(), port.RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, port.ErrDuplicateEmail)
}

func TestRegisterSuffixesTakenUsername(t *testing.T) {
	f := newAuthFixture(t)
	f.users.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(nil, nil)
	f.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	f.users.EXPECT().GetByUsername(mock.Anything, "jane").Return(&domain.User{Username: "jane"}, nil)
	f.users.EXPECT().
		GetByUsername(mock.Anything, mock.MatchedBy(func(s string) bool { return strings.HasPrefix(s, "jane-") })).
		Return(nil, nil)

	var stored *domain.User
	f.users.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) { stored = u }).
		Return(nil)
	f.tokens.EXPECT().Issue(mock.Anything, "jane@example.com").Return("tok", time.Now(), nil)

	_, err := f.svc.Register(context.Background(), port.RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, strings.HasPrefix(stored.Username, "jane-"), stored.Username)
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Register(context.Background(), port.RegisterInput{Email: "not-an-email", Password: "abc"})
	require.ErrorIs(t, err, port.ErrValidation)

	var verr *validation.RequestValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, fe := range verr.Fields {
		fields[fe.Field] = fe.Tag
	}
	assert.Equal(t, map[string]string{
		"firstName": "required",
		"lastName":  "required",
		"email":     "email",
		"password":  "min",
	}, fields)
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"73 ascii characters", strings.Repeat("p", 73)},
		{"40 runes over 72 bytes", strings.Repeat("é", 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)

			_, err := f.svc.Register(context.Background(), port.RegisterInput{
				FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: tt.password,
			})
			require.ErrorIs(t, err, port.ErrValidation)

			var verr *validation.RequestValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, "password", verr.Fields[0].Field)
			assert.Equal(t, "max", verr.Fields[0].Tag)
		})
	}
}

func TestRegisterAcceptsSeventyTwoBytePassword(t *testing.T) {
	f := newAuthFixture(t)
	pw := strings.Repeat("p", 72)
	f.users.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(nil, nil)
	f.hasher.EXPECT().Hash(pw).Return("hashed", nil)
	f.users.EXPECT().GetByUsername(mock.Anything, "jane").Return(nil, nil)
	f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.tokens.EXPECT().Issue(mock.Anything, "jane@example.com").Return("tok", time.Now(), nil)

	_, err := f.svc.Register(context.Background(), port.RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: pw,
	})
	require.NoError(t, err)
}

func TestRegisterStoreFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := f.svc.Register(context.Background(), port.RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, port.ErrDependency)
}

func TestLoginSucceeds(t *testing.T) {
	f := newAuthFixture(t)
	u := &domain.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed", FirstName: "Jane"}
	f.users.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(u, nil)
	f.hasher.EXPECT().Verify("hashed", "secret1").Return(true)
	f.tokens.EXPECT().Issue(u.ID, u.Email).Return("tok", time.Now(), nil)

	s, err := f.svc.Login(context.Background(), port.LoginInput{Email: "JANE@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)
	assert.Equal(t, u.ID, s.User.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	u := &domain.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed"}
	f.users.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, nil)
	f.users.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(u, nil)
	f.hasher.EXPECT().Hash(timingPassword).Return("timing-hash", nil).Once()
	f.hasher.EXPECT().Verify("timing-hash", "wrong").Return(false).Once()
	f.hasher.EXPECT().Verify("hashed", "wrong").Return(false)

	_, unknownErr := f.svc.Login(context.Background(), port.LoginInput{Email: "nobody@example.com", Password: "wrong"})
	_, wrongErr := f.svc.Login(context.Background(), port.LoginInput{Email: "jane@example.com", Password: "wrong"})

	require.ErrorIs(t, unknownErr, port.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, port.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginUnknownEmailStillVerifiesAHash(t *testing.T) {
	f := newAuthFixture(t)
	f.users.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, nil).Times(3)
	f.hasher.EXPECT().Hash(timingPassword).Return("timing-hash", nil).Once()
	f.hasher.EXPECT().Verify("timing-hash", mock.Anything).Return(false).Times(3)

	for _, pw := range []string{"a", "b", "c"} {
		_, err := f.svc.Login(context.Background(), port.LoginInput{Email: "nobody@example.com", Password: pw})
		require.ErrorIs(t, err, port.ErrInvalidCredentials)
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.Login(context.Background(), port.LoginInput{Email: "jane@example.com"})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestResolveIdentity(t *testing.T) {
	ctx := context.Background()
	u := &domain.User{ID: uuid.New(), Email: "jane@example.com"}

	t.Run("valid token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Verify("good").Return(&port.TokenClaims{UserID: u.ID, Email: u.Email}, nil)
		f.users.EXPECT().GetByID(mock.Anything, u.ID).Return(u, nil)

		got, err := f.svc.ResolveIdentity(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, u, got)
	})

	t.Run("bad token never reaches the store", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Verify("forged").Return(nil, port.ErrUnauthorized)

		_, err := f.svc.ResolveIdentity(ctx, "forged")
		assert.ErrorIs(t, err, port.ErrUnauthorized)
	})

	t.Run("user deleted", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Verify("orphan").Return(&port.TokenClaims{UserID: u.ID, Email: u.Email}, nil)
		f.users.EXPECT().GetByID(mock.Anything, u.ID).Return(nil, nil)

		_, err := f.svc.ResolveIdentity(ctx, "orphan")
		assert.ErrorIs(t, err, port.ErrUnauthorized)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Verify("good").Return(&port.TokenClaims{UserID: u.ID, Email: u.Email}, nil)
		f.users.EXPECT().GetByID(mock.Anything, u.ID).Return(nil, errors.New("timeout"))

		_, err := f.svc.ResolveIdentity(ctx, "good")
		assert.ErrorIs(t, err, port.ErrDependency)
		assert.NotErrorIs(t, err, port.ErrUnauthorized)
	})
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	f := newAuthFixture(t)
	f.tokens.EXPECT().Verify("").Return(nil, port.ErrUnauthorized)

	assert.NoError(t, f.svc.Logout(context.Background(), ""))
}
