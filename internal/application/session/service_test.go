package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	"github.com/MightyBhargava/LegalChain-sub001/internal/infrastructure/google"
)

type userStoreMock struct{ mock.Mock }

func (m *userStoreMock) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userStoreMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userStoreMock) GetByGoogleSub(ctx context.Context, sub string) (*domain.User, error) {
	args := m.Called(ctx, sub)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userStoreMock) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *userStoreMock) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return m.Called(ctx, userID, updates).Error(0)
}

type sessionStoreMock struct{ mock.Mock }

func (m *sessionStoreMock) Put(ctx context.Context, s *domain.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *sessionStoreMock) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if s := args.Get(0); s != nil {
		return s.(*domain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *sessionStoreMock) GetByRefreshToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if s := args.Get(0); s != nil {
		return s.(*domain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *sessionStoreMock) RotateRefreshToken(ctx context.Context, sessionID, newToken string, newExpiry int64) error {
	return m.Called(ctx, sessionID, newToken, newExpiry).Error(0)
}

func (m *sessionStoreMock) Update(ctx context.Context, sessionID string, updates map[string]interface{}) error {
	return m.Called(ctx, sessionID, updates).Error(0)
}

type deviceStoreMock struct{ mock.Mock }

func (m *deviceStoreMock) GetByUUID(ctx context.Context, uuid string) (*domain.Device, error) {
	args := m.Called(ctx, uuid)
	if d := args.Get(0); d != nil {
		return d.(*domain.Device), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *deviceStoreMock) Put(ctx context.Context, d *domain.Device) error {
	return m.Called(ctx, d).Error(0)
}

type verifierMock struct{ mock.Mock }

func (m *verifierMock) Verify(ctx context.Context, token string) (*google.Payload, error) {
	args := m.Called(ctx, token)
	if p := args.Get(0); p != nil {
		return p.(*google.Payload), args.Error(1)
	}
	return nil, args.Error(1)
}

type jwtSignerMock struct{ mock.Mock }

func (m *jwtSignerMock) Sign(userID, deviceID, sessionID string) (string, error) {
	args := m.Called(userID, deviceID, sessionID)
	return args.String(0), args.Error(1)
}

type fixture struct {
	users    *userStoreMock
	sessions *sessionStoreMock
	devices  *deviceStoreMock
	verifier *verifierMock
	signer   *jwtSignerMock
	svc      Service
}

func newFixture() *fixture {
	f := &fixture{
		users:    new(userStoreMock),
		sessions: new(sessionStoreMock),
		devices:  new(deviceStoreMock),
		verifier: new(verifierMock),
		signer:   new(jwtSignerMock),
	}
	f.svc = NewService(ServiceDeps{
		SessionRepo:     f.sessions,
		UserRepo:        f.users,
		DeviceRepo:      f.devices,
		Verifier:        f.verifier,
		JWTProvider:     f.signer,
		RefreshTokenDur: 720 * time.Hour,
	})
	return f
}

func (f *fixture) expectSessionOpened() {
	f.devices.On("Put", mock.Anything, mock.AnythingOfType("*domain.Device")).Return(nil).Once()
	f.sessions.On("Put", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(nil).Once()
	f.signer.On("Sign", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("bearer-token", nil).Once()
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{UserID: "u1", Email: "adv@example.in", PasswordHash: string(hash), Enable: true}

	t.Run("valid credentials open a session", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByEmail", ctx, "adv@example.in").Return(user, nil).Once()
		f.expectSessionOpened()

		res, err := f.svc.Login(ctx, LoginRequest{Email: "adv@example.in", Password: "s3cret"})

		require.NoError(t, err)
		assert.Equal(t, "bearer-token", res.Bearer)
		assert.NotEmpty(t, res.RefreshToken)
		assert.False(t, res.IsNewUser)
		f.sessions.AssertExpectations(t)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByEmail", ctx, "adv@example.in").Return(user, nil).Once()

		res, err := f.svc.Login(ctx, LoginRequest{Email: "adv@example.in", Password: "wrong"})

		require.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Nil(t, res)
	})

	t.Run("unknown email is unauthorized, not not-found", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByEmail", ctx, "who@example.in").Return(nil, notFound("user")).Once()

		_, err := f.svc.Login(ctx, LoginRequest{Email: "who@example.in", Password: "s3cret"})

		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("disabled account is forbidden", func(t *testing.T) {
		f := newFixture()
		disabled := *user
		disabled.Enable = false
		f.users.On("GetByEmail", ctx, "adv@example.in").Return(&disabled, nil).Once()

		_, err := f.svc.Login(ctx, LoginRequest{Email: "adv@example.in", Password: "s3cret"})

		require.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestLoginWithGoogle(t *testing.T) {
	ctx := context.Background()
	payload := &google.Payload{Sub: "sub-1", Email: "adv@example.in", EmailVerified: true, FullName: "Priya Kapoor"}

	t.Run("returning user is not flagged new", func(t *testing.T) {
		f := newFixture()
		f.verifier.On("Verify", ctx, "tok").Return(payload, nil).Once()
		f.users.On("GetByGoogleSub", ctx, "sub-1").Return(&domain.User{UserID: "u1", Enable: true, GoogleSub: "sub-1"}, nil).Once()
		f.expectSessionOpened()

		res, err := f.svc.LoginWithGoogle(ctx, GoogleLoginRequest{IDToken: "tok"})

		require.NoError(t, err)
		assert.False(t, res.IsNewUser)
	})

	t.Run("existing local account is linked, not recreated", func(t *testing.T) {
		f := newFixture()
		f.verifier.On("Verify", ctx, "tok").Return(payload, nil).Once()
		f.users.On("GetByGoogleSub", ctx, "sub-1").Return(nil, notFound("user")).Once()
		f.users.On("GetByEmail", ctx, "adv@example.in").Return(&domain.User{UserID: "u1", Email: "adv@example.in", Enable: true}, nil).Once()
		f.users.On("Update", ctx, "u1", map[string]interface{}{"google_sub": "sub-1"}).Return(nil).Once()
		f.expectSessionOpened()

		res, err := f.svc.LoginWithGoogle(ctx, GoogleLoginRequest{IDToken: "tok"})

		require.NoError(t, err)
		assert.False(t, res.IsNewUser)
		f.users.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("first sight creates the account and flags it new", func(t *testing.T) {
		f := newFixture()
		f.verifier.On("Verify", ctx, "tok").Return(payload, nil).Once()
		f.users.On("GetByGoogleSub", ctx, "sub-1").Return(nil, notFound("user")).Once()
		f.users.On("GetByEmail", ctx, "adv@example.in").Return(nil, notFound("user")).Once()
		f.users.On("Put", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "adv@example.in" && u.GoogleSub == "sub-1" && u.AuthProvider == "google" && u.Enable
		})).Return(nil).Once()
		f.expectSessionOpened()

		res, err := f.svc.LoginWithGoogle(ctx, GoogleLoginRequest{IDToken: "tok"})

		require.NoError(t, err)
		assert.True(t, res.IsNewUser)
		f.users.AssertExpectations(t)
	})

	t.Run("verifier rejection stops the flow", func(t *testing.T) {
		f := newFixture()
		f.verifier.On("Verify", ctx, "bad").Return(nil, fmt.Errorf("invalid id token: %w", domain.ErrUnauthorized)).Once()

		res, err := f.svc.LoginWithGoogle(ctx, GoogleLoginRequest{IDToken: "bad"})

		require.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Nil(t, res)
		f.users.AssertNotCalled(t, "GetByGoogleSub", mock.Anything, mock.Anything)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the token and signs a new bearer", func(t *testing.T) {
		f := newFixture()
		sess := &domain.Session{SessionID: "s1", UserID: "u1", DeviceID: "d1", Enable: true, RefreshExpiresAt: time.Now().Add(time.Hour).Unix()}
		f.sessions.On("GetByRefreshToken", ctx, "old").Return(sess, nil).Once()
		f.sessions.On("RotateRefreshToken", ctx, "s1", mock.AnythingOfType("string"), mock.AnythingOfType("int64")).Return(nil).Once()
		f.signer.On("Sign", "u1", "d1", "s1").Return("new-bearer", nil).Once()

		bearer, newToken, err := f.svc.Refresh(ctx, "old")

		require.NoError(t, err)
		assert.Equal(t, "new-bearer", bearer)
		assert.NotEmpty(t, newToken)
		assert.NotEqual(t, "old", newToken)
	})

	t.Run("expired refresh token is unauthorized", func(t *testing.T) {
		f := newFixture()
		sess := &domain.Session{SessionID: "s1", RefreshExpiresAt: time.Now().Add(-time.Hour).Unix()}
		f.sessions.On("GetByRefreshToken", ctx, "old").Return(sess, nil).Once()

		_, _, err := f.svc.Refresh(ctx, "old")

		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestGetCurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.sessions.On("Get", ctx, "s1").Return(&domain.Session{SessionID: "s1", UserID: "u1", Enable: true}, nil).Once()
	f.users.On("Get", ctx, "u1").Return(&domain.User{UserID: "u1", Email: "adv@example.in"}, nil).Once()

	sess, err := f.svc.GetCurrent(ctx, "s1")

	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Equal(t, "adv@example.in", sess.User.Email)
}
