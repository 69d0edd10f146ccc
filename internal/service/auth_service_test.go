package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notevault-be/internal/apperror"
	"notevault-be/internal/dto"
	"notevault-be/internal/repository/memory"
	"notevault-be/pkg/events"
)

const testJWTSecret = "test_secret"

func newAuthService(t *testing.T, remoteMode bool) (IAuthService, *memory.SessionRepository, *events.AuthStateBus) {
	t.Helper()
	provider := newTestProvider(t)
	sessions := memory.NewSessionRepository(time.Hour)
	bus := events.NewAuthStateBus()
	t.Cleanup(func() { bus.Close() })

	svc := NewAuthService(provider, sessions, bus, nopLogger{}, remoteMode, testJWTSecret, time.Hour)
	return svc, sessions, bus
}

func parseClaims(t *testing.T, accessToken string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(accessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestAuthServiceRegisterOpensSession(t *testing.T) {
	svc, sessions, _ := newAuthService(t, false)
	ctx := context.Background()

	name := "Amy"
	res, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "amy@example.com",
		Password: "password123",
		Name:     &name,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "amy@example.com", res.User.Email)

	claims := parseClaims(t, res.AccessToken)
	assert.Equal(t, res.User.Id, claims["user_id"])

	tokenId, _ := claims["jti"].(string)
	session, found := sessions.Get(tokenId)
	require.True(t, found)
	assert.Equal(t, res.User.Id, session.User.Id)

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "amy@example.com",
			Password: "other",
		})
		assert.Equal(t, apperror.KindAlreadyExists, apperror.KindOf(err))
	})
}

func TestAuthServiceLoginAndLogout(t *testing.T) {
	svc, sessions, _ := newAuthService(t, false)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "amy@example.com", Password: "password123"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, &dto.LoginRequest{Email: "amy@example.com", Password: "password123"})
	require.NoError(t, err)

	claims := parseClaims(t, res.AccessToken)
	tokenId, _ := claims["jti"].(string)
	_, found := sessions.Get(tokenId)
	require.True(t, found)

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "amy@example.com", Password: "nope"})
		assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(err))
	})

	t.Run("logout drops the session", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, tokenId))
		_, found := sessions.Get(tokenId)
		assert.False(t, found)
	})
}

func TestAuthServiceCurrentUser(t *testing.T) {
	svc, _, _ := newAuthService(t, false)
	ctx := context.Background()

	res, err := svc.Register(ctx, &dto.RegisterRequest{Email: "amy@example.com", Password: "password123"})
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, res.User.Id)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "amy@example.com", user.Email)
}

func TestAuthServiceStateStream(t *testing.T) {
	t.Run("remote mode publishes sign-in and sign-out", func(t *testing.T) {
		svc, _, _ := newAuthService(t, true)
		ctx := context.Background()

		received := make(chan events.AuthStateEvent, 4)
		cancel, err := svc.OnAuthStateChange(func(e events.AuthStateEvent) {
			received <- e
		})
		require.NoError(t, err)
		defer cancel()

		res, err := svc.Register(ctx, &dto.RegisterRequest{Email: "amy@example.com", Password: "password123"})
		require.NoError(t, err)

		select {
		case e := <-received:
			assert.Equal(t, events.EventSignedIn, e.Type)
			require.NotNil(t, e.User)
			assert.Equal(t, res.User.Id, e.User.Id)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for SIGNED_IN event")
		}

		claims := parseClaims(t, res.AccessToken)
		tokenId, _ := claims["jti"].(string)
		require.NoError(t, svc.Logout(ctx, tokenId))

		select {
		case e := <-received:
			assert.Equal(t, events.EventSignedOut, e.Type)
			assert.Nil(t, e.User)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for SIGNED_OUT event")
		}
	})

	t.Run("local mode hands back an inert subscription", func(t *testing.T) {
		svc, _, _ := newAuthService(t, false)

		fired := make(chan struct{}, 1)
		cancel, err := svc.OnAuthStateChange(func(events.AuthStateEvent) {
			fired <- struct{}{}
		})
		require.NoError(t, err)
		cancel()

		_, err = svc.Register(context.Background(), &dto.RegisterRequest{Email: "amy@example.com", Password: "password123"})
		require.NoError(t, err)

		select {
		case <-fired:
			t.Fatal("local mode must not emit auth-state events")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
