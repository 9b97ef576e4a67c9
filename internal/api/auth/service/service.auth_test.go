package authsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmodels "github.com/cobreklo/portafolio-api/internal/api/auth/models"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/utility"
)

func newCacheOnlyService(t *testing.T, secret string) *AuthService {
	t.Helper()
	cache := utility.NewCache(time.Minute)
	t.Cleanup(cache.Close)
	return &AuthService{jwtSecret: []byte(secret), tokenCache: cache}
}

func signToken(t *testing.T, secret string, hwid string, expiresAt time.Time) string {
	t.Helper()
	claims := authmodels.JwtClaims{
		UserID: "64b0c0ffee0000000000c0de",
		Hwid:   hwid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateTokenCacheHit(t *testing.T) {
	s := newCacheOnlyService(t, "secret")
	user := &authmodels.User{Email: "admin@localhost"}
	s.tokenCache.Set("tok-web", cachedSession{user: user, hwid: "web"})

	got, hwid, err := s.ValidateToken(context.Background(), "tok-web")
	require.NoError(t, err)
	assert.Same(t, user, got)
	assert.Equal(t, "web", hwid)
}

func TestInvalidateCachedTokenEvictsOnlyThatDevice(t *testing.T) {
	s := newCacheOnlyService(t, "secret")
	user := &authmodels.User{
		Email: "admin@localhost",
		Tokens: []authmodels.Token{
			{Hwid: "web", JwtToken: "tok-web"},
			{Hwid: "phone", JwtToken: "tok-phone"},
		},
	}
	s.tokenCache.Set("tok-web", cachedSession{user: user, hwid: "web"})
	s.tokenCache.Set("tok-phone", cachedSession{user: user, hwid: "phone"})

	s.invalidateCachedToken(user, "web")

	// The signed-out device no longer validates from the cache.
	_, _, err := s.ValidateToken(context.Background(), "tok-web")
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))

	_, hwid, err := s.ValidateToken(context.Background(), "tok-phone")
	require.NoError(t, err)
	assert.Equal(t, "phone", hwid)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	s := newCacheOnlyService(t, "secret")
	_, _, err := s.ValidateToken(context.Background(), "not-a-jwt")
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	s := newCacheOnlyService(t, "secret")
	expired := signToken(t, "secret", "web", time.Now().Add(-time.Hour))
	_, _, err := s.ValidateToken(context.Background(), expired)
	assert.True(t, errors.Is(err, common.ErrTokenExpired))
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	s := newCacheOnlyService(t, "secret")
	forged := signToken(t, "other-secret", "web", time.Now().Add(time.Hour))
	_, _, err := s.ValidateToken(context.Background(), forged)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}
