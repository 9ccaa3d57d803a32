package utils

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test_signing_secret")
	os.Exit(m.Run())
}

func TestSignAndVerifyToken(t *testing.T) {
	token, err := SignToken("user_1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", subject)
}

func TestVerifyTamperedToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "user_1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some_other_secret"))
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "user_1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_signing_secret"))
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyMalformedToken(t *testing.T) {
	_, err := VerifyToken("")
	assert.Error(t, err)

	_, err = VerifyToken("not.a.token")
	assert.Error(t, err)
}
