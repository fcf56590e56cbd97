package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJWTToken(t *testing.T) {
	secret := "test-secret"
	claims := JWTClaims{
		UserID: "user-1",
		Email:  "user@example.com",
		Kind:   Member,
		Scope:  "authentication",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	parsed, err := ValidateJWTToken(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.Equal(t, "authentication", parsed.Scope)
}

func TestValidateJWTTokenWrongSecret(t *testing.T) {
	claims := JWTClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("right-secret"))
	require.NoError(t, err)

	_, err = ValidateJWTToken(signed, "wrong-secret")
	assert.Error(t, err)
}

func TestValidateJWTTokenExpired(t *testing.T) {
	claims := JWTClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ValidateJWTToken(signed, "secret")
	assert.Error(t, err)
}
