// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shopventory/internal/platform/sec"
)

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

/*
TestTokenService_RoundTrip signs a token and verifies it with the same key.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := sec.NewSigningTokenService(newKey(t), "shopventory.app")

	token, err := service.GenerateAccessToken("user-1", time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

/*
TestTokenService_Rejects covers expiry, wrong issuer, and a foreign signing key.
*/
func TestTokenService_Rejects(t *testing.T) {
	key := newKey(t)
	verifier := sec.NewSigningTokenService(key, "shopventory.app")

	expired, err := verifier.GenerateAccessToken("user-1", -time.Minute)
	require.NoError(t, err)

	otherIssuer, err := sec.NewSigningTokenService(key, "someone.else").GenerateAccessToken("user-1", time.Minute)
	require.NoError(t, err)

	foreign, err := sec.NewSigningTokenService(newKey(t), "shopventory.app").GenerateAccessToken("user-1", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong_issuer", otherIssuer},
		{"foreign_key", foreign},
		{"garbage", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

/*
TestTokenService_SubjectFallback accepts a provider token that only sets "sub".
*/
func TestTokenService_SubjectFallback(t *testing.T) {
	key := newKey(t)
	claims := jwt.RegisteredClaims{
		Subject:   "firebase-uid-9",
		Issuer:    "shopventory.app",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	verified, err := sec.NewSigningTokenService(key, "shopventory.app").VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-9", verified.UserID)
}

/*
TestNewTokenService_FromPEM loads a public key file and verifies a token with it.
*/
func TestNewTokenService_FromPEM(t *testing.T) {
	key := newKey(t)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwt.pub")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o600))

	verifier, err := sec.NewTokenService(path, "shopventory.app")
	require.NoError(t, err)

	token, err := sec.NewSigningTokenService(key, "shopventory.app").GenerateAccessToken("user-7", time.Minute)
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", claims.UserID)

	_, err = verifier.GenerateAccessToken("user-7", time.Minute)
	assert.Error(t, err)

	_, err = sec.NewTokenService(filepath.Join(t.TempDir(), "missing.pub"), "shopventory.app")
	assert.Error(t, err)
}
