package identity

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProject = "workout-logger-test"

func signRS256(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims(sub string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss": firebaseIssuerPrefix + testProject,
		"aud": testProject,
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

func TestFirebaseVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := newFirebaseVerifier(testProject, &oidc.StaticKeySet{
		PublicKeys: []crypto.PublicKey{&key.PublicKey},
	})

	tests := []struct {
		name    string
		token   func() string
		wantSub string
	}{
		{
			name:    "valid token",
			token:   func() string { return signRS256(t, key, validClaims("firebase-uid-1")) },
			wantSub: "firebase-uid-1",
		},
		{
			name: "wrong audience",
			token: func() string {
				c := validClaims("firebase-uid-1")
				c["aud"] = "another-project"
				return signRS256(t, key, c)
			},
		},
		{
			name: "wrong issuer",
			token: func() string {
				c := validClaims("firebase-uid-1")
				c["iss"] = "https://accounts.example.com"
				return signRS256(t, key, c)
			},
		},
		{
			name: "expired",
			token: func() string {
				c := validClaims("firebase-uid-1")
				c["exp"] = time.Now().Add(-time.Hour).Unix()
				return signRS256(t, key, c)
			},
		},
		{
			name:  "signed by unknown key",
			token: func() string { return signRS256(t, otherKey, validClaims("firebase-uid-1")) },
		},
		{
			name:  "garbage",
			token: func() string { return "not-a-jwt" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := verifier.Verify(context.Background(), tt.token())
			if tt.wantSub == "" {
				require.ErrorIs(t, err, ErrUnauthenticated)
				assert.Empty(t, sub)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, sub)
		})
	}
}
