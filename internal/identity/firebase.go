package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coreos/go-oidc/v3/oidc"
)

const (
	firebaseIssuerPrefix = "https://securetoken.google.com/"
	firebaseJWKSURL      = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
)

// FirebaseVerifier checks Firebase Auth ID tokens. They are standard OIDC
// ID tokens: RS256, issuer securetoken.google.com/<project>, audience
// <project>, signed by keys published at the securetoken JWKS endpoint.
type FirebaseVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewFirebaseVerifier builds a verifier backed by Google's remote key set.
// Keys are fetched lazily on first use and cached by go-oidc.
func NewFirebaseVerifier(ctx context.Context, projectID string) *FirebaseVerifier {
	return newFirebaseVerifier(projectID, oidc.NewRemoteKeySet(ctx, firebaseJWKSURL))
}

func newFirebaseVerifier(projectID string, keySet oidc.KeySet) *FirebaseVerifier {
	return &FirebaseVerifier{
		verifier: oidc.NewVerifier(firebaseIssuerPrefix+projectID, keySet, &oidc.Config{
			ClientID: projectID,
		}),
	}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	idToken, err := v.verifier.Verify(ctx, token)
	if err != nil {
		slog.Debug("firebase token rejected", "error", err)
		return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if idToken.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrUnauthenticated)
	}
	return idToken.Subject, nil
}
