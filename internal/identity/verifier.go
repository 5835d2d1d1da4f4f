// Package identity turns bearer credentials into verified subject ids.
package identity

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned for any credential that cannot be
// verified. Callers must not distinguish between causes in responses.
var ErrUnauthenticated = errors.New("unauthenticated")

// Verifier validates a raw bearer token and returns the subject id it was
// issued for.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
