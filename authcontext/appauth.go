// authcontext/appauth.go
package authcontext

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// appJWTExpiry keeps the signed JWT under GitHub's 10 minute maximum.
	appJWTExpiry = 9 * time.Minute
	// appJWTClockDrift backdates iat to tolerate clock skew between the caller
	// and GitHub.
	appJWTClockDrift = 60 * time.Second
)

// AppAuth authenticates as a GitHub App by signing a short-lived RS256 JWT with the
// App's private key. The JWT carries iat/exp/iss claims; the App ID is the issuer.
// Signing happens per request; installation token exchange and refresh are outside
// this client.
type AppAuth struct {
	AppID      string
	PrivateKey []byte // PEM-encoded RSA private key

	// clock overrides time.Now in tests.
	clock func() time.Time
}

func (a AppAuth) AuthorizationHeader() (string, bool, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(a.PrivateKey)
	if err != nil {
		return "", false, fmt.Errorf("parsing app private key: %w", err)
	}

	now := time.Now
	if a.clock != nil {
		now = a.clock
	}

	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now().Add(-appJWTClockDrift)),
		ExpiresAt: jwt.NewNumericDate(now().Add(appJWTExpiry)),
		Issuer:    a.AppID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", false, fmt.Errorf("signing app JWT: %w", err)
	}

	return "Bearer " + signed, true, nil
}

func (AppAuth) Describe() string {
	return "github_app"
}
