// authcontext/authcontext.go
// This package models the credential modes the client can authenticate with and
// derives the Authorization header for each of them.
package authcontext

import (
	"encoding/base64"
)

// AuthContext is the credential mode and data needed to derive the Authorization
// header for a single request. Values are immutable once constructed and safe for
// concurrent use; the client never mutates them.
type AuthContext interface {
	// AuthorizationHeader returns the Authorization header value for one request.
	// ok is false when the mode sends no header (anonymous access). A non-nil
	// error means the credentials cannot produce a header and no network request
	// should be attempted.
	AuthorizationHeader() (value string, ok bool, err error)

	// Describe names the credential mode for logging. It never exposes secret
	// material.
	Describe() string
}

// Anonymous performs unauthenticated requests.
type Anonymous struct{}

func (Anonymous) AuthorizationHeader() (string, bool, error) {
	return "", false, nil
}

func (Anonymous) Describe() string {
	return "anonymous"
}

// PersonalToken authenticates with a personal access token.
type PersonalToken struct {
	Token string
}

func (p PersonalToken) AuthorizationHeader() (string, bool, error) {
	return "Bearer " + p.Token, true, nil
}

func (PersonalToken) Describe() string {
	return "personal_access_token"
}

// BasicAuth authenticates with a username/password pair.
type BasicAuth struct {
	Username string
	Password string
}

func (b BasicAuth) AuthorizationHeader() (string, bool, error) {
	credentials := base64.StdEncoding.EncodeToString([]byte(b.Username + ":" + b.Password))
	return "Basic " + credentials, true, nil
}

func (BasicAuth) Describe() string {
	return "basic"
}

// OAuthToken authenticates with an OAuth access token. The derived header is
// identical to PersonalToken; the mode is kept distinct so call sites state which
// kind of credential they are holding.
type OAuthToken struct {
	Token string
}

func (o OAuthToken) AuthorizationHeader() (string, bool, error) {
	return "Bearer " + o.Token, true, nil
}

func (OAuthToken) Describe() string {
	return "oauth"
}
