package miniflux

import (
	"encoding/base64"
	"net/http"
)

// Credentials selects the authentication header attached to every request.
// Implementations are TokenAuth, BasicAuth and NoAuth.
type Credentials interface {
	apply(h http.Header)
}

// TokenAuth authenticates with an API token via the X-Auth-Token header.
type TokenAuth struct {
	Token string
}

func (a TokenAuth) apply(h http.Header) {
	h.Set("X-Auth-Token", a.Token)
}

// BasicAuth authenticates with HTTP basic credentials.
type BasicAuth struct {
	Username string
	Password string
}

func (a BasicAuth) apply(h http.Header) {
	raw := a.Username + ":" + a.Password
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(raw)))
}

// NoAuth sends requests without credentials. The server answers 401.
type NoAuth struct{}

func (NoAuth) apply(http.Header) {}

// ClientConfig mirrors the connection settings accepted by the API:
// an endpoint plus either a token or a username/password pair.
type ClientConfig struct {
	Endpoint string
	Token    string
	Username string
	Password string
}

// Credentials resolves the auth variant. A non-empty token takes precedence.
func (cfg ClientConfig) Credentials() Credentials {
	switch {
	case cfg.Token != "":
		return TokenAuth{Token: cfg.Token}
	case cfg.Username != "" || cfg.Password != "":
		return BasicAuth{Username: cfg.Username, Password: cfg.Password}
	default:
		return NoAuth{}
	}
}
