package api

import (
	"crypto/subtle"
)

const (
	apiKeyHeader = "X-API-Key"
	apiKeyQuery  = "api"
)

// AuthGate checks the shared API key of a request.
type AuthGate struct {
	key []byte
}

func NewAuthGate(key string) *AuthGate {
	return &AuthGate{
		key: []byte(key),
	}
}

// Check returns an Unauthorized error unless the request carries the configured
// key in the X-API-Key header or, failing that, in the "api" query parameter.
func (g *AuthGate) Check(req *RequestContext) error {
	token := req.Header.Get(apiKeyHeader)
	if token == "" {
		token = req.Query.Get(apiKeyQuery)
	}

	if token == "" || len(g.key) == 0 {
		return Unauthorized(msgInvalidAPIKey)
	}

	if subtle.ConstantTimeCompare([]byte(token), g.key) != 1 {
		return Unauthorized(msgInvalidAPIKey)
	}

	return nil
}
