package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const maxBodySize = 1 << 20

// RequestContext is the part of an HTTP request the router and handlers see.
type RequestContext struct {
	Method string
	Path   string // Escaped request path, query excluded.
	Header http.Header
	Query  url.Values
	Body   []byte
}

func NewRequestContext(r *http.Request) (*RequestContext, error) {
	var body []byte

	if r.Body != nil {
		b, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}

		body = b
	}

	return &RequestContext{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Header: r.Header,
		Query:  r.URL.Query(),
		Body:   body,
	}, nil
}
