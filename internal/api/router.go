package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"runtime/debug"
	"strings"
	"time"

	"github.com/antoniocesar16/addon-api-mkauth/pkg/logger"
)

// InfoPath is the only route served without an API key.
const InfoPath = "/api/v1/info"

// HandlerFunc serves one route. params holds the captured path segments in
// the order their placeholders appear in the pattern.
type HandlerFunc func(ctx context.Context, req *RequestContext, params []string) (Reply, error)

type route struct {
	method  string
	pattern string
	re      *regexp.Regexp
	handler HandlerFunc
}

// Router matches requests against routes in registration order. The first
// route whose method and pattern match wins, so literal routes must be
// registered before the patterns that would also match them.
type Router struct {
	routes   []route
	auth     *AuthGate
	basePath string
	now      func() time.Time
}

func NewRouter(auth *AuthGate, basePath string, loc *time.Location) *Router {
	return &Router{
		auth:     auth,
		basePath: strings.TrimRight(basePath, "/"),
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

var placeholder = regexp.MustCompile(`\{[^/{}]+\}`)

// Handle appends a route. A pattern is literal text with {name} placeholders,
// each matching one non-empty path segment. It panics on a malformed pattern.
func (rt *Router) Handle(method, pattern string, h HandlerFunc) {
	rt.routes = append(rt.routes, route{
		method:  method,
		pattern: pattern,
		re:      compilePattern(pattern),
		handler: h,
	})
}

func compilePattern(pattern string) *regexp.Regexp {
	var b strings.Builder

	b.WriteString("^")

	last := 0
	for _, loc := range placeholder.FindAllStringIndex(pattern, -1) {
		b.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		b.WriteString("([^/]+)")
		last = loc[1]
	}

	b.WriteString(regexp.QuoteMeta(pattern[last:]))
	b.WriteString("$")

	return regexp.MustCompile(b.String())
}

// Dispatch produces exactly one response for the request.
func (rt *Router) Dispatch(ctx context.Context, req *RequestContext) Response {
	if req.Method == http.MethodOptions {
		return Response{Status: http.StatusOK}
	}

	path := rt.normalize(req.Path)

	if path != InfoPath {
		err := rt.auth.Check(req)
		if err != nil {
			slog.WarnContext(ctx, "unauthorized request", "method", req.Method, "path", path)
			return rt.errorResponse(ctx, err)
		}
	}

	for _, r := range rt.routes {
		if r.method != req.Method {
			continue
		}

		m := r.re.FindStringSubmatch(path)
		if m == nil {
			continue
		}

		params, ok := unescapeParams(m[1:])
		if !ok {
			continue
		}

		ctx = logger.WithRoute(ctx, r.method+" "+r.pattern)

		reply, err := rt.call(ctx, r.handler, req, params)
		if err != nil {
			return rt.errorResponse(ctx, err)
		}

		return rt.render(ctx, reply.Status, reply.Data)
	}

	return rt.errorResponse(ctx, NotFound(msgRouteNotFound))
}

func (rt *Router) call(ctx context.Context, h HandlerFunc, req *RequestContext, params []string) (reply Reply, err error) {
	defer func() {
		if p := recover(); p != nil {
			slog.ErrorContext(ctx, "recovered from panic", "error", p, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	return h(ctx, req, params)
}

// unescapeParams decodes captured segments. Matching runs on the escaped path
// so an encoded slash stays inside its segment.
func unescapeParams(raw []string) ([]string, bool) {
	params := make([]string, len(raw))

	for i, p := range raw {
		v, err := url.PathUnescape(p)
		if err != nil {
			return nil, false
		}

		params[i] = v
	}

	return params, true
}

// normalize strips the base path and trailing slashes. The result always starts with "/".
func (rt *Router) normalize(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	if rt.basePath != "" && (path == rt.basePath || strings.HasPrefix(path, rt.basePath+"/")) {
		path = path[len(rt.basePath):]
	}

	path = strings.TrimRight(path, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return path
}

func (rt *Router) errorResponse(ctx context.Context, err error) Response {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		slog.ErrorContext(ctx, "api error", "error", err.Error())
		apiErr = internalError()
	}

	return rt.render(ctx, apiErr.Status, errorData(apiErr))
}

func (rt *Router) render(ctx context.Context, status int, data any) Response {
	body, err := encodeEnvelope(status, data, rt.now())
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)

		status = http.StatusInternalServerError
		body, _ = encodeEnvelope(status, errorData(internalError()), rt.now())
	}

	return Response{Status: status, Body: body}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := NewRequestContext(r)
	if err != nil {
		rt.errorResponse(ctx, err).Write(ctx, w)
		return
	}

	rt.Dispatch(ctx, req).Write(ctx, w)
}
