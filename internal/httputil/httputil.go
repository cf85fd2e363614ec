// Package httputil holds the handler signature and JSON helpers shared by the
// API routers.
package httputil

import (
	"context"
	"net/http"
)

// APIFunc is the signature of an API endpoint. vars carries the mux path
// variables of the matched route, including "version" on versioned paths.
type APIFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error

type apiVersionKey struct{}

// WithVersion returns a copy of ctx carrying the negotiated API version.
func WithVersion(ctx context.Context, version string) context.Context {
	return context.WithValue(ctx, apiVersionKey{}, version)
}

// VersionFromContext returns the API version stored by WithVersion, or "".
func VersionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(apiVersionKey{}).(string)
	return v
}
