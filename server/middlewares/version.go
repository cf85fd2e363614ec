package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sagarsuperuser/marketnav/errdefs"
	"github.com/sagarsuperuser/marketnav/internal/httputil"
	"github.com/sagarsuperuser/marketnav/internal/versions"
)

// VersionMiddleware negotiates the API version of a request. Versioned paths
// (/api/v{version}/...) must fall within [minimum, current]; unversioned
// paths get the current version.
type VersionMiddleware struct {
	server  string
	current string
	minimum string
}

func NewVersionMiddleware(serverVersion, current, minimum string) (*VersionMiddleware, error) {
	if current == "" || minimum == "" {
		return nil, fmt.Errorf("current and minimum API versions must be set")
	}
	if versions.LessThan(current, minimum) {
		return nil, fmt.Errorf("current API version (%s) must be >= minimum API version (%s)", current, minimum)
	}
	return &VersionMiddleware{
		server:  serverVersion,
		current: current,
		minimum: minimum,
	}, nil
}

func (v *VersionMiddleware) negotiate(requested string) (string, error) {
	switch {
	case requested == "":
		return v.current, nil
	case versions.LessThan(requested, v.minimum):
		return "", errdefs.InvalidParameter(fmt.Errorf(
			"API version %s is too old, the minimum supported version is %s", requested, v.minimum))
	case versions.GreaterThan(requested, v.current):
		return "", errdefs.InvalidParameter(fmt.Errorf(
			"API version %s is too new, the newest supported version is %s", requested, v.current))
	}
	return requested, nil
}

// WrapHandler implements Middleware.
func (v *VersionMiddleware) WrapHandler(next httputil.APIFunc) httputil.APIFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
		w.Header().Set("Server", "marketnav/"+v.server)
		w.Header().Set("Api-Version", v.current)
		w.Header().Set("Api-Min-Version", v.minimum)

		apiVersion, err := v.negotiate(vars["version"])
		if err != nil {
			return err
		}
		return next(httputil.WithVersion(ctx, apiVersion), w, r, vars)
	}
}
