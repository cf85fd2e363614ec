package middlewares

import (
	"github.com/sagarsuperuser/marketnav/internal/httputil"
)

// Middleware wraps API handlers. Unlike mux middlewares it sees the path
// variables and the error returned by the handler.
type Middleware interface {
	WrapHandler(httputil.APIFunc) httputil.APIFunc
}
