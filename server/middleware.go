package server

import (
	"github.com/sagarsuperuser/marketnav/internal/httputil"
)

// handlerWithGlobalMiddlewares wraps handler with the APIFunc middlewares in
// registration order: the first registered middleware runs first.
func (s *Server) handlerWithGlobalMiddlewares(handler httputil.APIFunc) httputil.APIFunc {
	next := handler
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		next = s.middlewares[i].WrapHandler(next)
	}
	return next
}
