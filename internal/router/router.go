// Package router describes API route groups independently of the HTTP mux
// that serves them.
package router

import (
	"net/http"

	"github.com/sagarsuperuser/marketnav/internal/httputil"
)

// Router is a group of routes registered on the server together.
type Router interface {
	Routes() []Route
}

// Route is one API endpoint. Path is relative to the API prefix and the
// optional version segment.
type Route interface {
	Handler() httputil.APIFunc
	Method() string
	Path() string
}

// RouteWrapper decorates a route when it is created.
type RouteWrapper func(r Route) Route

type localRoute struct {
	method  string
	path    string
	handler httputil.APIFunc
}

func (l localRoute) Handler() httputil.APIFunc { return l.handler }
func (l localRoute) Method() string            { return l.method }
func (l localRoute) Path() string              { return l.path }

// NewRoute returns a route for method and path, applying opts in order.
func NewRoute(method, path string, handler httputil.APIFunc, opts ...RouteWrapper) Route {
	var r Route = localRoute{method, path, handler}
	for _, o := range opts {
		r = o(r)
	}
	return r
}

// NewGetRoute returns a GET route.
func NewGetRoute(path string, handler httputil.APIFunc, opts ...RouteWrapper) Route {
	return NewRoute(http.MethodGet, path, handler, opts...)
}

// NewPostRoute returns a POST route.
func NewPostRoute(path string, handler httputil.APIFunc, opts ...RouteWrapper) Route {
	return NewRoute(http.MethodPost, path, handler, opts...)
}

// WithHandlerWrapper returns a RouteWrapper that replaces the route handler
// with wrap(handler), keeping its method and path.
func WithHandlerWrapper(wrap func(httputil.APIFunc) httputil.APIFunc) RouteWrapper {
	return func(r Route) Route {
		return localRoute{method: r.Method(), path: r.Path(), handler: wrap(r.Handler())}
	}
}
