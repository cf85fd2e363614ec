package v1

import "github.com/sagarsuperuser/marketnav/internal/router"

type navigationRouter struct {
	backend *APIV1Service
	routes  []router.Route
}

// NewNavigationRouter initializes a router for route table lookups and
// navigation.
func NewNavigationRouter(svc *APIV1Service) router.Router {
	r := &navigationRouter{
		backend: svc,
	}
	r.initRoutes()
	return r
}

func (nr *navigationRouter) Routes() []router.Route {
	return nr.routes
}

func (nr *navigationRouter) initRoutes() {
	nr.routes = []router.Route{
		router.NewGetRoute("/info", nr.backend.GetInfo),
		router.NewGetRoute("/routes", nr.backend.ListRoutes),
		router.NewGetRoute("/routes/{name}", nr.backend.GetRoute),
		router.NewGetRoute("/routes/{name}/path", nr.backend.GetRoutePath),
		router.NewGetRoute("/resolve", nr.backend.ResolvePath),
		router.NewPostRoute("/navigate", nr.backend.Navigate, router.WithHandlerWrapper(noStore)),
	}
}
