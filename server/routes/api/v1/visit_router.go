package v1

import "github.com/sagarsuperuser/marketnav/internal/router"

type visitRouter struct {
	backend *APIV1Service
	routes  []router.Route
}

// NewVisitRouter initializes a router for the navigation visit log.
func NewVisitRouter(svc *APIV1Service) router.Router {
	r := &visitRouter{backend: svc}
	r.initRoutes()
	return r
}

func (vr *visitRouter) Routes() []router.Route {
	return vr.routes
}

func (vr *visitRouter) initRoutes() {
	vr.routes = []router.Route{
		router.NewGetRoute("/visits", vr.backend.ListVisits, router.WithHandlerWrapper(noStore)),
	}
}
