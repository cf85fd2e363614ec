package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/sagarsuperuser/marketnav/internal/httputil"
	"github.com/sagarsuperuser/marketnav/navigation"
	"github.com/sagarsuperuser/marketnav/store"
)

type RouteResp struct {
	Path string            `json:"path"`
	Name string            `json:"name"`
	View navigation.ViewID `json:"view"`
	Role navigation.Role   `json:"role"`

	// Aliases and LastVisit are only set on single-route lookups. Aliases
	// names the other routes mounting the same view.
	Aliases   []string   `json:"aliases,omitempty"`
	LastVisit *VisitResp `json:"last_visit,omitempty"`
}

func newRouteResp(def navigation.RouteDefinition) *RouteResp {
	return &RouteResp{
		Path: def.Path,
		Name: def.Name,
		View: def.View,
		Role: def.Role,
	}
}

type RoutePathResp struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type InfoResp struct {
	APIVersion string `json:"api_version"`
	Mode       string `json:"mode"`
	Driver     string `json:"driver"`
	Routes     int    `json:"routes"`
}

type NavigateReq struct {
	// Target is a path when it starts with "/", a route name otherwise.
	Target string `json:"target"`
}

type NavigateResp struct {
	Route   *RouteResp `json:"route"`
	VisitID string     `json:"visit_id"`
}

type VisitResp struct {
	ID        string            `json:"id"`
	RouteName string            `json:"route_name"`
	Path      string            `json:"path"`
	View      navigation.ViewID `json:"view"`
	Role      navigation.Role   `json:"role"`
	CreatedAt time.Time         `json:"created_at"`
}

func newVisitResp(v *store.Visit) *VisitResp {
	if v == nil {
		return nil
	}
	return &VisitResp{
		ID:        v.ID,
		RouteName: v.RouteName,
		Path:      v.Path,
		View:      v.View,
		Role:      v.Role,
		CreatedAt: v.CreatedAt,
	}
}

// noStore marks responses that reflect the visit log as uncacheable.
func noStore(next httputil.APIFunc) httputil.APIFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
		w.Header().Set("Cache-Control", "no-store")
		return next(ctx, w, r, vars)
	}
}
