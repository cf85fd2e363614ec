package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/sagarsuperuser/marketnav/errdefs"
	"github.com/sagarsuperuser/marketnav/internal/httputil"
	"github.com/sagarsuperuser/marketnav/navigation"
	"github.com/sagarsuperuser/marketnav/server/metrics"
)

// ListRoutes returns the route table in declaration order, optionally
// filtered by ?role=.
func (s *APIV1Service) ListRoutes(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	routes := s.Router.Table().Routes()
	if raw := req.URL.Query().Get("role"); raw != "" {
		role, err := navigation.ParseRole(raw)
		if err != nil {
			return errdefs.InvalidParameter(err)
		}
		routes = s.Router.Table().ByRole(role)
	}

	resp := make([]*RouteResp, 0, len(routes))
	for _, def := range routes {
		resp = append(resp, newRouteResp(def))
	}
	return httputil.WriteRawJSON(rw, http.StatusOK, resp)
}

// ResolvePath resolves ?path= to its route.
func (s *APIV1Service) ResolvePath(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	path := req.URL.Query().Get("path")
	if path == "" {
		return errdefs.InvalidParameter(errors.New("missing path"))
	}

	def, err := s.Router.Match(path)
	s.Metrics.ObserveResolution(metrics.KindPath, err)
	if err != nil {
		return err
	}
	return httputil.WriteRawJSON(rw, http.StatusOK, newRouteResp(def))
}

// GetRoute resolves a route by name. The response carries the latest visit
// to the route recorded by this process, if any.
func (s *APIV1Service) GetRoute(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	def, err := s.Router.MatchName(vars["name"])
	s.Metrics.ObserveResolution(metrics.KindName, err)
	if err != nil {
		return err
	}

	resp := newRouteResp(def)
	for _, alias := range s.Router.Table().Aliases(def.View) {
		if alias.Name != def.Name {
			resp.Aliases = append(resp.Aliases, alias.Name)
		}
	}
	if visit, ok := s.Store.LastVisit(def.Name); ok {
		resp.LastVisit = newVisitResp(visit)
	}
	return httputil.WriteRawJSON(rw, http.StatusOK, resp)
}

// GetRoutePath returns the canonical path of a named route, for link
// generation.
func (s *APIV1Service) GetRoutePath(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	name := vars["name"]
	path, err := s.Router.PathFor(name)
	s.Metrics.ObserveResolution(metrics.KindPathFor, err)
	if err != nil {
		return err
	}
	return httputil.WriteRawJSON(rw, http.StatusOK, RoutePathResp{
		Name: name,
		Path: path,
	})
}

// Navigate resolves a navigation target and records the visit. A missing
// route is reported to the caller, who picks the fallback view.
func (s *APIV1Service) Navigate(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	navReq := NavigateReq{}
	if err := httputil.ReadJSON(req, &navReq); err != nil {
		return errdefs.InvalidParameter(err)
	}
	if navReq.Target == "" {
		return errdefs.InvalidParameter(errors.New("missing target"))
	}

	kind := metrics.KindName
	if strings.HasPrefix(navReq.Target, "/") {
		kind = metrics.KindPath
	}
	def, err := s.Router.Resolve(navReq.Target)
	s.Metrics.ObserveResolution(kind, err)
	if err != nil {
		return err
	}

	visit, err := s.Store.RecordVisit(ctx, def)
	if err != nil {
		return errdefs.System(fmt.Errorf("failed to record visit: %w", err))
	}
	s.Metrics.ObserveVisit(def.Role)

	hlog.FromRequest(req).Debug().
		Str("target", navReq.Target).
		Str("route", def.Name).
		Str("view", string(def.View)).
		Msg("navigation resolved")

	return httputil.WriteRawJSON(rw, http.StatusOK, NavigateResp{
		Route:   newRouteResp(def),
		VisitID: visit.ID,
	})
}
