package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sagarsuperuser/marketnav/errdefs"
	"github.com/sagarsuperuser/marketnav/internal/httputil"
	"github.com/sagarsuperuser/marketnav/navigation"
	"github.com/sagarsuperuser/marketnav/store"
)

// ListVisits returns recent navigations, newest first. Supports ?route=,
// ?role= and ?limit=.
func (s *APIV1Service) ListVisits(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	q := req.URL.Query()
	find := &store.FindVisit{}

	if v := q.Get("route"); v != "" {
		find.RouteName = &v
	}
	if v := q.Get("role"); v != "" {
		role, err := navigation.ParseRole(v)
		if err != nil {
			return errdefs.InvalidParameter(err)
		}
		find.Role = &role
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return errdefs.InvalidParameter(fmt.Errorf("invalid limit %q", v))
		}
		find.Limit = &limit
	}

	list, err := s.Store.ListVisits(ctx, find)
	if err != nil {
		return errdefs.System(fmt.Errorf("failed to list visits: %w", err))
	}

	resp := make([]*VisitResp, 0, len(list))
	for _, v := range list {
		resp = append(resp, newVisitResp(v))
	}
	return httputil.WriteRawJSON(rw, http.StatusOK, resp)
}
