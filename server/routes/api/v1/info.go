package v1

import (
	"context"
	"net/http"

	"github.com/sagarsuperuser/marketnav/internal/httputil"
)

// GetInfo reports the negotiated API version and how the service is set up.
func (s *APIV1Service) GetInfo(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	return httputil.WriteRawJSON(rw, http.StatusOK, InfoResp{
		APIVersion: httputil.VersionFromContext(ctx),
		Mode:       s.Settings.Mode,
		Driver:     s.Settings.Driver,
		Routes:     s.Router.Table().Len(),
	})
}
