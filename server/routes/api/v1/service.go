package v1

import (
	"github.com/sagarsuperuser/marketnav/navigation"
	"github.com/sagarsuperuser/marketnav/server/metrics"
	"github.com/sagarsuperuser/marketnav/server/settings"
	"github.com/sagarsuperuser/marketnav/store"
)

// APIV1Service holds shared dependencies for v1 routes.
type APIV1Service struct {
	Settings *settings.Settings
	Store    *store.Store
	Router   *navigation.Router
	Metrics  *metrics.Metrics
}

func NewAPIV1Service(s *settings.Settings, store *store.Store, router *navigation.Router, m *metrics.Metrics) *APIV1Service {
	return &APIV1Service{
		Settings: s,
		Store:    store,
		Router:   router,
		Metrics:  m,
	}
}
