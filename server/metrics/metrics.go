// Package metrics holds the Prometheus collectors of the navigation service.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sagarsuperuser/marketnav/navigation"
)

// Resolution kinds used as the "kind" label.
const (
	KindPath    = "path"
	KindName    = "name"
	KindPathFor = "path_for"
)

// Metrics collects resolution outcomes.
type Metrics struct {
	resolutions *prometheus.CounterVec
	visits      *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marketnav",
			Name:      "resolutions_total",
			Help:      "Total number of route resolutions by lookup kind and result",
		}, []string{"kind", "result"}),

		visits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marketnav",
			Name:      "visits_total",
			Help:      "Total number of recorded navigations by route role",
		}, []string{"role"}),
	}
}

// ObserveResolution counts a lookup of the given kind. Not-found errors count
// as "miss", any other error as "error".
func (m *Metrics) ObserveResolution(kind string, err error) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(kind, result(err)).Inc()
}

// ObserveVisit counts a recorded navigation.
func (m *Metrics) ObserveVisit(role navigation.Role) {
	if m == nil {
		return
	}
	m.visits.WithLabelValues(role.String()).Inc()
}

func result(err error) string {
	var notFound *navigation.NotFoundError
	switch {
	case err == nil:
		return "hit"
	case errors.As(err, &notFound):
		return "miss"
	default:
		return "error"
	}
}
