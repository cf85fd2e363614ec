package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/sagarsuperuser/marketnav/navigation"
)

func TestObserveResolution(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveResolution(KindPath, nil)
	m.ObserveResolution(KindPath, nil)
	m.ObserveResolution(KindPath, &navigation.NotFoundError{Path: "/nope"})
	m.ObserveResolution(KindName, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.resolutions.WithLabelValues(KindPath, "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues(KindPath, "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues(KindName, "error")))
}

func TestObserveVisit(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveVisit(navigation.RoleFarmer)
	m.ObserveVisit("")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.visits.WithLabelValues("farmer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.visits.WithLabelValues("none")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveResolution(KindPath, nil)
		m.ObserveVisit(navigation.RoleNone)
	})
}
