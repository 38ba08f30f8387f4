package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordRequest("service-materials-list", 200, 10*time.Millisecond)
	m.RecordRequest("service-materials-list", 200, 20*time.Millisecond)
	m.RecordRequest("service-materials-get", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("service-materials-list", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("service-materials-get", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_ObserveUpload(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveUpload(1024)
	m.ObserveUpload(2048)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MaterialsUploaded))
	assert.Equal(t, 3072.0, testutil.ToFloat64(m.UploadBytes))
}

func TestNew_RegistersOnInjectedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) }, "second registration on the same registry must conflict")
	assert.NotPanics(t, func() { New(prometheus.NewRegistry()) })
}
