package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the request and upload collectors of one server instance.
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	MaterialsUploaded prometheus.Counter
	UploadBytes       prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requests_total",
				Help: "Total number of requests",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "request_duration_seconds",
				Help:    "Request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		MaterialsUploaded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "materials_uploaded_total",
				Help: "Total number of service materials created by upload",
			},
		),
		UploadBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "material_upload_bytes_total",
				Help: "Total size of stored upload files in bytes",
			},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.MaterialsUploaded, m.UploadBytes)
	return m
}

// RecordRequest records one handled request of the given operation.
func (m *Metrics) RecordRequest(operation string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) ObserveUpload(size int64) {
	m.MaterialsUploaded.Inc()
	m.UploadBytes.Add(float64(size))
}

func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		operation := "unknown"
		if op := ctx.Operation(); op != nil {
			operation = op.OperationID
		}
		m.RecordRequest(operation, ctx.Status(), time.Since(start))
	}
}
