package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shenikar/emergency_response_system/internal/models"
)

// Collector - счетчики жизненного цикла инцидентов и HTTP-метрики сервиса
type Collector struct {
	registry         *prometheus.Registry
	incidentsCreated prometheus.Counter
	transitionsTotal *prometheus.CounterVec
	feedSubscribers  prometheus.Gauge
	requestTotal     *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// NewCollector создает коллектор с собственным реестром
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	incidentsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ers",
		Subsystem: "incidents",
		Name:      "created_total",
		Help:      "Total number of dispatched incidents.",
	})

	transitionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ers",
		Subsystem: "incidents",
		Name:      "transitions_total",
		Help:      "Total number of incident status transitions.",
	}, []string{"to"})

	feedSubscribers := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ers",
		Subsystem: "feed",
		Name:      "subscribers",
		Help:      "Number of currently connected live feed subscribers.",
	})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ers",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of inbound HTTP requests.",
	}, []string{"method", "path", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ers",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution for inbound HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	collectors := []prometheus.Collector{
		incidentsCreated, transitionsTotal, feedSubscribers, requestTotal, requestDuration,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return &Collector{
		registry:         registry,
		incidentsCreated: incidentsCreated,
		transitionsTotal: transitionsTotal,
		feedSubscribers:  feedSubscribers,
		requestTotal:     requestTotal,
		requestDuration:  requestDuration,
	}, nil
}

// IncidentCreated учитывает созданный инцидент. Нулевой коллектор допустим в тестах.
func (c *Collector) IncidentCreated() {
	if c == nil {
		return
	}
	c.incidentsCreated.Inc()
}

// StatusTransition учитывает успешный переход статуса
func (c *Collector) StatusTransition(to models.IncidentStatus) {
	if c == nil {
		return
	}
	c.transitionsTotal.WithLabelValues(string(to)).Inc()
}

// FeedSubscribers выставляет текущее число подписчиков живой ленты
func (c *Collector) FeedSubscribers(n int) {
	if c == nil {
		return
	}
	c.feedSubscribers.Set(float64(n))
}

// Handler возвращает HTTP-хэндлер для маршрута /metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware собирает HTTP-метрики по каждому запросу
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if c == nil {
			return
		}

		status := strconv.Itoa(ctx.Writer.Status())
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.requestTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		c.requestDuration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
