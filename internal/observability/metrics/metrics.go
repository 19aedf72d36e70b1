package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                        sync.Once
	metricsRouter               *chi.Mux
	escrowOpDurationHistogram   *prometheus.HistogramVec
	pollerDurationHistogram     *prometheus.HistogramVec
	queueSendErrorCounter       prometheus.Counter
	expiredLocksGauge           prometheus.Gauge
	rewardsRedeemedCounter      prometheus.Counter
	tokensBurnedCounter         prometheus.Counter
	dbLatency                   *prometheus.HistogramVec
	apiRequestDurationHistogram *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5}

	escrowOpDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "escrow_operation_duration_seconds",
			Help:    "Histogram of escrow lifecycle operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller run durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"name", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	expiredLocksGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "expired_escrow_locks",
			Help: "Number of expired, still unreclaimed escrow locks seen by the last expiry check",
		},
	)

	rewardsRedeemedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rewards_redeemed_total",
			Help: "Total reward units paid out by redemptions",
		},
	)

	tokensBurnedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tokens_burned_total",
			Help: "Total main-token units burned by redemptions",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	apiRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Histogram of API request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"path", "status"},
	)

	prometheus.MustRegister(
		escrowOpDurationHistogram,
		pollerDurationHistogram,
		queueSendErrorCounter,
		expiredLocksGauge,
		rewardsRedeemedCounter,
		tokensBurnedCounter,
		dbLatency,
		apiRequestDurationHistogram,
	)
}

func RecordEscrowOpDuration(d time.Duration, operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	escrowOpDurationHistogram.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

func RecordPollerDuration(d time.Duration, name string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	pollerDurationHistogram.WithLabelValues(name, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}

func RecordExpiredLocksCount(count int) {
	expiredLocksGauge.Set(float64(count))
}

func RecordRedemption(tokensBurned, rewardsRedeemed uint64) {
	tokensBurnedCounter.Add(float64(tokensBurned))
	rewardsRedeemedCounter.Add(float64(rewardsRedeemed))
}

// StartAPIRequestDurationTimer starts a timer to measure API request duration.
func StartAPIRequestDurationTimer(path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		apiRequestDurationHistogram.WithLabelValues(
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}
