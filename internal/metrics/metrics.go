// Package metrics exposes run counters and classification timings to Prometheus.
package metrics

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const skippedLabel = "skipped"

var (
	classificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jozsa_classifications_total",
		Help: "Runs by classifier policy and classical verdict; balanced=skipped when brute force did not run",
	}, []string{"policy", "balanced"})

	classifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jozsa_classify_duration_seconds",
		Help:    "Wall-clock time of the brute-force classification loop",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 16),
	}, []string{"policy"})

	classifySkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jozsa_classify_skipped_total",
		Help: "Runs whose length exceeded the brute-force ceiling",
	})

	crossCheckMismatch = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jozsa_cross_check_mismatch_total",
		Help: "Runs where classical, quantum and generated verdicts disagreed",
	})
)

// ObserveClassification records one finished classification.
func ObserveClassification(policy string, balanced bool, elapsed time.Duration) {
	classificationsTotal.WithLabelValues(policy, strconv.FormatBool(balanced)).Inc()
	classifyDuration.WithLabelValues(policy).Observe(elapsed.Seconds())
}

// ObserveSkipped records a run whose brute force was skipped.
func ObserveSkipped(policy string) {
	classificationsTotal.WithLabelValues(policy, skippedLabel).Inc()
	classifySkipped.Inc()
}

// ObserveMismatch records a cross-check disagreement.
func ObserveMismatch() {
	crossCheckMismatch.Inc()
}

// Serve exposes /metrics on addr until ctx is done. It returns once the
// listener is bound; serving continues in the background.
func Serve(ctx context.Context, addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen metrics on %s", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		_ = srv.Serve(ln)
	}()
	return ln.Addr(), nil
}
