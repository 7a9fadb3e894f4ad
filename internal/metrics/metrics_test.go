package metrics

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveClassification(t *testing.T) {
	before := testutil.ToFloat64(classificationsTotal.WithLabelValues("exhaustive", "true"))
	ObserveClassification("exhaustive", true, 3*time.Millisecond)
	after := testutil.ToFloat64(classificationsTotal.WithLabelValues("exhaustive", "true"))
	if after-before != 1 {
		t.Fatalf("classifications_total delta=%v", after-before)
	}
}

func TestObserveCounters(t *testing.T) {
	skipped := testutil.ToFloat64(classifySkipped)
	skippedRuns := testutil.ToFloat64(classificationsTotal.WithLabelValues("majority", skippedLabel))
	mismatch := testutil.ToFloat64(crossCheckMismatch)
	ObserveSkipped("majority")
	ObserveMismatch()
	if testutil.ToFloat64(classifySkipped)-skipped != 1 {
		t.Fatalf("skipped counter not incremented")
	}
	if testutil.ToFloat64(classificationsTotal.WithLabelValues("majority", skippedLabel))-skippedRuns != 1 {
		t.Fatalf("skipped run missing from classifications_total")
	}
	if testutil.ToFloat64(crossCheckMismatch)-mismatch != 1 {
		t.Fatalf("mismatch counter not incremented")
	}
}

func TestServeExposesMetrics(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ObserveSkipped("exhaustive")
	addr, err := Serve(ctx, "127.0.0.1:0")
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	resp, err := http.Get("http://" + addr.String() + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "jozsa_classify_skipped_total") ||
		!strings.Contains(string(body), `jozsa_classifications_total{balanced="skipped",policy="exhaustive"}`) {
		t.Fatalf("metrics body missing counter:\n%s", body)
	}
}
