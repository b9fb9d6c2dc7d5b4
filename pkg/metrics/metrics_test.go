package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}

func counterValue(mfs []*dto.MetricFamily, name, label, value string) float64 {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0
	}
	var total float64
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func histogramSamples(mfs []*dto.MetricFamily, name string) uint64 {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0
	}
	var samples uint64
	for _, metric := range mf.GetMetric() {
		samples += metric.GetHistogram().GetSampleCount()
	}
	return samples
}

func TestObserveRequestRecordsCounterAndHistogram(t *testing.T) {
	m := New()

	m.ObserveRequest("/api/brands", "GET", 200, 25*time.Millisecond)
	m.ObserveRequest("/api/brands", "GET", 200, 40*time.Millisecond)
	m.ObserveRequest("/api/brands", "POST", 403, 5*time.Millisecond)

	families, err := m.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if got := counterValue(families, "perfume_api_http_requests_total", "method", "GET"); got != 2 {
		t.Fatalf("expected 2 GET requests counted, got %v", got)
	}
	if got := counterValue(families, "perfume_api_http_requests_total", "status", "403"); got != 1 {
		t.Fatalf("expected 1 forbidden request counted, got %v", got)
	}
	if got := histogramSamples(families, "perfume_api_http_request_duration_seconds"); got != 3 {
		t.Fatalf("expected 3 duration samples, got %d", got)
	}
}
