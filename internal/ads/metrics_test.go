package ads

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestMetrics(t *testing.T) {
	var gotPayload metricsPayload
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/metrics" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"citation stats": {
				"total number of citations": 150,
				"total number of refereed citations": 120,
				"average number of citations": 15.5,
				"median number of citations": 8,
				"total number of reads": 3000
			},
			"indicators": {"h": 10, "m": 0.83, "i10": 7, "g": 12}
		}`))
	}))

	result, err := client.Metrics(context.Background(), []string{"2019ApJ...878...98S", "  ", "2020MNRAS.495.1321D"})
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}

	// Blank entries must not reach the backend
	if len(gotPayload.Bibcodes) != 2 {
		t.Errorf("payload bibcodes = %v, want 2 entries", gotPayload.Bibcodes)
	}

	if result.CitationStats == nil {
		t.Fatal("CitationStats is nil")
	}
	if result.CitationStats.TotalCitations != 150 {
		t.Errorf("TotalCitations = %d, want 150", result.CitationStats.TotalCitations)
	}
	if result.CitationStats.AverageCitations != 15.5 {
		t.Errorf("AverageCitations = %v, want 15.5", result.CitationStats.AverageCitations)
	}
	if result.Indicators == nil || result.Indicators.H != 10 {
		t.Errorf("Indicators = %+v, want h=10", result.Indicators)
	}
}

func TestMetrics_FractionalIndicators(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"indicators": {"h": 10, "m": 0.83, "tori": 24.6, "riq": 110.4}}`))
	}))

	result, err := client.Metrics(context.Background(), []string{"2019ApJ...878...98S"})
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}
	if result.Indicators == nil {
		t.Fatal("Indicators is nil")
	}
	if result.Indicators.Riq != 110.4 {
		t.Errorf("Riq = %v, want 110.4", result.Indicators.Riq)
	}
	if result.Indicators.Tori != 24.6 {
		t.Errorf("Tori = %v, want 24.6", result.Indicators.Tori)
	}
}

func TestMetrics_NoStats(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	result, err := client.Metrics(context.Background(), []string{"2019ApJ...878...98S"})
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}
	if result.CitationStats != nil || result.Indicators != nil {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestAuthorMetrics(t *testing.T) {
	searchCalls := 0
	metricsCalls := 0
	var gotPayload metricsPayload

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/query":
			searchCalls++
			if got := r.URL.Query().Get("q"); got != `author:"Coelho, P." year:2020-2025` {
				t.Errorf("q = %q", got)
			}
			if got := r.URL.Query().Get("rows"); got != "2000" {
				t.Errorf("rows = %q, want 2000", got)
			}
			_, _ = w.Write([]byte(`{"response": {"numFound": 2, "docs": [
				{"bibcode": "2021A&A...650A..80C"}, {"bibcode": "2022MNRAS.514.2298C"}
			]}}`))
		case "/metrics":
			metricsCalls++
			if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
				t.Fatalf("failed to decode payload: %v", err)
			}
			_, _ = w.Write([]byte(`{"citation stats": {"total number of citations": 40}, "indicators": {"h": 2}}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))

	result, count, err := client.AuthorMetrics(context.Background(), GetAuthorMetricsArgs{
		Author: "Coelho, P.",
		Years:  "2020-2025",
	})
	if err != nil {
		t.Fatalf("AuthorMetrics failed: %v", err)
	}

	if searchCalls != 1 || metricsCalls != 1 {
		t.Errorf("calls = %d search, %d metrics; want 1 each", searchCalls, metricsCalls)
	}
	if count != 2 {
		t.Errorf("paper count = %d, want 2", count)
	}
	if len(gotPayload.Bibcodes) != 2 || gotPayload.Bibcodes[0] != "2021A&A...650A..80C" {
		t.Errorf("metrics payload = %v", gotPayload.Bibcodes)
	}
	if result.CitationStats == nil || result.CitationStats.TotalCitations != 40 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestAuthorMetrics_NoPapersShortCircuit(t *testing.T) {
	metricsCalls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/query":
			_, _ = w.Write([]byte(`{"response": {"numFound": 0, "docs": []}}`))
		case "/metrics":
			metricsCalls++
			_, _ = w.Write([]byte(`{}`))
		}
	}))

	result, count, err := client.AuthorMetrics(context.Background(), GetAuthorMetricsArgs{Author: "Nobody, X."})
	if err != nil {
		t.Fatalf("AuthorMetrics failed: %v", err)
	}
	if count != 0 || result != nil {
		t.Errorf("expected zero papers and nil result, got count=%d result=%+v", count, result)
	}
	if metricsCalls != 0 {
		t.Errorf("metrics endpoint called %d times, want 0", metricsCalls)
	}
}
