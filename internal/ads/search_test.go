package ads

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	apierrors "github.com/adstools/nasa-ads-mcp-server/internal/errors"
)

func TestSearch(t *testing.T) {
	var gotParams url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/query" {
			t.Errorf("path = %q, want /search/query", r.URL.Path)
		}
		gotParams = r.URL.Query()
		_, _ = w.Write([]byte(`{"response": {"numFound": 120, "docs": [
			{"bibcode": "2019ApJ...878...98S", "title": ["Dust in Galaxies"], "author": ["Smith, J."], "year": "2019", "citation_count": 42}
		]}}`))
	}))

	result, err := client.Search(context.Background(), NormalizeSearch(SearchPapersArgs{
		Query:      "dust",
		MaxResults: 5,
		Sort:       "citation_count",
	}))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotParams.Get("q") != "dust" {
		t.Errorf("q = %q, want %q", gotParams.Get("q"), "dust")
	}
	if gotParams.Get("fl") != "bibcode,title,author,year,citation_count,pubdate" {
		t.Errorf("fl = %q", gotParams.Get("fl"))
	}
	if gotParams.Get("rows") != "5" {
		t.Errorf("rows = %q, want 5", gotParams.Get("rows"))
	}
	if gotParams.Get("sort") != "citation_count desc" {
		t.Errorf("sort = %q, want %q", gotParams.Get("sort"), "citation_count desc")
	}

	if result.NumFound != 120 {
		t.Errorf("NumFound = %d, want 120", result.NumFound)
	}
	if len(result.Docs) != 1 {
		t.Fatalf("docs = %d, want 1", len(result.Docs))
	}
	doc := result.Docs[0]
	if doc.Bibcode != "2019ApJ...878...98S" || doc.CitationCount != 42 {
		t.Errorf("unexpected doc: %+v", doc)
	}
}

func TestSearch_Empty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": {"numFound": 0, "docs": []}}`))
	}))

	result, err := client.Search(context.Background(), NormalizeSearch(SearchPapersArgs{Query: "xyzzy"}))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result.Docs) != 0 {
		t.Errorf("docs = %d, want 0", len(result.Docs))
	}
}

func TestGetPaper(t *testing.T) {
	var gotParams url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = r.URL.Query()
		_, _ = w.Write([]byte(`{"response": {"numFound": 1, "docs": [
			{"bibcode": "2019ApJ...878...98S", "title": ["Dust in Galaxies"], "abstract": "We study dust.", "pub": "The Astrophysical Journal", "doi": ["10.1000/xyz"], "keyword": ["galaxies", "dust"]}
		]}}`))
	}))

	paper, err := client.GetPaper(context.Background(), "2019ApJ...878...98S")
	if err != nil {
		t.Fatalf("GetPaper failed: %v", err)
	}

	if gotParams.Get("q") != "bibcode:(2019ApJ...878...98S)" {
		t.Errorf("q = %q", gotParams.Get("q"))
	}
	if gotParams.Get("fl") != "bibcode,title,author,year,citation_count,abstract,keyword,doi,pubdate,pub" {
		t.Errorf("fl = %q", gotParams.Get("fl"))
	}
	if paper.Abstract != "We study dust." {
		t.Errorf("Abstract = %q", paper.Abstract)
	}
}

func TestGetPaper_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": {"numFound": 0, "docs": []}}`))
	}))

	_, err := client.GetPaper(context.Background(), "BOGUS")
	if !apierrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestPaperForExport(t *testing.T) {
	var gotParams url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = r.URL.Query()
		_, _ = w.Write([]byte(`{"response": {"numFound": 1, "docs": [
			{"bibcode": "2019ApJ...878...98S", "title": ["Dust in Galaxies"], "author": ["Smith, J."], "year": "2019", "pub": "ApJ"}
		]}}`))
	}))

	paper, err := client.PaperForExport(context.Background(), "2019ApJ...878...98S")
	if err != nil {
		t.Fatalf("PaperForExport failed: %v", err)
	}
	if gotParams.Get("fl") != "bibcode,title,author,year,pub" {
		t.Errorf("fl = %q", gotParams.Get("fl"))
	}
	if paper.Pub != "ApJ" {
		t.Errorf("Pub = %q", paper.Pub)
	}
}
