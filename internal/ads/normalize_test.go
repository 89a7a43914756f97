package ads

import (
	"reflect"
	"testing"
)

func TestSortToken(t *testing.T) {
	tests := []struct {
		sort     string
		expected string
	}{
		{"date", "date desc"},
		{"citation_count", "citation_count desc"},
		{"relevance", "score desc"},
		{"", "date desc"},
		{"banana", "date desc"},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			if got := sortToken(tt.sort); got != tt.expected {
				t.Errorf("sortToken(%q) = %q, want %q", tt.sort, got, tt.expected)
			}
		})
	}
}

func TestNormalizeSearch(t *testing.T) {
	tests := []struct {
		name     string
		args     SearchPapersArgs
		wantRows int
		wantSort string
	}{
		{
			name:     "defaults",
			args:     SearchPapersArgs{Query: "exoplanets"},
			wantRows: DefaultSearchResults,
			wantSort: "date desc",
		},
		{
			name:     "in range",
			args:     SearchPapersArgs{Query: "exoplanets", MaxResults: 25, Sort: "relevance"},
			wantRows: 25,
			wantSort: "score desc",
		},
		{
			name:     "clamped to ceiling",
			args:     SearchPapersArgs{Query: "exoplanets", MaxResults: 1000, Sort: "citation_count"},
			wantRows: MaxSearchResults,
			wantSort: "citation_count desc",
		},
		{
			name:     "negative falls back to default",
			args:     SearchPapersArgs{Query: "exoplanets", MaxResults: -5},
			wantRows: DefaultSearchResults,
			wantSort: "date desc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NormalizeSearch(tt.args)
			if q.Query != tt.args.Query {
				t.Errorf("Query = %q, want %q", q.Query, tt.args.Query)
			}
			if q.Rows != tt.wantRows {
				t.Errorf("Rows = %d, want %d", q.Rows, tt.wantRows)
			}
			if q.Sort != tt.wantSort {
				t.Errorf("Sort = %q, want %q", q.Sort, tt.wantSort)
			}
			wantFields := []string{"bibcode", "title", "author", "year", "citation_count", "pubdate"}
			if !reflect.DeepEqual(q.Fields, wantFields) {
				t.Errorf("Fields = %v, want %v", q.Fields, wantFields)
			}
		})
	}
}

func TestNormalizeAuthorPapers(t *testing.T) {
	q := NormalizeAuthorPapers(GetAuthorPapersArgs{Author: "Coelho, P."})
	if q.Query != `author:"Coelho, P."` {
		t.Errorf("Query = %q, want %q", q.Query, `author:"Coelho, P."`)
	}
	if q.Rows != DefaultAuthorResults {
		t.Errorf("Rows = %d, want %d", q.Rows, DefaultAuthorResults)
	}
	if q.Sort != "date desc" {
		t.Errorf("Sort = %q, want %q", q.Sort, "date desc")
	}

	clamped := NormalizeAuthorPapers(GetAuthorPapersArgs{Author: "Coelho, P.", MaxResults: 1000})
	if clamped.Rows != MaxAuthorResults {
		t.Errorf("clamped Rows = %d, want %d", clamped.Rows, MaxAuthorResults)
	}
}

func TestNormalizeAuthorMetrics(t *testing.T) {
	q := NormalizeAuthorMetrics(GetAuthorMetricsArgs{Author: "Coelho, P.", Years: "2020-2025"})
	if q.Query != `author:"Coelho, P." year:2020-2025` {
		t.Errorf("Query = %q", q.Query)
	}
	if q.Rows != AuthorMetricsRows {
		t.Errorf("Rows = %d, want %d", q.Rows, AuthorMetricsRows)
	}
	if !reflect.DeepEqual(q.Fields, []string{"bibcode"}) {
		t.Errorf("Fields = %v, want [bibcode]", q.Fields)
	}
	if q.Sort != "" {
		t.Errorf("Sort = %q, want empty", q.Sort)
	}

	noYears := NormalizeAuthorMetrics(GetAuthorMetricsArgs{Author: "Coelho, P."})
	if noYears.Query != `author:"Coelho, P."` {
		t.Errorf("Query = %q", noYears.Query)
	}
}

func TestBibcodeQuery(t *testing.T) {
	got := bibcodeQuery([]string{"2019ApJ...878...98S", "2020MNRAS.495.1321D"})
	want := "bibcode:(2019ApJ...878...98S OR 2020MNRAS.495.1321D)"
	if got != want {
		t.Errorf("bibcodeQuery = %q, want %q", got, want)
	}
}

func TestCleanBibcodes(t *testing.T) {
	got := CleanBibcodes([]string{" 2019ApJ...878...98S ", "", "  ", "2020MNRAS.495.1321D"})
	want := []string{"2019ApJ...878...98S", "2020MNRAS.495.1321D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanBibcodes = %v, want %v", got, want)
	}

	if got := CleanBibcodes(nil); len(got) != 0 {
		t.Errorf("CleanBibcodes(nil) = %v, want empty", got)
	}
}
