package ads

import (
	"fmt"
	"strings"
)

const (
	// DefaultSearchResults is the row count for search_papers when unset
	DefaultSearchResults = 10

	// MaxSearchResults caps search_papers rows
	MaxSearchResults = 50

	// DefaultAuthorResults is the row count for get_author_papers when unset
	DefaultAuthorResults = 20

	// MaxAuthorResults caps get_author_papers rows
	MaxAuthorResults = 100

	// AuthorMetricsRows is the bibcode resolution ceiling for author metrics.
	// Papers beyond this are excluded from the metrics computation.
	AuthorMetricsRows = 2000
)

// sortTokens maps the public sort names to ADS sort parameters
var sortTokens = map[string]string{
	"date":           "date desc",
	"citation_count": "citation_count desc",
	"relevance":      "score desc",
}

// Query is a normalized ADS search request: everything the search
// endpoint needs, with clamps and defaults already applied.
type Query struct {
	Query  string
	Fields []string
	Rows   int
	Sort   string
}

// sortToken translates a public sort name into the ADS sort parameter.
// Unknown names fall back to newest-first rather than erroring.
func sortToken(sort string) string {
	if token, ok := sortTokens[sort]; ok {
		return token
	}
	return "date desc"
}

// clampRows applies the default for unset values and the per-op ceiling
func clampRows(requested, def, max int) int {
	if requested <= 0 {
		return def
	}
	if requested > max {
		return max
	}
	return requested
}

// NormalizeSearch turns raw search_papers arguments into an ADS query
func NormalizeSearch(args SearchPapersArgs) Query {
	return Query{
		Query:  args.Query,
		Fields: []string{"bibcode", "title", "author", "year", "citation_count", "pubdate"},
		Rows:   clampRows(args.MaxResults, DefaultSearchResults, MaxSearchResults),
		Sort:   sortToken(args.Sort),
	}
}

// NormalizeAuthorPapers turns raw get_author_papers arguments into an ADS query
func NormalizeAuthorPapers(args GetAuthorPapersArgs) Query {
	return Query{
		Query:  authorQuery(args.Author, ""),
		Fields: []string{"bibcode", "title", "year", "citation_count", "pubdate"},
		Rows:   clampRows(args.MaxResults, DefaultAuthorResults, MaxAuthorResults),
		Sort:   sortToken(args.Sort),
	}
}

// NormalizeAuthorMetrics builds the bibcode resolution query for author
// metrics. Only bibcodes are fetched; the metrics endpoint does the rest.
func NormalizeAuthorMetrics(args GetAuthorMetricsArgs) Query {
	return Query{
		Query:  authorQuery(args.Author, args.Years),
		Fields: []string{"bibcode"},
		Rows:   AuthorMetricsRows,
	}
}

// authorQuery builds an ADS fielded query for an author, optionally
// constrained to a year range
func authorQuery(author, years string) string {
	q := fmt.Sprintf("author:%q", author)
	if years != "" {
		q += " year:" + years
	}
	return q
}

// bibcodeQuery builds an OR query matching any of the given bibcodes
func bibcodeQuery(bibcodes []string) string {
	return "bibcode:(" + strings.Join(bibcodes, " OR ") + ")"
}

// CleanBibcodes drops empty and whitespace-only entries, trimming the rest
func CleanBibcodes(bibcodes []string) []string {
	cleaned := make([]string, 0, len(bibcodes))
	for _, b := range bibcodes {
		b = strings.TrimSpace(b)
		if b != "" {
			cleaned = append(cleaned, b)
		}
	}
	return cleaned
}
