package ads

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	apierrors "github.com/adstools/nasa-ads-mcp-server/internal/errors"
)

// detailFields is the projection for single-paper lookups
var detailFields = []string{
	"bibcode", "title", "author", "year", "citation_count",
	"abstract", "keyword", "doi", "pubdate", "pub",
}

// exportFields is the projection for BibTeX export
var exportFields = []string{"bibcode", "title", "author", "year", "pub"}

// Search executes a normalized query against the ADS search endpoint
func (c *Client) Search(ctx context.Context, q Query) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("fl", strings.Join(q.Fields, ","))
	params.Set("rows", strconv.Itoa(q.Rows))
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	var resp searchResponse
	if err := c.get(ctx, "search", "/search/query", params, &resp); err != nil {
		return nil, err
	}

	return &SearchResult{
		NumFound: resp.Response.NumFound,
		Docs:     resp.Response.Docs,
	}, nil
}

// GetPaper retrieves full metadata for a single paper by bibcode
func (c *Client) GetPaper(ctx context.Context, bibcode string) (*PaperRecord, error) {
	result, err := c.Search(ctx, Query{
		Query:  bibcodeQuery([]string{bibcode}),
		Fields: detailFields,
		Rows:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Docs) == 0 {
		return nil, apierrors.NewNotFoundError("paper", bibcode)
	}
	return &result.Docs[0], nil
}

// PaperForExport retrieves the citation fields for a single paper.
// Returns a NotFoundError for unknown bibcodes so export can degrade
// per entry instead of failing the whole batch.
func (c *Client) PaperForExport(ctx context.Context, bibcode string) (*PaperRecord, error) {
	result, err := c.Search(ctx, Query{
		Query:  bibcodeQuery([]string{bibcode}),
		Fields: exportFields,
		Rows:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Docs) == 0 {
		return nil, apierrors.NewNotFoundError("paper", bibcode)
	}
	return &result.Docs[0], nil
}
