package ads

import (
	"context"
)

// metricsPayload is the body of POST /metrics
type metricsPayload struct {
	Bibcodes []string `json:"bibcodes"`
}

// Metrics fetches citation statistics and indicators for a set of papers
func (c *Client) Metrics(ctx context.Context, bibcodes []string) (*MetricsResult, error) {
	var result MetricsResult
	payload := metricsPayload{Bibcodes: CleanBibcodes(bibcodes)}
	if err := c.post(ctx, "metrics", "/metrics", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AuthorMetrics resolves an author's bibcodes and fetches metrics over
// them. The two calls are not atomic: papers indexed between them are
// missed. A zero-paper author short-circuits without calling the
// metrics endpoint; the returned count is 0 and the result nil.
func (c *Client) AuthorMetrics(ctx context.Context, args GetAuthorMetricsArgs) (*MetricsResult, int, error) {
	papers, err := c.Search(ctx, NormalizeAuthorMetrics(args))
	if err != nil {
		return nil, 0, err
	}

	bibcodes := make([]string, 0, len(papers.Docs))
	for _, doc := range papers.Docs {
		bibcodes = append(bibcodes, doc.Bibcode)
	}
	if len(bibcodes) == 0 {
		return nil, 0, nil
	}

	result, err := c.Metrics(ctx, bibcodes)
	if err != nil {
		return nil, 0, err
	}
	return result, len(bibcodes), nil
}
