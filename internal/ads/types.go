package ads

// PaperRecord is a single document returned by the ADS search API.
// Title and DOI are arrays on the wire even though papers carry one of each.
type PaperRecord struct {
	Bibcode       string   `json:"bibcode"`
	Title         []string `json:"title,omitempty"`
	Author        []string `json:"author,omitempty"`
	Year          string   `json:"year,omitempty"`
	CitationCount int      `json:"citation_count,omitempty"`
	PubDate       string   `json:"pubdate,omitempty"`
	Pub           string   `json:"pub,omitempty"`
	Abstract      string   `json:"abstract,omitempty"`
	Keyword       []string `json:"keyword,omitempty"`
	DOI           []string `json:"doi,omitempty"`
}

// searchResponse is the envelope of GET /search/query
type searchResponse struct {
	Response struct {
		NumFound int           `json:"numFound"`
		Docs     []PaperRecord `json:"docs"`
	} `json:"response"`
}

// SearchResult holds the documents matched by a search along with the
// backend's total match count.
type SearchResult struct {
	NumFound int
	Docs     []PaperRecord
}

// CitationStats mirrors the "citation stats" block of POST /metrics.
// The ADS API uses JSON keys containing spaces.
type CitationStats struct {
	TotalCitations         int     `json:"total number of citations"`
	TotalRefereedCitations int     `json:"total number of refereed citations"`
	SelfCitations          int     `json:"number of self-citations"`
	AverageCitations       float64 `json:"average number of citations"`
	MedianCitations        float64 `json:"median number of citations"`
	NormalizedCitations    float64 `json:"normalized number of citations"`
	TotalReads             int     `json:"total number of reads"`
	AverageReads           float64 `json:"average number of reads"`
	MedianReads            float64 `json:"median number of reads"`
}

// Indicators mirrors the "indicators" block of POST /metrics.
// Riq comes back fractional from some metric sets, so it decodes as a
// float and is rounded at render time.
type Indicators struct {
	H    int     `json:"h"`
	M    float64 `json:"m"`
	G    int     `json:"g"`
	I10  int     `json:"i10"`
	I100 int     `json:"i100"`
	Tori float64 `json:"tori"`
	Riq  float64 `json:"riq"`
}

// MetricsResult is the response of POST /metrics. Either block may be
// absent depending on what the backend computed.
type MetricsResult struct {
	CitationStats *CitationStats `json:"citation stats,omitempty"`
	Indicators    *Indicators    `json:"indicators,omitempty"`
}

// Library is one entry of GET /biblib/libraries
type Library struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Public       bool   `json:"public"`
	NumDocuments int    `json:"num_documents"`
}

// librariesResponse is the envelope of GET /biblib/libraries
type librariesResponse struct {
	Libraries []Library `json:"libraries"`
}

// LibraryContents is the response of GET /biblib/libraries/{id}:
// the library's name plus the bibcodes it holds.
type LibraryContents struct {
	Name      string   `json:"name"`
	Documents []string `json:"documents"`
}

// createLibraryResponse is the envelope of POST /biblib/libraries
type createLibraryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
