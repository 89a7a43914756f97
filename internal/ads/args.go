package ads

// SearchPapersArgs contains parameters for paper search
type SearchPapersArgs struct {
	Query      string `json:"query" jsonschema:"required" jsonschema_description:"Search query (e.g., 'stellar populations in elliptical galaxies')"`
	MaxResults int    `json:"max_results,omitempty" jsonschema_description:"Maximum number of results to return (default: 10, max: 50)"`
	Sort       string `json:"sort,omitempty" jsonschema_description:"Sort order: 'date' (newest first), 'citation_count' (most cited), or 'relevance'"`
}

// GetPaperDetailsArgs contains parameters for paper detail lookup
type GetPaperDetailsArgs struct {
	Bibcode string `json:"bibcode" jsonschema:"required" jsonschema_description:"ADS bibcode (e.g., '2019ApJ...878...98S')"`
}

// GetAuthorPapersArgs contains parameters for listing an author's papers
type GetAuthorPapersArgs struct {
	Author     string `json:"author" jsonschema:"required" jsonschema_description:"Author name (e.g., 'Coelho, P.' or 'Coelho, Paula')"`
	MaxResults int    `json:"max_results,omitempty" jsonschema_description:"Maximum number of results (default: 20, max: 100)"`
	Sort       string `json:"sort,omitempty" jsonschema_description:"Sort by 'date' or 'citation_count'"`
}

// ExportBibtexArgs contains parameters for BibTeX export
type ExportBibtexArgs struct {
	Bibcodes []string `json:"bibcodes" jsonschema:"required" jsonschema_description:"List of ADS bibcodes to export"`
}

// GetPaperMetricsArgs contains parameters for paper metrics
type GetPaperMetricsArgs struct {
	Bibcodes []string `json:"bibcodes" jsonschema:"required" jsonschema_description:"List of ADS bibcodes (e.g., ['2019ApJ...878...98S'])"`
}

// GetAuthorMetricsArgs contains parameters for author metrics
type GetAuthorMetricsArgs struct {
	Author string `json:"author" jsonschema:"required" jsonschema_description:"Author name (e.g., 'Coelho, P.' or 'Coelho, Paula R. T.')"`
	Years  string `json:"years,omitempty" jsonschema_description:"Optional year range (e.g., '2020-2025')"`
}

// ListLibrariesArgs contains parameters for listing libraries (none)
type ListLibrariesArgs struct{}

// GetLibraryPapersArgs contains parameters for fetching a library's papers
type GetLibraryPapersArgs struct {
	LibraryID string `json:"library_id" jsonschema:"required" jsonschema_description:"Library ID (from list_libraries)"`
}

// CreateLibraryArgs contains parameters for creating a library
type CreateLibraryArgs struct {
	Name        string `json:"name" jsonschema:"required" jsonschema_description:"Name for the library (e.g., 'Stellar Populations Review')"`
	Description string `json:"description,omitempty" jsonschema_description:"Description of the library"`
	Public      bool   `json:"public,omitempty" jsonschema_description:"Whether the library should be public (default: false)"`
}

// AddToLibraryArgs contains parameters for adding papers to a library
type AddToLibraryArgs struct {
	LibraryID string   `json:"library_id" jsonschema:"required" jsonschema_description:"Library ID (from list_libraries)"`
	Bibcodes  []string `json:"bibcodes" jsonschema:"required" jsonschema_description:"List of bibcodes to add to the library"`
}
