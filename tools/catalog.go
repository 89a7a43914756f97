// Package tools provides a metadata-driven registry for MCP tool definitions.
// It reduces boilerplate in main.go by defining tools declaratively and
// using type-safe handlers to register them.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a handler method and an input schema in the schema
// catalog, both keyed by name.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "search_papers")
	Name string

	// Method is the handler method name (e.g., "SearchPapers")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (search, metrics, libraries)
	Category string

	// ErrorAction is the phrase used in error envelopes
	// ("searching papers" renders as "Error searching papers: ...")
	ErrorAction string

	// ReadOnly indicates the tool doesn't modify ADS state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}

// AllTools contains all tool specifications for the NASA ADS MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:        "search_papers",
		Method:      "SearchPapers",
		Title:       "Search Papers",
		Category:    "search",
		ErrorAction: "searching papers",
		Description: `Search NASA ADS for astronomy/astrophysics papers.

USE WHEN: User asks "find papers about X", "search the literature for X", or wants recent/highly-cited work on a topic.

NOT FOR: Looking up one known paper (use get_paper_details). Not for an author's full publication list (use get_author_papers).

PARAMETERS:
- query: Search text or fielded query (required). Examples: 'stellar populations', 'author:Coelho', 'year:2020-2024'
- max_results: Max papers to return (default 10, max 50)
- sort: 'date' (newest first, default), 'citation_count' (most cited), or 'relevance'

RETURNS: Numbered list with titles, authors, years, citation counts, and bibcodes.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:        "get_paper_details",
		Method:      "GetPaperDetails",
		Title:       "Get Paper Details",
		Category:    "search",
		ErrorAction: "getting paper details",
		Description: `Get detailed information about a specific paper using its bibcode.

USE WHEN: User has a bibcode and asks "show me this paper", "what is this paper about", or wants the abstract.

NOT FOR: Finding papers by topic (use search_papers).

PARAMETERS:
- bibcode: ADS bibcode (required, e.g., '2019ApJ...878...98S')

RETURNS: Full metadata including abstract, authors, citations, keywords, DOI, and publication.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:        "get_author_papers",
		Method:      "GetAuthorPapers",
		Title:       "Get Author Papers",
		Category:    "search",
		ErrorAction: "getting author papers",
		Description: `Find all papers by a specific author.

USE WHEN: User asks "what has X published", "list papers by Y", "show X's most cited work".

NOT FOR: Author-level impact statistics (use get_author_metrics).

PARAMETERS:
- author: Author name (required, e.g., 'Coelho, P.' or 'Coelho, Paula')
- max_results: Max papers (default 20, max 100)
- sort: 'date' (default) or 'citation_count'

RETURNS: Numbered paper list with years, citations, and bibcodes, plus the total citation count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// EXPORT TOOLS
	// ==========================================================================
	{
		Name:        "export_bibtex",
		Method:      "ExportBibtex",
		Title:       "Export BibTeX",
		Category:    "export",
		ErrorAction: "exporting BibTeX",
		Description: `Export BibTeX citations for one or more papers.

USE WHEN: User says "give me the BibTeX", "export citations", or is adding references to LaTeX/Quarto documents.

PARAMETERS:
- bibcodes: List of ADS bibcodes to export (required)

RETURNS: One @ARTICLE entry per paper. Unknown bibcodes become a comment line instead of failing the batch.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// METRICS TOOLS
	// ==========================================================================
	{
		Name:        "get_paper_metrics",
		Method:      "GetPaperMetrics",
		Title:       "Get Paper Metrics",
		Category:    "metrics",
		ErrorAction: "getting paper metrics",
		Description: `Get detailed metrics for specific papers including citations, reads, and indices.

USE WHEN: User asks "how impactful are these papers", "citation statistics for these bibcodes".

NOT FOR: Author-level metrics (use get_author_metrics).

PARAMETERS:
- bibcodes: List of ADS bibcodes (required, e.g., ['2019ApJ...878...98S'])

RETURNS: Citation and read statistics for the set, plus h/m/i10/g indices when available.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:        "get_author_metrics",
		Method:      "GetAuthorMetrics",
		Title:       "Get Author Metrics",
		Category:    "metrics",
		ErrorAction: "getting author metrics",
		Description: `Get comprehensive metrics for an author: h-index, total citations, paper count, and citation statistics.

USE WHEN: User asks "what is X's h-index", "career impact of Y", or is preparing a CV.

NOT FOR: Listing an author's papers (use get_author_papers).

PARAMETERS:
- author: Author name (required, e.g., 'Coelho, P.' or 'Coelho, Paula R. T.')
- years: Optional year range (e.g., '2020-2025')

RETURNS: Paper count, citation statistics, impact indicators, and read statistics.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// LIBRARY TOOLS
	// ==========================================================================
	{
		Name:        "list_libraries",
		Method:      "ListLibraries",
		Title:       "List Libraries",
		Category:    "libraries",
		ErrorAction: "listing libraries",
		Description: `List all your personal paper libraries/collections in ADS.

USE WHEN: User asks "what libraries do I have", "show my collections".

PARAMETERS: None

RETURNS: Library names, IDs, descriptions, paper counts, and visibility.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:        "get_library_papers",
		Method:      "GetLibraryPapers",
		Title:       "Get Library Papers",
		Category:    "libraries",
		ErrorAction: "getting library papers",
		Description: `Get all papers from a specific library.

USE WHEN: User asks "what's in my X library", "show papers in that collection".

NOT FOR: Listing the libraries themselves (use list_libraries).

PARAMETERS:
- library_id: Library ID from list_libraries (required)

RETURNS: Paper titles, authors, years, citations, and bibcodes for the collection.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:        "create_library",
		Method:      "CreateLibrary",
		Title:       "Create Library",
		Category:    "libraries",
		ErrorAction: "creating library",
		Description: `Create a new paper library/collection.

USE WHEN: User says "make a new library", "start a collection for project X".

PARAMETERS:
- name: Name for the library (required, e.g., 'Stellar Populations Review')
- description: Description of the library (optional)
- public: Whether the library should be public (default false)

RETURNS: Confirmation with the new library's ID.`,
		ReadOnly:   false,
		Idempotent: false,
		OpenWorld:  true,
	},
	{
		Name:        "add_to_library",
		Method:      "AddToLibrary",
		Title:       "Add to Library",
		Category:    "libraries",
		ErrorAction: "adding to library",
		Description: `Add papers to an existing library.

USE WHEN: User says "add these papers to my library", "save this bibcode to collection X".

NOT FOR: Creating a library (use create_library first).

PARAMETERS:
- library_id: Library ID from list_libraries (required)
- bibcodes: List of bibcodes to add (required)

RETURNS: Confirmation with the number of papers added.`,
		ReadOnly:   false,
		Idempotent: false,
		OpenWorld:  true,
	},
}
