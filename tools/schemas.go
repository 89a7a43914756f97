package tools

import "encoding/json"

// toolSchemas is the input schema catalog, keyed by tool name. Schemas
// are written out explicitly so defaults, enums, and bounds are visible
// to MCP clients instead of living only in normalization code. Every
// entry in AllTools must have a schema here; registration enforces it.
var toolSchemas = map[string]json.RawMessage{
	"search_papers": json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "Search query (e.g., 'stellar populations in elliptical galaxies')"
			},
			"max_results": {
				"type": "integer",
				"description": "Maximum number of results to return (default: 10, max: 50)",
				"default": 10,
				"minimum": 1,
				"maximum": 50
			},
			"sort": {
				"type": "string",
				"description": "Sort order: 'date' (newest first), 'citation_count' (most cited), or 'relevance'",
				"enum": ["date", "citation_count", "relevance"],
				"default": "date"
			}
		},
		"required": ["query"]
	}`),

	"get_paper_details": json.RawMessage(`{
		"type": "object",
		"properties": {
			"bibcode": {
				"type": "string",
				"description": "ADS bibcode (e.g., '2019ApJ...878...98S')"
			}
		},
		"required": ["bibcode"]
	}`),

	"get_author_papers": json.RawMessage(`{
		"type": "object",
		"properties": {
			"author": {
				"type": "string",
				"description": "Author name (e.g., 'Coelho, P.' or 'Coelho, Paula')"
			},
			"max_results": {
				"type": "integer",
				"description": "Maximum number of results (default: 20, max: 100)",
				"default": 20,
				"minimum": 1,
				"maximum": 100
			},
			"sort": {
				"type": "string",
				"description": "Sort by 'date' or 'citation_count'",
				"enum": ["date", "citation_count"],
				"default": "date"
			}
		},
		"required": ["author"]
	}`),

	"export_bibtex": json.RawMessage(`{
		"type": "object",
		"properties": {
			"bibcodes": {
				"type": "array",
				"items": {"type": "string"},
				"description": "List of ADS bibcodes to export"
			}
		},
		"required": ["bibcodes"]
	}`),

	"get_paper_metrics": json.RawMessage(`{
		"type": "object",
		"properties": {
			"bibcodes": {
				"type": "array",
				"items": {"type": "string"},
				"description": "List of ADS bibcodes (e.g., ['2019ApJ...878...98S'])"
			}
		},
		"required": ["bibcodes"]
	}`),

	"get_author_metrics": json.RawMessage(`{
		"type": "object",
		"properties": {
			"author": {
				"type": "string",
				"description": "Author name (e.g., 'Coelho, P.' or 'Coelho, Paula R. T.')"
			},
			"years": {
				"type": "string",
				"description": "Optional year range (e.g., '2020-2025')",
				"pattern": "^\\d{4}(-\\d{4})?$"
			}
		},
		"required": ["author"]
	}`),

	"list_libraries": json.RawMessage(`{
		"type": "object",
		"properties": {}
	}`),

	"get_library_papers": json.RawMessage(`{
		"type": "object",
		"properties": {
			"library_id": {
				"type": "string",
				"description": "Library ID (from list_libraries)"
			}
		},
		"required": ["library_id"]
	}`),

	"create_library": json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {
				"type": "string",
				"description": "Name for the library (e.g., 'Stellar Populations Review')"
			},
			"description": {
				"type": "string",
				"description": "Description of the library"
			},
			"public": {
				"type": "boolean",
				"description": "Whether the library should be public (default: false)",
				"default": false
			}
		},
		"required": ["name"]
	}`),

	"add_to_library": json.RawMessage(`{
		"type": "object",
		"properties": {
			"library_id": {
				"type": "string",
				"description": "Library ID (from list_libraries)"
			},
			"bibcodes": {
				"type": "array",
				"items": {"type": "string"},
				"description": "List of bibcodes to add to the library"
			}
		},
		"required": ["library_id", "bibcodes"]
	}`),
}

// Schema returns the input schema for a tool name
func Schema(name string) (json.RawMessage, bool) {
	s, ok := toolSchemas[name]
	return s, ok
}
