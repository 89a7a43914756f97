// Package format renders ADS API results as human-readable text.
// All functions are pure: same input, same output, no I/O.
package format

import (
	"fmt"
	"strings"

	"github.com/adstools/nasa-ads-mcp-server/internal/ads"
)

// title returns the first title of a paper, or a placeholder
func title(p ads.PaperRecord) string {
	if len(p.Title) > 0 {
		return p.Title[0]
	}
	return "No title"
}

// authorList joins up to max authors, appending an et-al marker when
// truncated. withCount controls whether the marker carries the full
// author count.
func authorList(authors []string, max int, withCount bool) string {
	if len(authors) == 0 {
		return "Unknown"
	}
	if len(authors) <= max {
		return strings.Join(authors, ", ")
	}
	s := strings.Join(authors[:max], ", ")
	if withCount {
		return s + fmt.Sprintf(" et al. (%d authors)", len(authors))
	}
	return s + " et al."
}

// SearchResults renders a search result list for a free-text query
func SearchResults(query string, docs []ads.PaperRecord) string {
	if len(docs) == 0 {
		return fmt.Sprintf("No papers found for query: %s", query)
	}

	entries := make([]string, 0, len(docs))
	for i, p := range docs {
		entries = append(entries, fmt.Sprintf(
			"%d. %s\n   Authors: %s\n   Year: %s\n   Citations: %d\n   Bibcode: %s\n",
			i+1, title(p), authorList(p.Author, 3, true), p.Year, p.CitationCount, p.Bibcode))
	}

	return fmt.Sprintf("Found %d papers for '%s':\n\n", len(entries), query) +
		strings.Join(entries, "\n")
}

// PaperDetails renders full metadata for a single paper
func PaperDetails(p *ads.PaperRecord) string {
	authors := "Unknown"
	if len(p.Author) > 0 {
		authors = strings.Join(p.Author, "; ")
	}

	pub := p.Pub
	if pub == "" {
		pub = "Unknown"
	}

	doi := "N/A"
	if len(p.DOI) > 0 {
		doi = p.DOI[0]
	}

	keywords := "None"
	if len(p.Keyword) > 0 {
		keywords = strings.Join(p.Keyword, ", ")
	}

	abstract := p.Abstract
	if abstract == "" {
		abstract = "No abstract available"
	}

	details := []string{
		fmt.Sprintf("Title: %s", title(*p)),
		fmt.Sprintf("Authors: %s", authors),
		fmt.Sprintf("Publication: %s", pub),
		fmt.Sprintf("Year: %s", p.Year),
		fmt.Sprintf("Citations: %d", p.CitationCount),
		fmt.Sprintf("DOI: %s", doi),
		fmt.Sprintf("Keywords: %s", keywords),
		fmt.Sprintf("Bibcode: %s", p.Bibcode),
		"",
		"Abstract:",
		abstract,
	}

	return strings.Join(details, "\n")
}

// AuthorPapers renders an author's paper list with a citation total
func AuthorPapers(author string, docs []ads.PaperRecord) string {
	if len(docs) == 0 {
		return fmt.Sprintf("No papers found for author: %s", author)
	}

	entries := make([]string, 0, len(docs))
	totalCitations := 0
	for i, p := range docs {
		totalCitations += p.CitationCount
		entries = append(entries, fmt.Sprintf(
			"%d. %s (%s)\n   Citations: %d | Bibcode: %s\n",
			i+1, title(p), p.Year, p.CitationCount, p.Bibcode))
	}

	return fmt.Sprintf("Found %d papers by '%s' (Total citations: %d):\n\n",
		len(entries), author, totalCitations) +
		strings.Join(entries, "\n")
}

// ExportEntry pairs a requested bibcode with its resolved paper.
// Paper is nil when the bibcode was not found.
type ExportEntry struct {
	Bibcode string
	Paper   *ads.PaperRecord
}

// BibTeX renders citation entries, degrading unknown bibcodes to a
// comment line instead of failing the batch
func BibTeX(entries []ExportEntry) string {
	if len(entries) == 0 {
		return "No valid bibcodes provided"
	}

	rendered := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Paper == nil {
			rendered = append(rendered, fmt.Sprintf("%% Paper not found: %s\n", e.Bibcode))
			continue
		}

		authors := "Unknown"
		if len(e.Paper.Author) > 0 {
			authors = strings.Join(e.Paper.Author, " and ")
		}
		journal := e.Paper.Pub
		if journal == "" {
			journal = "Unknown"
		}

		rendered = append(rendered, fmt.Sprintf(
			"@ARTICLE{%s,\n    author = {%s},\n    title = {%s},\n    journal = {%s},\n    year = %s,\n    adsurl = {https://ui.adsabs.harvard.edu/abs/%s},\n}\n",
			e.Bibcode, authors, title(*e.Paper), journal, e.Paper.Year, e.Bibcode))
	}

	return "BibTeX Citations:\n\n" + strings.Join(rendered, "\n")
}

// PaperMetrics renders citation statistics for a set of papers
func PaperMetrics(m *ads.MetricsResult) string {
	if m == nil || m.CitationStats == nil {
		return "No metrics available for these papers"
	}

	stats := m.CitationStats
	lines := []string{
		"Paper Metrics:",
		fmt.Sprintf("Total Citations: %d", stats.TotalCitations),
		fmt.Sprintf("Total Refereed Citations: %d", stats.TotalRefereedCitations),
		fmt.Sprintf("Average Citations per Paper: %.1f", stats.AverageCitations),
		fmt.Sprintf("Median Citations: %.0f", stats.MedianCitations),
		fmt.Sprintf("Normalized Citations: %.1f", stats.NormalizedCitations),
		fmt.Sprintf("Total Reads: %d", stats.TotalReads),
		fmt.Sprintf("Average Reads per Paper: %.1f", stats.AverageReads),
	}

	if m.Indicators != nil {
		ind := m.Indicators
		lines = append(lines,
			"",
			"Indicators:",
			fmt.Sprintf("h-index: %d", ind.H),
			fmt.Sprintf("m-index: %.2f", ind.M),
			fmt.Sprintf("i10-index: %d", ind.I10),
			fmt.Sprintf("g-index: %d", ind.G),
		)
	}

	return strings.Join(lines, "\n")
}

// AuthorMetrics renders comprehensive metrics for an author. Sections
// are included only when the backend returned them.
func AuthorMetrics(author, years string, paperCount int, m *ads.MetricsResult) string {
	header := fmt.Sprintf("Author Metrics for %s", author)
	if years != "" {
		header += fmt.Sprintf(" (%s)", years)
	}

	lines := []string{
		header,
		fmt.Sprintf("Total Papers: %d\n", paperCount),
	}

	if m != nil && m.CitationStats != nil {
		stats := m.CitationStats
		lines = append(lines,
			"Citation Statistics:",
			fmt.Sprintf("  Total Citations: %d", stats.TotalCitations),
			fmt.Sprintf("  Refereed Citations: %d", stats.TotalRefereedCitations),
			fmt.Sprintf("  Self-Citations: %d", stats.SelfCitations),
			fmt.Sprintf("  Average Citations/Paper: %.1f", stats.AverageCitations),
			fmt.Sprintf("  Median Citations: %.0f", stats.MedianCitations),
			fmt.Sprintf("  Normalized Citations: %.1f", stats.NormalizedCitations),
		)
	}

	if m != nil && m.Indicators != nil {
		ind := m.Indicators
		lines = append(lines,
			"",
			"Impact Indicators:",
			fmt.Sprintf("  h-index: %d", ind.H),
			fmt.Sprintf("  m-index: %.3f", ind.M),
			fmt.Sprintf("  i10-index: %d", ind.I10),
			fmt.Sprintf("  i100-index: %d", ind.I100),
			fmt.Sprintf("  g-index: %d", ind.G),
			fmt.Sprintf("  tori-index: %.1f", ind.Tori),
			fmt.Sprintf("  riq-index: %.0f", ind.Riq),
		)
	}

	if m != nil && m.CitationStats != nil {
		stats := m.CitationStats
		lines = append(lines,
			"",
			"Read Statistics:",
			fmt.Sprintf("  Total Reads: %d", stats.TotalReads),
			fmt.Sprintf("  Average Reads/Paper: %.1f", stats.AverageReads),
			fmt.Sprintf("  Median Reads: %.0f", stats.MedianReads),
		)
	}

	return strings.Join(lines, "\n")
}

// Libraries renders the user's library list
func Libraries(libs []ads.Library) string {
	if len(libs) == 0 {
		return "No libraries found. Create one with the create_library tool!"
	}

	lines := []string{"Your ADS Libraries:\n"}
	for _, lib := range libs {
		name := lib.Name
		if name == "" {
			name = "Unnamed"
		}
		id := lib.ID
		if id == "" {
			id = "unknown"
		}
		desc := lib.Description
		if desc == "" {
			desc = "No description"
		}
		visibility := "Private"
		if lib.Public {
			visibility = "Public"
		}

		lines = append(lines, fmt.Sprintf(
			"• %s (ID: %s)\n  %s\n  Papers: %d | %s\n",
			name, id, desc, lib.NumDocuments, visibility))
	}

	return strings.Join(lines, "\n")
}

// EmptyLibrary renders the response for a library with no papers
func EmptyLibrary(libraryID string) string {
	return fmt.Sprintf("No papers in library %s", libraryID)
}

// LibraryPapers renders the papers of a single library
func LibraryPapers(name string, docs []ads.PaperRecord) string {
	lines := []string{fmt.Sprintf("Papers in library %s:\n", name)}
	for i, p := range docs {
		lines = append(lines, fmt.Sprintf(
			"%d. %s\n   %s (%s) | Citations: %d\n   Bibcode: %s\n",
			i+1, title(p), authorList(p.Author, 2, false), p.Year, p.CitationCount, p.Bibcode))
	}
	return strings.Join(lines, "\n")
}

// CreatedLibrary renders the confirmation for a newly created library
func CreatedLibrary(name, libraryID string) string {
	return fmt.Sprintf("✓ Created library '%s'\nLibrary ID: %s\n\nUse add_to_library to add papers to this library.", name, libraryID)
}

// AddedToLibrary renders the confirmation for papers added to a library
func AddedToLibrary(count int, libraryID string) string {
	return fmt.Sprintf("✓ Added %d paper(s) to library %s", count, libraryID)
}
