package ads

import (
	"regexp"
	"strings"

	apierrors "github.com/adstools/nasa-ads-mcp-server/internal/errors"
)

// MaxQueryLength is the maximum allowed search query length
const MaxQueryLength = 1000

// ValidateQuery validates a free-text search query
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return apierrors.NewValidationError("query", "", "is required")
	}
	if len(query) > MaxQueryLength {
		return apierrors.NewValidationError("query", "", "exceeds maximum length of 1000 characters")
	}
	return nil
}

// ValidateAuthor validates an author name
func ValidateAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return apierrors.NewValidationError("author", "", "is required")
	}
	return nil
}

// ValidateBibcode validates a single bibcode. ADS bibcodes follow the
// YYYYJJJJJVVVVMPPPPA convention but the backend accepts looser forms,
// so only obviously broken input is rejected here.
func ValidateBibcode(bibcode string) error {
	if strings.TrimSpace(bibcode) == "" {
		return apierrors.NewValidationError("bibcode", "", "is required")
	}
	if strings.ContainsAny(bibcode, " \t\n") {
		return apierrors.NewValidationError("bibcode", bibcode, "must not contain whitespace")
	}
	return nil
}

// ValidateBibcodes validates a bibcode list, requiring at least one
// non-blank entry
func ValidateBibcodes(bibcodes []string) error {
	if len(CleanBibcodes(bibcodes)) == 0 {
		return apierrors.NewValidationError("bibcodes", "", "at least one bibcode is required")
	}
	return nil
}

var yearRangeRegex = regexp.MustCompile(`^\d{4}(-\d{4})?$`)

// ValidateYears validates an optional year range filter.
// Accepts a single year or a YYYY-YYYY range; empty means no filter.
func ValidateYears(years string) error {
	if years == "" {
		return nil
	}
	if !yearRangeRegex.MatchString(years) {
		return apierrors.NewValidationError("years", years, "must be a year or range like 2020-2025")
	}
	return nil
}

// ValidateLibraryID validates a library identifier
func ValidateLibraryID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apierrors.NewValidationError("library_id", "", "is required")
	}
	return nil
}

// ValidateLibraryName validates a library name
func ValidateLibraryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apierrors.NewValidationError("name", "", "is required")
	}
	return nil
}
