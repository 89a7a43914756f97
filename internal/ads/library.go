package ads

import (
	"context"
	"net/http"

	apierrors "github.com/adstools/nasa-ads-mcp-server/internal/errors"
)

// libraryFields is the projection for library paper listings
var libraryFields = []string{"bibcode", "title", "author", "year", "citation_count"}

// ListLibraries returns the user's personal libraries
func (c *Client) ListLibraries(ctx context.Context) ([]Library, error) {
	var resp librariesResponse
	if err := c.get(ctx, "libraries", "/biblib/libraries", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Libraries, nil
}

// GetLibrary returns the name and bibcodes of a single library
func (c *Client) GetLibrary(ctx context.Context, libraryID string) (*LibraryContents, error) {
	var resp LibraryContents
	if err := c.get(ctx, "library_get", "/biblib/libraries/"+libraryID, nil, &resp); err != nil {
		if statusCodeOf(err) == http.StatusNotFound {
			return nil, apierrors.NewNotFoundError("library", libraryID)
		}
		return nil, err
	}
	return &resp, nil
}

// LibraryPapers fetches a library's contents and resolves its bibcodes
// into paper records. The two calls are not atomic: papers added or
// removed between them can show up inconsistently. Returns the
// library's display name alongside the papers; an empty library yields
// an empty result and no second call.
func (c *Client) LibraryPapers(ctx context.Context, libraryID string) (string, *SearchResult, error) {
	contents, err := c.GetLibrary(ctx, libraryID)
	if err != nil {
		return "", nil, err
	}

	name := contents.Name
	if name == "" {
		name = libraryID
	}
	if len(contents.Documents) == 0 {
		return name, &SearchResult{}, nil
	}

	result, err := c.Search(ctx, Query{
		Query:  bibcodeQuery(contents.Documents),
		Fields: libraryFields,
		Rows:   len(contents.Documents),
	})
	if err != nil {
		return "", nil, err
	}
	return name, result, nil
}

// createLibraryPayload is the body of POST /biblib/libraries
type createLibraryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
}

// CreateLibrary creates a new library and returns its ID
func (c *Client) CreateLibrary(ctx context.Context, name, description string, public bool) (string, error) {
	payload := createLibraryPayload{
		Name:        name,
		Description: description,
		Public:      public,
	}

	var resp createLibraryResponse
	if err := c.post(ctx, "library_create", "/biblib/libraries", payload, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// addDocumentsPayload is the body of POST /biblib/documents/{id}
type addDocumentsPayload struct {
	Bibcode []string `json:"bibcode"`
	Action  string   `json:"action"`
}

// AddToLibrary adds papers to an existing library. Returns the number
// of bibcodes submitted.
func (c *Client) AddToLibrary(ctx context.Context, libraryID string, bibcodes []string) (int, error) {
	cleaned := CleanBibcodes(bibcodes)
	payload := addDocumentsPayload{
		Bibcode: cleaned,
		Action:  "add",
	}

	if err := c.post(ctx, "library_add", "/biblib/documents/"+libraryID, payload, nil); err != nil {
		if statusCodeOf(err) == http.StatusNotFound {
			return 0, apierrors.NewNotFoundError("library", libraryID)
		}
		return 0, err
	}
	return len(cleaned), nil
}
