package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/adstools/nasa-ads-mcp-server/internal/ads"
	apierrors "github.com/adstools/nasa-ads-mcp-server/internal/errors"
	"github.com/adstools/nasa-ads-mcp-server/internal/format"
	"github.com/adstools/nasa-ads-mcp-server/metrics"
	"github.com/adstools/nasa-ads-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *ads.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *ads.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	switch spec.Method {
	case "SearchPapers":
		register(h, server, spec, h.searchPapers)
	case "GetPaperDetails":
		register(h, server, spec, h.getPaperDetails)
	case "GetAuthorPapers":
		register(h, server, spec, h.getAuthorPapers)
	case "ExportBibtex":
		register(h, server, spec, h.exportBibtex)
	case "GetPaperMetrics":
		register(h, server, spec, h.getPaperMetrics)
	case "GetAuthorMetrics":
		register(h, server, spec, h.getAuthorMetrics)
	case "ListLibraries":
		register(h, server, spec, h.listLibraries)
	case "GetLibraryPapers":
		register(h, server, spec, h.getLibraryPapers)
	case "CreateLibrary":
		register(h, server, spec, h.createLibrary)
	case "AddToLibrary":
		register(h, server, spec, h.addToLibrary)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec and its schema catalog
// entry. Returns false when no schema exists for the tool name.
func (h *HandlerRegistry) buildTool(spec ToolSpec) (*mcp.Tool, bool) {
	schema, ok := Schema(spec.Name)
	if !ok {
		h.logger.Error("No input schema, tool not registered", "tool", spec.Name)
		return nil, false
	}

	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		InputSchema: schema,
		Annotations: annotations,
	}, true
}

// textResult wraps response text in a success envelope
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult converts a handler error into an error-text envelope.
// This is the only place an error crosses the MCP boundary; it never
// becomes a protocol fault for a handled request.
func errorResult(spec ToolSpec, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Error %s: %s", spec.ErrorAction, err)}},
		IsError: true,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the handler method with panic recovery, metrics, tracing,
// logging, and error-to-envelope conversion.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	spec ToolSpec,
	method func(context.Context, Args) (string, error),
) {
	tool, ok := h.buildTool(spec)
	if !ok {
		return
	}

	server.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
		defer func() {
			if rec := recover(); rec != nil {
				metrics.PanicsRecovered.WithLabelValues(spec.Name).Inc()
				h.logger.Error("Panic recovered",
					"tool", spec.Name,
					"panic", rec,
					"stack", string(debug.Stack()))
				res = errorResult(spec, fmt.Errorf("internal error: %v", rec))
			}
		}()

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()
		tracing.AddToolAttributes(span, spec.Name, spec.Category, spec.ReadOnly)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		var args Args
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				span.SetStatus(codes.Error, err.Error())
				metrics.RecordRequest(spec.Name, 0, false)
				return errorResult(spec, fmt.Errorf("invalid arguments: %w", err)), nil
			}
		}

		start := time.Now()
		text, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			return errorResult(spec, err), nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args)
		return textResult(text), nil
	})
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	switch a := args.(type) {
	case ads.SearchPapersArgs:
		attrs = append(attrs, "query", a.Query, "max_results", a.MaxResults, "sort", a.Sort)
	case ads.GetPaperDetailsArgs:
		attrs = append(attrs, "bibcode", a.Bibcode)
	case ads.GetAuthorPapersArgs:
		attrs = append(attrs, "author", a.Author, "max_results", a.MaxResults, "sort", a.Sort)
	case ads.ExportBibtexArgs:
		attrs = append(attrs, "bibcodes", len(a.Bibcodes))
	case ads.GetPaperMetricsArgs:
		attrs = append(attrs, "bibcodes", len(a.Bibcodes))
	case ads.GetAuthorMetricsArgs:
		attrs = append(attrs, "author", a.Author, "years", a.Years)
	case ads.ListLibrariesArgs:
		// No args to log
	case ads.GetLibraryPapersArgs:
		attrs = append(attrs, "library_id", a.LibraryID)
	case ads.CreateLibraryArgs:
		attrs = append(attrs, "name", a.Name, "public", a.Public)
	case ads.AddToLibraryArgs:
		attrs = append(attrs, "library_id", a.LibraryID, "bibcodes", len(a.Bibcodes))
	}

	h.logger.Info("Tool executed", attrs...)
}

// searchPapers handles search_papers: validate, normalize, search, render.
func (h *HandlerRegistry) searchPapers(ctx context.Context, args ads.SearchPapersArgs) (string, error) {
	if err := ads.ValidateQuery(args.Query); err != nil {
		return "", err
	}
	result, err := h.client.Search(ctx, ads.NormalizeSearch(args))
	if err != nil {
		return "", err
	}
	return format.SearchResults(args.Query, result.Docs), nil
}

// getPaperDetails handles get_paper_details. An unknown bibcode is a
// successful response with explanatory text, not an error envelope.
func (h *HandlerRegistry) getPaperDetails(ctx context.Context, args ads.GetPaperDetailsArgs) (string, error) {
	if err := ads.ValidateBibcode(args.Bibcode); err != nil {
		return "", err
	}
	paper, err := h.client.GetPaper(ctx, args.Bibcode)
	if apierrors.IsNotFound(err) {
		return fmt.Sprintf("Paper not found: %s", args.Bibcode), nil
	}
	if err != nil {
		return "", err
	}
	return format.PaperDetails(paper), nil
}

// getAuthorPapers handles get_author_papers.
func (h *HandlerRegistry) getAuthorPapers(ctx context.Context, args ads.GetAuthorPapersArgs) (string, error) {
	if err := ads.ValidateAuthor(args.Author); err != nil {
		return "", err
	}
	result, err := h.client.Search(ctx, ads.NormalizeAuthorPapers(args))
	if err != nil {
		return "", err
	}
	return format.AuthorPapers(args.Author, result.Docs), nil
}

// exportBibtex handles export_bibtex. Each bibcode resolves
// independently; unknown ones degrade to a comment line so one bad
// entry cannot sink the batch.
func (h *HandlerRegistry) exportBibtex(ctx context.Context, args ads.ExportBibtexArgs) (string, error) {
	if err := ads.ValidateBibcodes(args.Bibcodes); err != nil {
		return "", err
	}

	bibcodes := ads.CleanBibcodes(args.Bibcodes)
	entries := make([]format.ExportEntry, 0, len(bibcodes))
	for _, bibcode := range bibcodes {
		paper, err := h.client.PaperForExport(ctx, bibcode)
		if apierrors.IsNotFound(err) {
			entries = append(entries, format.ExportEntry{Bibcode: bibcode})
			continue
		}
		if err != nil {
			return "", err
		}
		entries = append(entries, format.ExportEntry{Bibcode: bibcode, Paper: paper})
	}
	return format.BibTeX(entries), nil
}

// getPaperMetrics handles get_paper_metrics.
func (h *HandlerRegistry) getPaperMetrics(ctx context.Context, args ads.GetPaperMetricsArgs) (string, error) {
	if err := ads.ValidateBibcodes(args.Bibcodes); err != nil {
		return "", err
	}
	result, err := h.client.Metrics(ctx, args.Bibcodes)
	if err != nil {
		return "", err
	}
	return format.PaperMetrics(result), nil
}

// getAuthorMetrics handles get_author_metrics. An author with no
// indexed papers short-circuits before the metrics call.
func (h *HandlerRegistry) getAuthorMetrics(ctx context.Context, args ads.GetAuthorMetricsArgs) (string, error) {
	if err := ads.ValidateAuthor(args.Author); err != nil {
		return "", err
	}
	if err := ads.ValidateYears(args.Years); err != nil {
		return "", err
	}
	result, paperCount, err := h.client.AuthorMetrics(ctx, args)
	if err != nil {
		return "", err
	}
	if paperCount == 0 {
		return fmt.Sprintf("No papers found for author: %s", args.Author), nil
	}
	return format.AuthorMetrics(args.Author, args.Years, paperCount, result), nil
}

// listLibraries handles list_libraries.
func (h *HandlerRegistry) listLibraries(ctx context.Context, _ ads.ListLibrariesArgs) (string, error) {
	libs, err := h.client.ListLibraries(ctx)
	if err != nil {
		return "", err
	}
	return format.Libraries(libs), nil
}

// getLibraryPapers handles get_library_papers.
func (h *HandlerRegistry) getLibraryPapers(ctx context.Context, args ads.GetLibraryPapersArgs) (string, error) {
	if err := ads.ValidateLibraryID(args.LibraryID); err != nil {
		return "", err
	}
	name, result, err := h.client.LibraryPapers(ctx, args.LibraryID)
	if err != nil {
		return "", err
	}
	if len(result.Docs) == 0 {
		return format.EmptyLibrary(args.LibraryID), nil
	}
	return format.LibraryPapers(name, result.Docs), nil
}

// createLibrary handles create_library.
func (h *HandlerRegistry) createLibrary(ctx context.Context, args ads.CreateLibraryArgs) (string, error) {
	if err := ads.ValidateLibraryName(args.Name); err != nil {
		return "", err
	}
	libraryID, err := h.client.CreateLibrary(ctx, args.Name, args.Description, args.Public)
	if err != nil {
		return "", err
	}
	return format.CreatedLibrary(args.Name, libraryID), nil
}

// addToLibrary handles add_to_library.
func (h *HandlerRegistry) addToLibrary(ctx context.Context, args ads.AddToLibraryArgs) (string, error) {
	if err := ads.ValidateLibraryID(args.LibraryID); err != nil {
		return "", err
	}
	if err := ads.ValidateBibcodes(args.Bibcodes); err != nil {
		return "", err
	}
	count, err := h.client.AddToLibrary(ctx, args.LibraryID, args.Bibcodes)
	if err != nil {
		return "", err
	}
	return format.AddedToLibrary(count, args.LibraryID), nil
}
