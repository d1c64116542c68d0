package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"docsite/internal/catalog"
)

// handleSearchFiles filters the catalog by name and returns the matches.
func (s *Server) handleSearchFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	var matches []catalog.FileRecord
	for _, group := range s.catalog.Filter(query).OrderedGroups() {
		matches = append(matches, group.Files...)
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No files matching %q.", query)), nil
	}

	return mcp.NewToolResultText(formatMatches(matches)), nil
}

// handleListFiles returns the full tree, one group per section.
func (s *Server) handleListFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groups := s.catalog.OrderedGroups()
	if len(groups) == 0 {
		return mcp.NewToolResultText("The catalog is empty."), nil
	}

	var sb strings.Builder
	for _, group := range groups {
		folder := group.Folder
		if folder == "." {
			folder = "/"
		}
		sb.WriteString(folder + "\n")
		for _, f := range group.Files {
			sb.WriteString(fmt.Sprintf("  %s (%s)\n", f.Path, catalog.DetectLanguage(f.Path)))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetExplanation returns the markdown explanation for one file.
func (s *Server) handleGetExplanation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	record, ok := s.catalog.Lookup(path)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No file %q in the catalog. Use list_files to see available paths.", path,
		)), nil
	}

	if strings.TrimSpace(record.Explanation) == "" {
		return mcp.NewToolResultText(fmt.Sprintf("File %q has no explanation.", path)), nil
	}
	return mcp.NewToolResultText(record.Explanation), nil
}

// handleGetCode returns the raw source code for one file.
func (s *Server) handleGetCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	record, ok := s.catalog.Lookup(path)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No file %q in the catalog. Use list_files to see available paths.", path,
		)), nil
	}

	if record.Code == "" {
		return mcp.NewToolResultText(fmt.Sprintf("File %q has no code recorded.", path)), nil
	}
	return mcp.NewToolResultText(record.Code), nil
}

// formatMatches converts matched records into a text listing optimized for
// AI agent consumption.
func formatMatches(matches []catalog.FileRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d file(s):\n", len(matches)))

	for i, f := range matches {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("Path: %s\n", f.Path))
		sb.WriteString(fmt.Sprintf("Language: %s\n", catalog.DetectLanguage(f.Path)))
		if summary := firstProseLine(f.Explanation); summary != "" {
			sb.WriteString(fmt.Sprintf("Summary: %s\n", summary))
		}
	}

	return sb.String()
}

// firstProseLine returns the first non-empty, non-heading line of a
// markdown explanation.
func firstProseLine(explanation string) string {
	for _, line := range strings.Split(explanation, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
