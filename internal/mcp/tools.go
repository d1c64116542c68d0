package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchFilesTool defines the search_files MCP tool.
var searchFilesTool = mcp.NewTool("search_files",
	mcp.WithDescription("Search the documentation catalog by file name. Returns matching files with their folder, language, and a short summary."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Case-insensitive substring to match against file names"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

// listFilesTool defines the list_files MCP tool.
var listFilesTool = mcp.NewTool("list_files",
	mcp.WithDescription("List every documented file grouped by folder, in the order the documentation tree shows them."),
)

// getExplanationTool defines the get_explanation MCP tool.
var getExplanationTool = mcp.NewTool("get_explanation",
	mcp.WithDescription("Get the markdown explanation for a specific file in the catalog."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Repository-relative path of the file, as listed by list_files"),
	),
)

// getCodeTool defines the get_code MCP tool.
var getCodeTool = mcp.NewTool("get_code",
	mcp.WithDescription("Get the raw source code for a specific file in the catalog."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Repository-relative path of the file, as listed by list_files"),
	),
)
