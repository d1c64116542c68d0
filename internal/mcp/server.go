// Package mcp exposes the documentation catalog to AI agents over the
// Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"docsite/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes catalog browsing tools.
type Server struct {
	catalog *catalog.Catalog
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over the given catalog.
func NewServer(c *catalog.Catalog) *Server {
	s := &Server{catalog: c}

	s.mcp = server.NewMCPServer(
		"docsite",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchFilesTool, s.handleSearchFiles)
	s.mcp.AddTool(listFilesTool, s.handleListFiles)
	s.mcp.AddTool(getExplanationTool, s.handleGetExplanation)
	s.mcp.AddTool(getCodeTool, s.handleGetCode)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
