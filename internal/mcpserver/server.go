// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes contract generation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oacontract"
)

const serverInstructions = `oacontract MCP server: generates ts-rest contracts with zod validators from OpenAPI 3.0 documents and explains how component schemas depend on each other.

Configuration: defaults are configurable via OACONTRACT_* environment variables set in your MCP client config.

Key settings:
- OACONTRACT_CACHE_ENABLED (default: true): disable document caching entirely
- OACONTRACT_CACHE_FILE_TTL (default: 15m): cache TTL for local files
- OACONTRACT_GRAPH_LIMIT (default: 100): default result limit for the graph tool
- OACONTRACT_MAX_INLINE_SIZE (default: 10MiB): largest accepted inline document
- OACONTRACT_CONCURRENCY (default: GOMAXPROCS): parallel compilation limit

Caching: parsed documents are cached per session. File entries use path+mtime as key, so they are invalidated on change.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oacontract", Version: oacontract.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a TypeScript ts-rest contract with zod validators from an OpenAPI 3.0 document. Returns the module source inline, or writes it to output and returns a summary. Issues list parts of the document the contract leaves out (default responses, cookie parameters) and schema names that collide.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "graph",
		Description: "List the component schemas of an OpenAPI 3.0 document in dependency order: every schema appears after the schemas it references. Each node carries its generated identifier and direct dependencies. Filter by name (supports * and ? globs). Use offset/limit to paginate; the default limit is configurable via OACONTRACT_GRAPH_LIMIT.",
	}, handleGraph)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema",
		Description: "Compile a single component schema to its zod validator expression. References to other component schemas appear as their identifiers; the dependencies field names them.",
	}, handleSchema)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.GraphLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.GraphLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlobName never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlobName matches name against pattern case-insensitively. Patterns
// without wildcards must match exactly.
func matchGlobName(name, pattern string) bool {
	if strings.ContainsAny(pattern, "*?[") {
		matched, err := filepath.Match(strings.ToLower(pattern), strings.ToLower(name))
		return err == nil && matched
	}
	return strings.EqualFold(name, pattern)
}
