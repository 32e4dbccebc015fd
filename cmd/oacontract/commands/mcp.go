package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/erraggy/oacontract/internal/cliutil"
	"github.com/erraggy/oacontract/internal/mcpserver"
)

// runMCP is replaced in tests.
var runMCP = mcpserver.Run

// HandleMCP starts the MCP server on stdio and blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oacontract mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the generate, graph, and schema tools over MCP (stdio transport).\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  OACONTRACT_CACHE_ENABLED, OACONTRACT_CACHE_MAX_SIZE, OACONTRACT_CACHE_FILE_TTL,\n")
		cliutil.Writef(fs.Output(), "  OACONTRACT_CACHE_CONTENT_TTL, OACONTRACT_CACHE_SWEEP_INTERVAL, OACONTRACT_GRAPH_LIMIT,\n")
		cliutil.Writef(fs.Output(), "  OACONTRACT_MAX_LIMIT, OACONTRACT_MAX_INLINE_SIZE, OACONTRACT_CONCURRENCY\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := runMCP(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
