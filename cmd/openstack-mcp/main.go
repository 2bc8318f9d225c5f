package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/osinfra/openstack-mcp/internal/config"
	"github.com/osinfra/openstack-mcp/internal/tool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := config.NewLogger(cfg.LogLevel)

	server := tool.NewServer(cfg, log)

	// MCP_PORT=0 selects stdio for clients that spawn the server directly.
	if cfg.MCPPort == 0 {
		log.Info("starting openstack-mcp", "transport", "stdio")
		if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	addr := fmt.Sprintf("%s:%d", cfg.MCPHost, cfg.MCPPort)
	handler := mcp.NewSSEHandler(func(*http.Request) *mcp.Server { return server })
	log.Info("starting openstack-mcp", "addr", addr, "transport", "sse")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
