// Package tool registers the composite fetch as an MCP tool. It is the
// outermost boundary of the operation: every failure, expected or not,
// comes back as the error envelope rather than crashing the server.
package tool

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	uuid "github.com/hashicorp/go-uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/osinfra/openstack-mcp/internal/config"
	"github.com/osinfra/openstack-mcp/internal/openstack/client"
	"github.com/osinfra/openstack-mcp/internal/openstack/oserr"
)

type GetServerInput struct {
	InstanceID string `json:"instance_id" jsonschema:"OpenStack server (instance) ID to fetch"`
	ProjectID  string `json:"project_id,omitempty" jsonschema:"Project/tenant ID to scope the token (optional)"`
	// Region is accepted for forward compatibility but unused with fixed
	// per-service ports.
	Region string `json:"region,omitempty" jsonschema:"Region name (optional; ignored)"`
}

// NewServer builds the MCP server with all tools registered.
func NewServer(cfg *config.Config, log *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "openstack-mcp",
		Version: "0.1.0",
	}, &mcp.ServerOptions{
		Instructions: "Read-only OpenStack instance lookups. Call get_server_by_id " +
			"with an instance UUID to retrieve a normalized record covering status, " +
			"networking, volumes, image and placement-group data.",
	})

	mcp.AddTool(server, &mcp.Tool{
		Name: "get_server_by_id",
		Description: "Retrieve OpenStack VM details by instance_id. " +
			"Inputs: instance_id (required), project_id (optional). " +
			"Returns normalized JSON with server status, networking (IPs, allowed pairs), volumes, and metadata.",
	}, handler(cfg, log))
	return server
}

func handler(cfg *config.Config, log *slog.Logger) mcp.ToolHandlerFor[GetServerInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetServerInput) (*mcp.CallToolResult, any, error) {
		return nil, GetServerByID(ctx, cfg, log, in), nil
	}
}

// GetServerByID runs one composite fetch and returns either the normalized
// record or the failure envelope. It never returns an error: tool-level
// failures are data for the caller, and panics are recovered into an
// UnexpectedError envelope.
func GetServerByID(ctx context.Context, cfg *config.Config, log *slog.Logger, in GetServerInput) (out any) {
	requestID, _ := uuid.GenerateUUID()
	log = log.With("request_id", requestID)
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic during composite fetch", "panic", r)
			out = oserr.NewEnvelope(fmt.Errorf("panic: %v", r))
		}
	}()

	instanceID := strings.TrimSpace(in.InstanceID)
	if instanceID == "" {
		return oserr.NewEnvelope(oserr.Configuration("instance_id must not be empty"))
	}

	creds := cfg.Credentials()
	if in.ProjectID != "" {
		creds.ProjectID = in.ProjectID
	}

	osc, err := client.New(creds, client.WithLogger(log))
	if err != nil {
		log.Error("client construction failed", "error", err)
		return oserr.NewEnvelope(err)
	}
	record, err := osc.GetServerComposite(ctx, instanceID)
	if err != nil {
		log.Error("composite fetch failed", "instance_id", instanceID, "error", err)
		return oserr.NewEnvelope(err)
	}
	log.Info("composite fetch done", "instance_id", instanceID)
	return record
}
