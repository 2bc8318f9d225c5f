package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/osinfra/openstack-mcp/internal/config"
	"github.com/osinfra/openstack-mcp/internal/openstack/client"
	"github.com/osinfra/openstack-mcp/internal/openstack/oserr"
	"github.com/spf13/cobra"
)

// newRootCmd builds the one-shot fetch command. On failure the error
// envelope is printed to stdout, same shape as the MCP tool returns.
func newRootCmd() *cobra.Command {
	var (
		projectID string
		savePath  string
		logLevel  string
	)
	cmd := &cobra.Command{
		Use:   "osinfo <instance-id>",
		Short: "Fetch an OpenStack instance's composite record as JSON",
		Long: `osinfo queries the identity, compute, networking, block-storage and image
services for one instance and prints the merged, normalized record.

Credentials come from the environment (or a .env file): OS_HOST, OS_USERNAME,
OS_PASSWORD, OS_PROJECT_ID, OS_USER_DOMAIN_NAME, OS_VERIFY_SSL,
OS_REQUEST_TIMEOUT. With OS_CLOUD set, missing values are filled from
clouds.yaml.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fail(cmd, err)
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log := config.NewLogger(cfg.LogLevel)

			instanceID := strings.TrimSpace(args[0])
			if instanceID == "" {
				return fail(cmd, oserr.Configuration("instance id must not be empty"))
			}
			creds := cfg.Credentials()
			if projectID != "" {
				creds.ProjectID = projectID
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			osc, err := client.New(creds, client.WithLogger(log))
			if err != nil {
				return fail(cmd, err)
			}
			record, err := osc.GetServerComposite(ctx, instanceID)
			if err != nil {
				return fail(cmd, err)
			}

			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if savePath != "" {
				if err := os.WriteFile(savePath, append(out, '\n'), 0o644); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "failed to save to %s: %s\n", savePath, err)
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", savePath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project/tenant ID overriding OS_PROJECT_ID")
	cmd.Flags().StringVar(&savePath, "save", "", "Optional path to save the JSON output")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Logging level: DEBUG, INFO, WARNING or ERROR")
	return cmd
}

func fail(cmd *cobra.Command, err error) error {
	out, merr := json.MarshalIndent(oserr.NewEnvelope(err), "", "  ")
	if merr == nil {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
