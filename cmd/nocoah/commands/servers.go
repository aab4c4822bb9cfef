package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewServersCommand creates the servers command group
func NewServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Manage compute servers",
		Long:  "List, inspect, and control compute servers (VPS)",
	}

	cmd.AddCommand(newServersListCommand())
	cmd.AddCommand(newServersShowCommand())
	cmd.AddCommand(newServersActionCommand("start", "Start a stopped server", func(ctx context.Context, client serverActor, id string) error {
		return client.StartServer(ctx, id)
	}))
	cmd.AddCommand(newServersActionCommand("stop", "Stop a running server", func(ctx context.Context, client serverActor, id string) error {
		return client.StopServer(ctx, id)
	}))
	cmd.AddCommand(newServersActionCommand("reboot", "Reboot a server", func(ctx context.Context, client serverActor, id string) error {
		return client.RebootServer(ctx, id)
	}))

	return cmd
}

type serverActor interface {
	StartServer(ctx context.Context, serverID string) error
	StopServer(ctx context.Context, serverID string) error
	RebootServer(ctx context.Context, serverID string) error
}

func newServersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			servers, err := client.Compute().ListServers(ctx)
			if err != nil {
				return fmt.Errorf("failed to list servers: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(servers)
			case "yaml":
				return outputYAML(servers)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Status")

				for _, server := range servers {
					_ = table.Append(server.ID, server.Name, server.Status)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newServersShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show SERVER_ID",
		Short: "Show server details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			server, err := client.Compute().GetServer(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get server: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(server)
			case "yaml":
				return outputYAML(server)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", server.ID)
				_ = table.Append("Name", server.Name)
				_ = table.Append("Status", server.Status)

				if !server.Created.IsZero() {
					_ = table.Append("Created", server.Created.String())
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newServersActionCommand(action, short string, run func(context.Context, serverActor, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   action + " SERVER_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			if err := run(ctx, client.Compute(), args[0]); err != nil {
				return fmt.Errorf("failed to %s server: %w", action, err)
			}

			fmt.Printf("Requested %s for server %s\n", action, args[0])

			return nil
		},
	}
}
