package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVolumesCommand creates the volumes command group
func NewVolumesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volumes",
		Short: "Manage block storage volumes",
	}

	cmd.AddCommand(newVolumesListCommand())
	cmd.AddCommand(newVolumesDeleteCommand())

	return cmd
}

func newVolumesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List volumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			volumes, err := client.BlockStorage().ListVolumes(ctx)
			if err != nil {
				return fmt.Errorf("failed to list volumes: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(volumes)
			case "yaml":
				return outputYAML(volumes)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Status", "Size (GB)")

				for _, volume := range volumes {
					_ = table.Append(volume.ID, volume.Name, volume.Status, strconv.Itoa(volume.Size))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newVolumesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete VOLUME_ID",
		Short: "Delete a volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			if err := client.BlockStorage().DeleteVolume(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete volume: %w", err)
			}

			fmt.Printf("Deleted volume %s\n", args[0])

			return nil
		},
	}
}
