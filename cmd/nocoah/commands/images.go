package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewImagesCommand creates the images command group
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage images",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List images",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			images, err := client.Image().ListImages(ctx)
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(images)
			case "yaml":
				return outputYAML(images)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Status", "Visibility")

				for _, image := range images {
					_ = table.Append(image.ID, image.Name, image.Status, image.Visibility)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	})

	return cmd
}
