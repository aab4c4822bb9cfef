package commands

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewObjectsCommand creates the objects command group
func NewObjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objects",
		Short: "Manage object storage",
		Long:  "List containers and objects, and transfer object data",
	}

	cmd.AddCommand(newObjectsContainersCommand())
	cmd.AddCommand(newObjectsListCommand())
	cmd.AddCommand(newObjectsUploadCommand())
	cmd.AddCommand(newObjectsDownloadCommand())

	return cmd
}

func newObjectsContainersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "containers",
		Short: "List containers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			containers, err := client.ObjectStorage().ListContainers(ctx)
			if err != nil {
				return fmt.Errorf("failed to list containers: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(containers)
			case "yaml":
				return outputYAML(containers)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Objects", "Bytes")

				for _, container := range containers {
					_ = table.Append(container.Name,
						strconv.FormatInt(container.Count, 10),
						strconv.FormatInt(container.Bytes, 10))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newObjectsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list CONTAINER",
		Short: "List objects in a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			objects, err := client.ObjectStorage().ListObjects(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list objects: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(objects)
			case "yaml":
				return outputYAML(objects)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Bytes", "Content Type")

				for _, object := range objects {
					_ = table.Append(object.Name, strconv.FormatInt(object.Bytes, 10), object.ContentType)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newObjectsUploadCommand() *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "upload CONTAINER FILE",
		Short: "Upload a file to a container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, path := args[0], args[1]

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer file.Close()

			if contentType == "" {
				contentType = mime.TypeByExtension(filepath.Ext(path))
				if contentType == "" {
					contentType = "application/octet-stream"
				}
			}

			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			object := filepath.Base(path)

			err = client.ObjectStorage().UploadObject(ctx, container, object, contentType, file)
			if err != nil {
				return fmt.Errorf("failed to upload object: %w", err)
			}

			fmt.Printf("Uploaded %s to %s/%s\n", path, container, object)

			return nil
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "", "content type (default derived from the file extension)")

	return cmd
}

func newObjectsDownloadCommand() *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "download CONTAINER OBJECT",
		Short: "Download an object to a local file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, object := args[0], args[1]

			if destination == "" {
				destination = filepath.Base(object)
			}

			file, err := os.Create(destination)
			if err != nil {
				return fmt.Errorf("failed to create file: %w", err)
			}
			defer file.Close()

			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			err = client.ObjectStorage().DownloadObject(ctx, container, object, func(chunk []byte) error {
				_, writeErr := file.Write(chunk)

				return writeErr
			})
			if err != nil {
				return fmt.Errorf("failed to download object: %w", err)
			}

			fmt.Printf("Downloaded %s/%s to %s\n", container, object, destination)

			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "output-file", "f", "", "destination path (default is the object name)")

	return cmd
}
