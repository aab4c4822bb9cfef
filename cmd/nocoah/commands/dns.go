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

// NewDNSCommand creates the dns command group
func NewDNSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS zones and records",
	}

	cmd.AddCommand(newDNSDomainsCommand())
	cmd.AddCommand(newDNSRecordsCommand())

	return cmd
}

func newDNSDomainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List DNS zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			domains, err := client.DNS().ListDomains(ctx)
			if err != nil {
				return fmt.Errorf("failed to list domains: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(domains)
			case "yaml":
				return outputYAML(domains)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "TTL", "Email")

				for _, domain := range domains {
					_ = table.Append(domain.ID, domain.Name, strconv.Itoa(domain.TTL), domain.Email)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newDNSRecordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "records DOMAIN_ID",
		Short: "List records in a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			records, err := client.DNS().ListRecords(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(records)
			case "yaml":
				return outputYAML(records)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Type", "Data", "TTL")

				for _, record := range records {
					_ = table.Append(record.ID, record.Name, record.Type, record.Data, strconv.Itoa(record.TTL))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
