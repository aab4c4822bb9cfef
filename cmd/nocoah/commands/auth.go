package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoahclient"
)

// NewAuthCommand creates the auth command group
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
		Long:  "Authenticate against the identity service and inspect the session token",
	}

	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthTokenCommand())

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var (
		user     string
		password string
		tenantID string
		region   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to ConoHa",
		Long:  "Exchange API credentials for a token at the identity service",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if user == "" {
				fmt.Print("API user: ")
				user, _ = reader.ReadString('\n')
				user = strings.TrimSpace(user)
			}

			if password == "" {
				fmt.Print("API password: ")
				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = string(bytePassword)
				fmt.Println()
			}

			if tenantID == "" {
				fmt.Print("Tenant ID: ")
				tenantID, _ = reader.ReadString('\n')
				tenantID = strings.TrimSpace(tenantID)
			}

			if region == "" {
				region = "tyo1"
			}

			ctx := context.Background()

			client, err := nocoahclient.NewWithCredentials(ctx, user, password, tenantID, region)
			if err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			fmt.Printf("Successfully authenticated against region %s\n", region)

			if client.TokenAvailable() {
				fmt.Println("Token is valid")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "API user name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "API password")
	cmd.Flags().StringVarP(&tenantID, "tenant", "t", "", "tenant ID")
	cmd.Flags().StringVarP(&region, "region", "r", "", "region identifier (default tyo1)")

	return cmd
}

func newAuthTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the session token",
		Long:  "Authenticate with the resolved credentials and print the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			token, err := client.Token(ctx)
			if err != nil {
				if nocoah.IsUnauthorized(err) {
					return fmt.Errorf("credentials were rejected: %w", err)
				}

				return fmt.Errorf("failed to get token: %w", err)
			}

			fmt.Println(token)

			return nil
		},
	}
}
