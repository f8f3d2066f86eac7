package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/kwpaschal/ucmdb-rest/internal/auth"
	"github.com/kwpaschal/ucmdb-rest/internal/constants"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdbclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		server   string
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a UCMDB server",
		Long:  "Authenticate against a UCMDB server and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if server == "" {
				server = viper.GetString("server")
			}

			if server == "" {
				fmt.Print("Server (hostname or URL): ")
				server, _ = reader.ReadString('\n')
				server = strings.TrimSpace(server)
			}

			if server == "" {
				return ErrServerRequired
			}

			if username == "" {
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			if username == "" || password == "" {
				return ucmdb.ErrCredentialsRequired
			}

			client, err := ucmdbclient.New(context.Background(), &ucmdb.Config{
				Endpoint:      server,
				Username:      username,
				Password:      password,
				SkipTLSVerify: viper.GetBool("skip-ssl-validation"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials by resolving the server version; this
			// also primes the token manager.
			ctx := context.Background()

			info, err := client.System().GetVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to server: %w", err)
			}

			config := &CLIConfig{Server: server, Username: username}

			if withTokens, ok := client.(interface{ GetTokenManager() auth.TokenManager }); ok {
				if manager := withTokens.GetTokenManager(); manager != nil {
					token, err := manager.GetToken(ctx)
					if err == nil {
						config.Token = token
						config.TokenExpiresAt = time.Now().Add(constants.TokenLifetime)
					}
				}
			}

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("Logged in to %s (%s %s)\n", server, info.ProductName, info.ContentPackVersion)

			return nil
		},
	}

	cmd.Flags().StringVarP(&server, "server", "s", "", "UCMDB server hostname or URL")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted if not provided)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""
			config.TokenExpiresAt = time.Time{}

			err := saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
