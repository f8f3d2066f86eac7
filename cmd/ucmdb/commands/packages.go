package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewPackagesCommand creates the packages command group. The package manager
// REST surface requires UCMDB 2023.05 or later; on older servers these
// commands fail with a version error.
func NewPackagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Work with deployed packages and content packs",
	}

	cmd.AddCommand(newPackagesListCommand())
	cmd.AddCommand(newPackagesDeleteCommand())
	cmd.AddCommand(newContentPacksCommand())

	return cmd
}

func newPackagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List deployed packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			packages, err := client.Packages().ListPackages(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list packages: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(packages)
			case OutputFormatYAML:
				return printYAML(packages)
			default:
				if len(packages) == 0 {
					fmt.Println("No packages found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Version", "Category", "Factory", "Modified")

				for _, pkg := range packages {
					modified := NotAvailable
					if pkg.LastModifiedTime > 0 {
						modified = time.UnixMilli(pkg.LastModifiedTime).Format("2006-01-02 15:04:05")
					}

					_ = table.Append(
						pkg.Name,
						pkg.Version,
						pkg.Category,
						strconv.FormatBool(pkg.Factory),
						modified,
					)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

func newPackagesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PACKAGE_NAME",
		Short: "Undeploy a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("This will undeploy package %s and remove its resources. Continue? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)

				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Packages().DeletePackage(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete package: %w", err)
			}

			fmt.Printf("Package %s deleted\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newContentPacksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "content-packs",
		Short: "List discovery content packs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			packs, err := client.Packages().ListContentPacks(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list content packs: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(packs)
			case OutputFormatYAML:
				return printYAML(packs)
			default:
				if len(packs) == 0 {
					fmt.Println("No content packs found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Version", "Status", "Progress")

				for _, pack := range packs {
					progress := pack.CPDeploymentProgress
					if pack.CPDeploymentPercentage != "" {
						progress = fmt.Sprintf("%s (%s%%)", progress, pack.CPDeploymentPercentage)
					}

					_ = table.Append(pack.Version, displayStatus(pack.CPStatus), progress)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}
