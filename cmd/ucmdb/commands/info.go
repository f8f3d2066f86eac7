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

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display server version information",
		Long:  "Display version and build information for the targeted UCMDB server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			info, err := client.System().GetVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to get server version: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(info)
			case OutputFormatYAML:
				return printYAML(info)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Product", info.ProductName)
				_ = table.Append("Server Version", info.FullServerVersion)
				_ = table.Append("Server Build", info.ServerBuildNumber)
				_ = table.Append("Content Pack", info.ContentPackVersion)
				_ = table.Append("Content Pack Build", info.ContentPackBuildNumber)
				_ = table.Render()
			}

			return nil
		},
	}
}

// NewPingCommand creates the ping command.
func NewPingCommand() *cobra.Command {
	var (
		writer bool
		reader bool
	)

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check server availability",
		Long:  "Check that the targeted UCMDB server is up and reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			status, err := client.System().Ping(context.Background(), writer, reader)
			if err != nil {
				return fmt.Errorf("server is not available: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(status)
			case OutputFormatYAML:
				return printYAML(status)
			default:
				message := status.Status.Message
				if message == "" {
					message = status.Status.ReasonPhrase
				}

				fmt.Printf("Server is up: %s\n", message)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&writer, "writer", false, "require the writer server specifically")
	cmd.Flags().BoolVar(&reader, "reader", false, "require the reader server specifically")

	return cmd
}

// NewLicenseCommand creates the license command.
func NewLicenseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "license",
		Short: "Display the server license report",
		Long:  "Display license counts and consumption for the targeted UCMDB server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			report, err := client.System().GetLicenseReport(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get license report: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(report)
			case OutputFormatYAML:
				return printYAML(report)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Full Servers", strconv.Itoa(report.FullServerCount))
				_ = table.Append("Basic Servers", strconv.Itoa(report.BasicServerCount))
				_ = table.Append("License Units Used", fmt.Sprintf("%d %s", report.TotalLicenseUnit, report.UsedUnit))
				_ = table.Append("MDRs", fmt.Sprintf("%d of %d", report.UsedMDR, report.TotalMDR))
				_ = table.Append("Probes", fmt.Sprintf("%d of %d", report.UsedProbes, report.MaxProbes))
				_ = table.Append("Remaining Days", strconv.Itoa(report.RemainingDays))
				_ = table.Append("Operational", strconv.FormatBool(report.Operational))
				_ = table.Render()
			}

			return nil
		},
	}
}
