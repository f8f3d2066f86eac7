package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewProbesCommand creates the probes command group.
func NewProbesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probes",
		Short: "Work with data flow probes",
		Long:  "List probes, inspect their ranges, and check their runtime status",
	}

	cmd.AddCommand(newProbesListCommand())
	cmd.AddCommand(newProbesRangesCommand())
	cmd.AddCommand(newProbesStatusCommand())

	return cmd
}

// displayStatus renders server status constants like "CONNECTED" in a
// friendlier casing for tables.
func displayStatus(status string) string {
	if status == "" {
		return NotAvailable
	}

	return cases.Title(language.English).String(strings.ToLower(status))
}

func newProbesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List data flow probes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			probes, err := client.DataFlow().ListProbes(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list probes: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(probes)
			case OutputFormatYAML:
				return printYAML(probes)
			default:
				if len(probes) == 0 {
					fmt.Println("No probes found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Domain", "Version", "Status", "Ranges", "IPs", "Compatibility")

				for _, probe := range probes {
					_ = table.Append(
						probe.ProbeName,
						probe.DomainName,
						probe.ProbeVersion,
						displayStatus(probe.ProbeStatus),
						strconv.Itoa(probe.RangeCount),
						strconv.Itoa(probe.IPCount),
						displayStatus(probe.VersionCompatibility),
					)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

func newProbesRangesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges PROBE_NAME",
		Short: "List the IP ranges of a probe",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrProbeNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			probe, err := client.DataFlow().GetProbe(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get probe: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(probe.Ranges)
			case OutputFormatYAML:
				return printYAML(probe.Ranges)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Range", "Description", "Excluded")

				for _, group := range probe.Ranges {
					for _, probeRange := range group {
						_ = table.Append(
							probeRange.Range,
							truncateCell(probeRange.Description),
							strconv.FormatBool(probeRange.Excluded),
						)
					}
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

func newProbesStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the probe runtime dashboard",
		Long:  "Show the probe runtime dashboard. Requires UCMDB 24.2 or later.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			status, err := client.DataFlow().ProbeStatus(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get probe status: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return printYAML(status)
			default:
				// The dashboard payload is untyped and release-dependent, so
				// the table output falls back to JSON.
				return printJSON(status)
			}
		},
	}
}
