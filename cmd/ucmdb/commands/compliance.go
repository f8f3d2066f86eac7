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

// NewComplianceCommand creates the compliance command group.
func NewComplianceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compliance",
		Short: "Work with compliance policies and views",
		Long:  "List compliance policies, calculate compliance views, and collect non-compliant CIs",
	}

	cmd.AddCommand(newCompliancePoliciesCommand())
	cmd.AddCommand(newComplianceViewsCommand())
	cmd.AddCommand(newComplianceCalculateCommand())
	cmd.AddCommand(newComplianceNonCompliantCommand())

	return cmd
}

func newCompliancePoliciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List compliance policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			policies, err := client.Policies().GetPolicies(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list policies: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(policies)
			case OutputFormatYAML:
				return printYAML(policies)
			default:
				if len(policies) == 0 {
					fmt.Println("No policies found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Path", "Simple")

				for _, policy := range policies {
					_ = table.Append(policy.Name, truncateCell(policy.Path), strconv.FormatBool(policy.SimplePolicy))
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

func newComplianceViewsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List compliance views",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			views, err := client.Policies().GetComplianceViews(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list compliance views: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(views)
			case OutputFormatYAML:
				return printYAML(views)
			default:
				if len(views) == 0 {
					fmt.Println("No compliance views found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Base View", "Policy Queries")

				for _, view := range views {
					_ = table.Append(view.Name, view.BaseViewName, strconv.Itoa(len(view.PolicyQueries)))
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

func newComplianceCalculateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calculate VIEW_NAME",
		Short: "Calculate a compliance view",
		Long:  "Calculate a compliance view and print the per-status CI counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrViewNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			execution, err := client.Policies().CalculateView(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to calculate view: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(execution)
			case OutputFormatYAML:
				return printYAML(execution)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("CI Type", "Count")

				for _, count := range execution.StatusCounts {
					_ = table.Append(count.CIType, strconv.Itoa(count.Count))
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

func newComplianceNonCompliantCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "non-compliant VIEW_NAME",
		Short: "Collect the non-compliant CIs of a view",
		Long:  "Calculate a compliance view and collect every non-compliant CI across all result chunks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrViewNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			cis, err := client.Policies().GetAllNonCompliant(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to collect non-compliant CIs: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(cis)
			case OutputFormatYAML:
				return printYAML(cis)
			default:
				if len(cis) == 0 {
					fmt.Println("No non-compliant CIs found")

					return nil
				}

				renderCITable(cis)
				fmt.Printf("\n%d non-compliant CIs\n", len(cis))
			}

			return nil
		},
	}
}
