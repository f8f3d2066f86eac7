package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// NewViewsCommand creates the views command group.
func NewViewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "views",
		Short: "Work with modeling views",
		Long:  "Run modeling views and inspect their results",
	}

	cmd.AddCommand(newViewsRunCommand())

	return cmd
}

func newViewsRunCommand() *cobra.Command {
	var (
		chunkSize       int
		relationsOutput bool
	)

	cmd := &cobra.Command{
		Use:   "run VIEW_NAME",
		Short: "Run a view and collect its full result",
		Long:  "Run a modeling view, follow the chunked result protocol, and print every CI it returned",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrViewNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			bulk, err := client.Topology().GetAllViewResults(ctx, args[0], chunkSize)
			if err != nil {
				return fmt.Errorf("failed to run view: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(bulk)
			case OutputFormatYAML:
				return printYAML(bulk)
			default:
				if len(bulk.CIs) == 0 {
					fmt.Println("View returned no CIs")

					return nil
				}

				renderCITable(bulk.CIs)

				if relationsOutput && len(bulk.Relations) > 0 {
					fmt.Println()
					renderRelationTable(bulk.Relations)
				}

				fmt.Printf("\n%d CIs, %d relations\n", len(bulk.CIs), len(bulk.Relations))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "chunk size for the result protocol (0 uses the server default)")
	cmd.Flags().BoolVar(&relationsOutput, "relations", false, "also print relations")

	return cmd
}

func renderCITable(cis []ucmdb.CI) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("UCMDB ID", "Type", "Label")

	for _, configurationItem := range cis {
		label := configurationItem.DisplayLabel
		if label == "" {
			label = configurationItem.Label
		}

		_ = table.Append(configurationItem.UCMDBID, configurationItem.Type, truncateCell(label))
	}

	_ = table.Render()
}

func renderRelationTable(relations []ucmdb.Relation) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("UCMDB ID", "Type", "End 1", "End 2")

	for _, relation := range relations {
		_ = table.Append(relation.UCMDBID, relation.Type, relation.End1ID, relation.End2ID)
	}

	_ = table.Render()
}
