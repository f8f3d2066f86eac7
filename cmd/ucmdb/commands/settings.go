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

// NewSettingsCommand creates the settings command group.
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and write infrastructure settings",
	}

	cmd.AddCommand(newSettingsGetCommand())
	cmd.AddCommand(newSettingsSetCommand())

	return cmd
}

func newSettingsGetCommand() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "get SETTING_NAME",
		Short: "Display one infrastructure setting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrSettingNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			setting, err := client.Settings().GetSetting(context.Background(), args[0], locale)
			if err != nil {
				return fmt.Errorf("failed to get setting: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(setting)
			case OutputFormatYAML:
				return printYAML(setting)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Name", setting.Name)
				_ = table.Append("Display Name", setting.DisplayName)
				_ = table.Append("Value", truncateCell(setting.Value))
				_ = table.Append("Default", truncateCell(setting.DefaultValue))
				_ = table.Append("Type", setting.ValueType)
				_ = table.Append("Section", setting.SectionName)
				_ = table.Append("Description", truncateCell(setting.Description))
				_ = table.Render()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "locale for display strings (default en)")

	return cmd
}

func newSettingsSetCommand() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "set SETTING_NAME VALUE",
		Short: "Change one infrastructure setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Settings().SetSetting(context.Background(), args[0], locale, &ucmdb.SettingUpdate{
				Value: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to set setting: %w", err)
			}

			fmt.Printf("Setting %s updated\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "locale for display strings (default en)")

	return cmd
}
