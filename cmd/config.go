package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudpulse/cloudpulse/internal/config"
	"github.com/cloudpulse/cloudpulse/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage saved defaults",
	Long: `View or change the defaults saved in ~/.cloudpulse/config.yaml.

Saved keys: region, profile, output.

Examples:
  cloudpulse config view
  cloudpulse config set region us-east-1
  cloudpulse config set profile production
  cloudpulse config set output report.json`,
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show saved defaults",
	RunE:  runConfigView,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Save a default (region, profile, or output)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigView(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.HeaderStyle.Render("Saved defaults"))
	fmt.Println(ui.MutedStyle.Render("───────────────────────────────"))
	fmt.Printf("  File:    %s\n", ui.MutedStyle.Render(config.GetConfigPath()))
	fmt.Printf("  region:  %s\n", orUnset(cfg.AWSRegion))
	fmt.Printf("  profile: %s\n", orUnset(cfg.AWSProfile))
	fmt.Printf("  output:  %s\n", orUnset(cfg.Output))

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := config.Set(args[0], args[1]); err != nil {
		return err
	}

	fmt.Printf("Saved %s = %s to %s\n", args[0], args[1], config.GetConfigPath())
	return nil
}

func orUnset(v string) string {
	if v == "" {
		return ui.HintStyle.Render("(not set)")
	}
	return v
}
