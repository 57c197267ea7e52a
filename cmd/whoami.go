package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudpulse/cloudpulse/internal/aws"
	"github.com/cloudpulse/cloudpulse/internal/ui"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current AWS identity",
	Long: `Display the AWS caller identity the health check would run as.

Equivalent to 'aws sts get-caller-identity'.

Examples:
  cloudpulse whoami
  cloudpulse whoami --profile production`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := aws.NewClient(ctx,
		aws.WithProfile(profile),
		aws.WithRegion(region),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	fmt.Println()
	fmt.Println(ui.HeaderStyle.Render("AWS Identity"))
	fmt.Println(ui.MutedStyle.Render("───────────────────────────────"))

	identity, err := client.CallerIdentity(ctx)
	if err != nil {
		fmt.Println("  " + ui.AlarmStyle.Render("✗ Not authenticated"))
		fmt.Println("  " + ui.HintStyle.Render(err.Error()))
		fmt.Println()
		fmt.Println("  To authenticate, run 'aws configure' or:")
		if profile != "" {
			fmt.Printf("    aws sso login --profile %s\n", profile)
		} else {
			fmt.Println("    aws sso login")
		}
		return nil
	}

	if profile != "" {
		fmt.Printf("  Profile: %s\n", profile)
	}
	fmt.Printf("  Region:  %s\n", region)
	fmt.Println()
	fmt.Printf("  Account: %s\n", identity.Account)
	fmt.Printf("  UserID:  %s\n", identity.UserID)
	fmt.Printf("  ARN:     %s\n", ui.MutedStyle.Render(identity.Arn))

	return nil
}
