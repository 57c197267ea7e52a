package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cloudpulse/cloudpulse/internal/config"
)

// DefaultRegion is used when no region is configured anywhere else.
const DefaultRegion = "eu-west-1"

var (
	// Global flags
	profile string
	region  string
	verbose bool
)

// exitCode is what Execute exits with after a clean run. runCheck raises it
// under --strict.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "cloudpulse",
	Short: "Cloudpulse - AWS resource health reporter",
	Long: `Cloudpulse checks the health of AWS resources in one region and prints a
human-readable report: every EC2 instance with its lifecycle state, every
CloudWatch alarm with its current state, and an overall verdict.

Running cloudpulse with no subcommand performs the health check.

Examples:
  cloudpulse                           # Check eu-west-1 (the default region)
  cloudpulse --region us-east-1        # Check a specific region
  cloudpulse --output report.json      # Also persist the report as JSON
  cloudpulse --strict                  # Exit 2 when the verdict is ATTENTION
  cloudpulse whoami                    # Show the AWS identity in use
  cloudpulse config set region us-east-1`,
	RunE: runCheck,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func init() {
	cobra.OnInitialize(initConfig)

	//Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to check")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
}

func initConfig() {
	// A local .env can carry AWS_* variables during development.
	_ = godotenv.Load()

	// Read from environment variables
	viper.SetEnvPrefix("CLOUDPULSE")
	viper.AutomaticEnv()

	// Priority for profile: --profile flag > CLOUDPULSE_PROFILE env >
	// ~/.cloudpulse/config.yaml > AWS_PROFILE env
	profile = viper.GetString("profile")
	if profile == "" {
		if saved := config.GetSavedProfile(); saved != "" {
			profile = saved
		} else {
			profile = os.Getenv("AWS_PROFILE")
		}
	}

	// Priority for region: --region flag > CLOUDPULSE_REGION env >
	// ~/.cloudpulse/config.yaml > AWS env > built-in default
	region = viper.GetString("region")
	if region == "" {
		region = config.GetSavedRegion()
	}
	if region == "" {
		region = os.Getenv("AWS_REGION")
		if region == "" {
			region = os.Getenv("AWS_DEFAULT_REGION")
		}
	}
	if region == "" {
		region = DefaultRegion
	}

	// Priority for output: --output flag > ~/.cloudpulse/config.yaml
	if outputPath == "" {
		outputPath = config.GetSavedOutput()
	}
}

// newLogger builds the stderr diagnostic logger. The report itself goes to
// stdout and is never routed through the logger.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
