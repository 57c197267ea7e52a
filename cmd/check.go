package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloudpulse/cloudpulse/internal/aws"
	"github.com/cloudpulse/cloudpulse/internal/health"
	"github.com/cloudpulse/cloudpulse/internal/report"
	"github.com/cloudpulse/cloudpulse/internal/ui"
	"github.com/cloudpulse/cloudpulse/pkg/provider"
	"github.com/cloudpulse/cloudpulse/pkg/types"
)

var (
	// Check flags
	outputPath string
	strict     bool
)

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save the report to a JSON file")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit 2 when the verdict is ATTENTION or a fetch failed")
}

// runCheck performs the health check and prints the report. A failed fetch
// degrades that section to empty instead of aborting, so one revoked
// permission still yields a report for everything else.
func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	ui.PrintHeader(region, time.Now())

	client, err := aws.NewClient(ctx,
		aws.WithProfile(profile),
		aws.WithRegion(region),
		aws.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	var fetcher provider.Fetcher = client
	degraded := false

	// Instances before alarms: the console order is part of the report.
	instances, err := fetcher.ListInstances(ctx)
	if err != nil {
		logger.Warn("instance check failed", zap.Error(err))
		degraded = true
		instances = nil
	}
	ui.PrintInstances(instances, err)

	alarms, err := fetcher.ListAlarms(ctx)
	if err != nil {
		logger.Warn("alarm check failed", zap.Error(err))
		degraded = true
		alarms = nil
	}
	ui.PrintAlarms(alarms, err)

	summary := health.Summarize(instances, alarms)
	ui.PrintSummary(summary)

	if outputPath != "" {
		doc := report.New(client.Region(), instances, alarms, summary)
		if err := doc.Save(outputPath); err != nil {
			logger.Error("failed to save report", zap.String("path", outputPath), zap.Error(err))
			ui.PrintSaveError(outputPath, err)
			degraded = true
		} else {
			ui.PrintSaved(outputPath)
		}
	}

	if strict {
		exitCode = strictExitCode(degraded, summary)
	}

	return nil
}

// strictExitCode is the --strict policy: exit 2 when the verdict is
// ATTENTION or the run degraded (a fetch fell back to an empty list, or the
// report file could not be written), so pipelines can act on the outcome
// without parsing the report text.
func strictExitCode(degraded bool, s types.Summary) int {
	if degraded || s.OverallStatus == types.StatusAttention {
		return 2
	}
	return 0
}
