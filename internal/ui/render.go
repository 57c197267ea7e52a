package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/cloudpulse/cloudpulse/pkg/provider"
	"github.com/cloudpulse/cloudpulse/pkg/types"
)

// ruleWidth is the width of the horizontal rule under section titles.
const ruleWidth = 50

// PrintHeader prints the report banner with the run time and region.
func PrintHeader(region string, now time.Time) {
	fmt.Println()
	fmt.Println(HeaderStyle.Render("AWS Resource Health Report"))
	fmt.Println(MutedStyle.Render(strings.Repeat("─", ruleWidth)))
	fmt.Printf("  Time:    %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Region:  %s\n", region)
}

// printSection prints a section title with a rule under it.
func printSection(title string) {
	fmt.Println()
	fmt.Println(HeaderStyle.Render(title))
	fmt.Println(MutedStyle.Render(strings.Repeat("─", ruleWidth)))
}

// printFetchError reports a failed resource fetch inside a section. Auth
// failures carry a remediation hint; everything else surfaces the
// provider's message.
func printFetchError(resource string, err error) {
	fmt.Println(AlarmStyle.Render(fmt.Sprintf("✗ could not fetch %s", resource)))
	fmt.Println(HintStyle.Render("  " + err.Error()))
	if errors.Is(err, provider.ErrAuthFailed) {
		fmt.Println(HintStyle.Render("  run 'aws configure' or 'aws sso login' to set up credentials"))
	}
}

// PrintInstances renders the instance section. A non-nil fetchErr replaces
// the listing with the failure and its remediation hint.
func PrintInstances(instances []types.Instance, fetchErr error) {
	printSection("EC2 Instance Status")

	if fetchErr != nil {
		printFetchError("EC2 instances", fetchErr)
		return
	}

	if len(instances) == 0 {
		fmt.Println(MutedStyle.Render("No EC2 instances found in this region."))
		return
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("ID", "Name", "Type", "AZ", "State")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, inst := range instances {
		tbl.AddRow(
			inst.ID,
			truncate(inst.Name, 30),
			inst.Type,
			inst.AZ,
			InstanceIndicator(inst.State)+" "+string(inst.State),
		)
	}

	tbl.Print()
}

// PrintAlarms renders the alarm section. A non-nil fetchErr replaces the
// listing with the failure and its remediation hint.
func PrintAlarms(alarms []types.Alarm, fetchErr error) {
	printSection("CloudWatch Alarm Status")

	if fetchErr != nil {
		printFetchError("CloudWatch alarms", fetchErr)
		return
	}

	if len(alarms) == 0 {
		fmt.Println(MutedStyle.Render("No CloudWatch alarms configured in this region."))
		return
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Name", "Metric", "State", "Description")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, alarm := range alarms {
		tbl.AddRow(
			truncate(alarm.Name, 40),
			alarm.Metric,
			AlarmIndicator(alarm.State)+" "+string(alarm.State),
			truncate(alarm.Description, 40),
		)
	}

	tbl.Print()
}

// PrintSummary renders the tallies and the overall verdict.
func PrintSummary(s types.Summary) {
	printSection("Summary")

	var instParts []string
	if s.RunningInstances > 0 {
		instParts = append(instParts, RunningStyle.Render(fmt.Sprintf("%d running", s.RunningInstances)))
	}
	if s.StoppedInstances > 0 {
		instParts = append(instParts, StoppedStyle.Render(fmt.Sprintf("%d stopped", s.StoppedInstances)))
	}
	if s.OtherInstances > 0 {
		instParts = append(instParts, PendingStyle.Render(fmt.Sprintf("%d other", s.OtherInstances)))
	}
	fmt.Println(summaryLine("Instances", s.TotalInstances, instParts))

	var alarmParts []string
	if s.OKAlarms > 0 {
		alarmParts = append(alarmParts, RunningStyle.Render(fmt.Sprintf("%d ok", s.OKAlarms)))
	}
	if s.Alarming > 0 {
		alarmParts = append(alarmParts, AlarmStyle.Render(fmt.Sprintf("%d in alarm", s.Alarming)))
	}
	if other := s.OtherAlarms(); other > 0 {
		alarmParts = append(alarmParts, PendingStyle.Render(fmt.Sprintf("%d other", other)))
	}
	fmt.Println(summaryLine("Alarms", s.TotalAlarms, alarmParts))

	fmt.Println()
	fmt.Println("  " + VerdictLine(s.OverallStatus))
}

// summaryLine formats one tally line, e.g.
// "  Instances    3 total (2 running, 1 stopped)".
func summaryLine(label string, total int, parts []string) string {
	line := fmt.Sprintf("  %s%d total", padRight(label, 12), total)
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, ", ") + ")"
	}
	return line
}

// VerdictLine renders the overall verdict for the console.
func VerdictLine(status types.OverallStatus) string {
	switch status {
	case types.StatusAttention:
		return AlarmStyle.Render("▲ ATTENTION: active alarms need investigation")
	case types.StatusHealthy:
		return RunningStyle.Render("● All systems healthy")
	case types.StatusNoResources:
		return MutedStyle.Render("○ No resources found to monitor")
	default:
		return PendingStyle.Render("◐ Some instances are not running")
	}
}

// PrintSaved confirms where the report document landed.
func PrintSaved(path string) {
	fmt.Println()
	fmt.Println("Report saved to: " + HeaderStyle.Render(path))
}

// PrintSaveError reports a report file that could not be written. The
// console report above it already rendered, so this is a warning line, not
// a run failure.
func PrintSaveError(path string, err error) {
	fmt.Println()
	fmt.Println(AlarmStyle.Render(fmt.Sprintf("✗ could not save report to %s", path)))
	fmt.Println(HintStyle.Render("  " + err.Error()))
}
