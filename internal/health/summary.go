// Package health turns raw instance and alarm records into a classified
// summary with a single overall verdict.
package health

import (
	"github.com/cloudpulse/cloudpulse/pkg/types"
)

// rule maps a predicate over the tallies to an overall status.
type rule struct {
	matches func(s types.Summary) bool
	status  types.OverallStatus
}

// statusRules determine the overall verdict. They are evaluated in order and
// the first match wins: active alarms always dominate instance health, and
// HEALTHY requires both presence and full running state. The order is a
// compatibility contract; do not reorder.
var statusRules = []rule{
	{
		matches: func(s types.Summary) bool { return s.Alarming > 0 },
		status:  types.StatusAttention,
	},
	{
		matches: func(s types.Summary) bool {
			return s.TotalInstances > 0 && s.RunningInstances == s.TotalInstances
		},
		status: types.StatusHealthy,
	},
	{
		matches: func(s types.Summary) bool {
			return s.TotalInstances == 0 && s.TotalAlarms == 0
		},
		status: types.StatusNoResources,
	},
}

// Summarize tallies instances and alarms by state and derives the overall
// status. Empty inputs are valid; both lists empty yields NO_RESOURCES.
func Summarize(instances []types.Instance, alarms []types.Alarm) types.Summary {
	s := types.Summary{
		TotalInstances: len(instances),
		TotalAlarms:    len(alarms),
	}

	for _, inst := range instances {
		switch {
		case inst.IsRunning():
			s.RunningInstances++
		case inst.IsStopped():
			s.StoppedInstances++
		}
	}
	// Everything not running or stopped (pending, stopping, terminated,
	// states we have never seen) lands in the other bucket.
	s.OtherInstances = s.TotalInstances - s.RunningInstances - s.StoppedInstances

	for _, a := range alarms {
		switch {
		case a.IsOK():
			s.OKAlarms++
		case a.IsFiring():
			s.Alarming++
		}
	}

	s.OverallStatus = overallStatus(s)
	return s
}

// overallStatus applies statusRules in order; PARTIAL is the fallthrough
// (some instances present but not all running, and no active alarms).
func overallStatus(s types.Summary) types.OverallStatus {
	for _, r := range statusRules {
		if r.matches(s) {
			return r.status
		}
	}
	return types.StatusPartial
}
