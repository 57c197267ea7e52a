package types

// OverallStatus is the single verdict a report run produces.
type OverallStatus string

const (
	StatusHealthy     OverallStatus = "HEALTHY"
	StatusAttention   OverallStatus = "ATTENTION"
	StatusNoResources OverallStatus = "NO_RESOURCES"
	StatusPartial     OverallStatus = "PARTIAL"
)

// Summary holds the aggregate tallies for one report run. It is derived
// purely from the instance and alarm lists and recomputed every run.
//
// Invariants: running + stopped + other == total for instances, and
// ok + alarming never exceeds the alarm total (the remainder is alarms in
// other states such as INSUFFICIENT_DATA).
type Summary struct {
	TotalInstances   int           `json:"total_instances"`
	RunningInstances int           `json:"running_instances"`
	StoppedInstances int           `json:"stopped_instances"`
	OtherInstances   int           `json:"other_instances"`
	TotalAlarms      int           `json:"total_alarms"`
	OKAlarms         int           `json:"ok_alarms"`
	Alarming         int           `json:"alarming_count"`
	OverallStatus    OverallStatus `json:"overall_status"`
}

// OtherAlarms returns the count of alarms in neither OK nor ALARM state.
func (s Summary) OtherAlarms() int {
	return s.TotalAlarms - s.OKAlarms - s.Alarming
}
