package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudpulse/cloudpulse/pkg/types"
)

func instancesOf(states ...types.InstanceState) []types.Instance {
	var out []types.Instance
	for i, s := range states {
		out = append(out, types.Instance{
			ID:    "i-" + string(rune('a'+i)),
			State: s,
		})
	}
	return out
}

func alarmsOf(states ...types.AlarmState) []types.Alarm {
	var out []types.Alarm
	for i, s := range states {
		out = append(out, types.Alarm{
			Name:  "alarm-" + string(rune('a'+i)),
			State: s,
		})
	}
	return out
}

func TestSummarize_Partial(t *testing.T) {
	instances := instancesOf(types.InstanceRunning, types.InstanceRunning, types.InstanceStopped)

	s := Summarize(instances, nil)

	assert.Equal(t, 3, s.TotalInstances)
	assert.Equal(t, 2, s.RunningInstances)
	assert.Equal(t, 1, s.StoppedInstances)
	assert.Equal(t, 0, s.OtherInstances)
	assert.Equal(t, types.StatusPartial, s.OverallStatus)
}

func TestSummarize_Healthy(t *testing.T) {
	instances := instancesOf(types.InstanceRunning, types.InstanceRunning)

	s := Summarize(instances, nil)

	assert.Equal(t, types.StatusHealthy, s.OverallStatus)
}

func TestSummarize_NoResources(t *testing.T) {
	s := Summarize(nil, nil)

	assert.Equal(t, 0, s.TotalInstances)
	assert.Equal(t, 0, s.TotalAlarms)
	assert.Equal(t, types.StatusNoResources, s.OverallStatus)
}

func TestSummarize_AlarmsDominateHealthyInstances(t *testing.T) {
	instances := instancesOf(types.InstanceRunning)
	alarms := alarmsOf(types.AlarmAlarm)

	s := Summarize(instances, alarms)

	assert.Equal(t, types.StatusAttention, s.OverallStatus)
}

func TestSummarize_AlarmsDominateRegardlessOfInstances(t *testing.T) {
	cases := []struct {
		name      string
		instances []types.Instance
	}{
		{"no instances", nil},
		{"all running", instancesOf(types.InstanceRunning, types.InstanceRunning)},
		{"all stopped", instancesOf(types.InstanceStopped)},
		{"mixed", instancesOf(types.InstanceRunning, types.InstancePending)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Summarize(tc.instances, alarmsOf(types.AlarmOK, types.AlarmAlarm))
			assert.Equal(t, types.StatusAttention, s.OverallStatus)
		})
	}
}

func TestSummarize_OKAlarmsDoNotTriggerAttention(t *testing.T) {
	instances := instancesOf(types.InstanceRunning)
	alarms := alarmsOf(types.AlarmOK, types.AlarmInsufficientData)

	s := Summarize(instances, alarms)

	assert.Equal(t, 2, s.TotalAlarms)
	assert.Equal(t, 1, s.OKAlarms)
	assert.Equal(t, 0, s.Alarming)
	assert.Equal(t, 1, s.OtherAlarms())
	assert.Equal(t, types.StatusHealthy, s.OverallStatus)
}

func TestSummarize_AlarmsOnlyNoInstances(t *testing.T) {
	// Instances absent but alarms configured: not NO_RESOURCES, and with
	// nothing firing the verdict falls through to PARTIAL.
	s := Summarize(nil, alarmsOf(types.AlarmOK))

	assert.Equal(t, types.StatusPartial, s.OverallStatus)
}

func TestSummarize_UnknownStatesCountAsOther(t *testing.T) {
	instances := instancesOf(types.InstanceRunning, "rebooting", types.InstanceTerminated)
	alarms := alarmsOf(types.AlarmOK, "PENDING_CONFIRMATION")

	s := Summarize(instances, alarms)

	assert.Equal(t, 3, s.TotalInstances)
	assert.Equal(t, 1, s.RunningInstances)
	assert.Equal(t, 0, s.StoppedInstances)
	assert.Equal(t, 2, s.OtherInstances)
	assert.Equal(t, 1, s.OtherAlarms())

	// The unmapped state is preserved verbatim on the record.
	assert.Equal(t, types.InstanceState("rebooting"), instances[1].State)
}

func TestSummarize_CountInvariants(t *testing.T) {
	cases := []struct {
		name      string
		instances []types.Instance
		alarms    []types.Alarm
	}{
		{"empty", nil, nil},
		{"instances only", instancesOf(types.InstanceRunning, types.InstanceStopped, types.InstancePending), nil},
		{"alarms only", nil, alarmsOf(types.AlarmOK, types.AlarmAlarm, types.AlarmInsufficientData)},
		{
			"mixed with unknowns",
			instancesOf(types.InstanceRunning, "limbo", types.InstanceStopping, types.InstanceStopped),
			alarmsOf(types.AlarmAlarm, "weird", types.AlarmOK),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Summarize(tc.instances, tc.alarms)
			assert.Equal(t, s.TotalInstances, s.RunningInstances+s.StoppedInstances+s.OtherInstances)
			assert.Equal(t, s.TotalAlarms, s.OKAlarms+s.Alarming+s.OtherAlarms())
		})
	}
}

func TestOverallStatus_PriorityOrder(t *testing.T) {
	// The rule order itself is the contract: ATTENTION before HEALTHY
	// before NO_RESOURCES before the PARTIAL fallthrough.
	cases := []struct {
		name string
		s    types.Summary
		want types.OverallStatus
	}{
		{"alarming wins over full running", types.Summary{TotalInstances: 2, RunningInstances: 2, TotalAlarms: 1, Alarming: 1}, types.StatusAttention},
		{"alarming wins over empty", types.Summary{TotalAlarms: 1, Alarming: 1}, types.StatusAttention},
		{"all running is healthy", types.Summary{TotalInstances: 4, RunningInstances: 4}, types.StatusHealthy},
		{"nothing anywhere", types.Summary{}, types.StatusNoResources},
		{"not all running", types.Summary{TotalInstances: 2, RunningInstances: 1, StoppedInstances: 1}, types.StatusPartial},
		{"zero instances but alarms exist", types.Summary{TotalAlarms: 2, OKAlarms: 2}, types.StatusPartial},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, overallStatus(tc.s))
		})
	}
}
