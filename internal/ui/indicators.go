package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cloudpulse/cloudpulse/pkg/types"
)

// indicator pairs a status glyph with the style it renders in.
type indicator struct {
	glyph string
	style lipgloss.Style
}

// unknownIndicator renders for any state missing from the lookup tables, so
// an unmapped state is always visibly marked rather than blank.
var unknownIndicator = indicator{glyph: "?", style: PendingStyle}

// instanceIndicators maps the known instance lifecycle states to their
// display indicators.
var instanceIndicators = map[types.InstanceState]indicator{
	types.InstanceRunning:    {glyph: "●", style: RunningStyle},
	types.InstanceStopped:    {glyph: "○", style: StoppedStyle},
	types.InstancePending:    {glyph: "◐", style: PendingStyle},
	types.InstanceStopping:   {glyph: "◐", style: PendingStyle},
	types.InstanceTerminated: {glyph: "✗", style: MutedStyle},
}

// alarmIndicators maps the known alarm states to their display indicators.
var alarmIndicators = map[types.AlarmState]indicator{
	types.AlarmOK:               {glyph: "●", style: RunningStyle},
	types.AlarmAlarm:            {glyph: "▲", style: AlarmStyle},
	types.AlarmInsufficientData: {glyph: "◌", style: PendingStyle},
}

// InstanceIndicator returns the rendered status indicator for an instance
// lifecycle state.
func InstanceIndicator(state types.InstanceState) string {
	ind, ok := instanceIndicators[state]
	if !ok {
		ind = unknownIndicator
	}
	return ind.style.Render(ind.glyph)
}

// AlarmIndicator returns the rendered status indicator for an alarm state.
func AlarmIndicator(state types.AlarmState) string {
	ind, ok := alarmIndicators[state]
	if !ok {
		ind = unknownIndicator
	}
	return ind.style.Render(ind.glyph)
}
