package types

// AlarmState is a CloudWatch alarm state. Unrecognized states are carried
// verbatim, never dropped.
type AlarmState string

const (
	AlarmOK               AlarmState = "OK"
	AlarmAlarm            AlarmState = "ALARM"
	AlarmInsufficientData AlarmState = "INSUFFICIENT_DATA"
)

// NoAlarmDescription is the display text for alarms without a description.
const NoAlarmDescription = "No description"

// Alarm is one CloudWatch metric alarm as seen by a single report run.
type Alarm struct {
	Name        string     `json:"name"`
	State       AlarmState `json:"state"`
	Metric      string     `json:"metric"`
	Description string     `json:"description"`
}

// IsOK returns true if the alarm is in the OK state.
func (a Alarm) IsOK() bool {
	return a.State == AlarmOK
}

// IsFiring returns true if the alarm is in the ALARM state.
func (a Alarm) IsFiring() bool {
	return a.State == AlarmAlarm
}
