package types

import "time"

// InstanceState is an EC2 lifecycle state. States the provider reports that
// have no constant here are carried verbatim, never dropped.
type InstanceState string

const (
	InstanceRunning    InstanceState = "running"
	InstanceStopped    InstanceState = "stopped"
	InstancePending    InstanceState = "pending"
	InstanceStopping   InstanceState = "stopping"
	InstanceTerminated InstanceState = "terminated"
)

// UnnamedInstance is the display name for instances without a Name tag.
const UnnamedInstance = "Unnamed"

// Instance is one EC2 instance as seen by a single report run.
type Instance struct {
	ID         string        `json:"instance_id"`
	Type       string        `json:"instance_type"`
	State      InstanceState `json:"state"`
	Name       string        `json:"name"`
	AZ         string        `json:"availability_zone,omitempty"`
	PrivateIP  string        `json:"private_ip,omitempty"`
	LaunchTime *time.Time    `json:"launch_time,omitempty"`
}

// IsRunning returns true if the instance is running.
func (i Instance) IsRunning() bool {
	return i.State == InstanceRunning
}

// IsStopped returns true if the instance is stopped.
func (i Instance) IsStopped() bool {
	return i.State == InstanceStopped
}
