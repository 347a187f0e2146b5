package models

// SystemState is the process-wide lifecycle state of the simulated system.
// The runner is the only writer; everything else reads it.
type SystemState string

const (
	SystemOff          SystemState = "Off"
	SystemBooting      SystemState = "Booting"
	SystemOn           SystemState = "On"
	SystemShuttingDown SystemState = "ShuttingDown"
)

func (s SystemState) String() string {
	return string(s)
}

// RunStatus is the lifecycle state of a single simulated service.
type RunStatus string

const (
	StatusStopped      RunStatus = "Stopped"
	StatusBooting      RunStatus = "Booting"
	StatusRunning      RunStatus = "Running"
	StatusShuttingDown RunStatus = "ShuttingDown"
)

func (s RunStatus) String() string {
	return string(s)
}
