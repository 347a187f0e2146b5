package models

type ServiceDetail struct {
	Name          string    `json:"name"`
	Status        RunStatus `json:"status"`
	StartTime     string    `json:"startTime,omitempty"`
	BootDelay     string    `json:"bootDelay"`
	ShutdownDelay string    `json:"shutdownDelay"`
}

type SystemDetail struct {
	Name      string          `json:"name"`
	Version   string          `json:"version"`
	State     SystemState     `json:"state"`
	BootTime  string          `json:"bootTime,omitempty"`
	Uptime    string          `json:"uptime,omitempty"`
	StartTime string          `json:"startTime,omitempty"`
	Services  []ServiceDetail `json:"services"`
}
