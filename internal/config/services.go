package config

import "time"

/**
 * Simulated service configuration
 * @property {string} name - Service name
 * @property {duration} boot_delay - Simulated startup delay
 * @property {duration} shutdown_delay - Simulated shutdown delay
 */
type ServiceConfig struct {
	Name          string        `mapstructure:"name" json:"name"`
	BootDelay     time.Duration `mapstructure:"boot_delay" json:"bootDelay"`
	ShutdownDelay time.Duration `mapstructure:"shutdown_delay" json:"shutdownDelay"`
}

const (
	DefaultBootDelay     = time.Second
	DefaultShutdownDelay = 500 * time.Millisecond
)

// Correct fills in delay defaults for a partially specified service.
func (s *ServiceConfig) Correct() {
	if s.BootDelay <= 0 {
		s.BootDelay = DefaultBootDelay
	}
	if s.ShutdownDelay <= 0 {
		s.ShutdownDelay = DefaultShutdownDelay
	}
}

/**
 * Built-in service table used when the config file lists no services
 * @returns {[]ServiceConfig} Returns services in fixed registry order
 */
func DefaultServices() []ServiceConfig {
	names := []string{
		"filesystem",
		"networking",
		"user-interface",
		"applications",
		"security",
		"background-tasks",
	}
	services := make([]ServiceConfig, 0, len(names))
	for _, name := range names {
		services = append(services, ServiceConfig{
			Name:          name,
			BootDelay:     DefaultBootDelay,
			ShutdownDelay: DefaultShutdownDelay,
		})
	}
	return services
}
