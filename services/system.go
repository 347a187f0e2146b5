package services

import (
	"fmt"
	"time"

	"fastos/internal/config"
	"fastos/internal/models"
)

// System wires the registry, log sink, runner and interpreter together. The
// desktop shell, the HTTP server and the CLI fallback all operate on the same
// wiring.
type System struct {
	Registry    *Registry
	Sink        *LogSink
	Runner      *Runner
	Interpreter *Interpreter

	cfg       *config.AppConfig
	startTime time.Time
}

var system *System

// GetSystem returns the process-wide system built from the loaded config.
func GetSystem() *System {
	if system != nil {
		return system
	}
	system = NewSystem(&config.Config)
	return system
}

func NewSystem(cfg *config.AppConfig) *System {
	reg := NewRegistry(cfg.Services)
	sink := NewLogSink()
	runner := NewRunner(cfg.System.Name, reg, sink)
	return &System{
		Registry:    reg,
		Sink:        sink,
		Runner:      runner,
		Interpreter: NewInterpreter(runner, reg, sink),
		cfg:         cfg,
		startTime:   time.Now(),
	}
}

func (s *System) Name() string {
	return s.cfg.System.Name
}

func (s *System) Version() string {
	return s.cfg.System.Version
}

// GetDetail assembles the full system view served by the state API and shown
// by the CLI.
func (s *System) GetDetail() models.SystemDetail {
	detail := models.SystemDetail{
		Name:      s.cfg.System.Name,
		Version:   s.cfg.System.Version,
		State:     s.Runner.State(),
		StartTime: s.startTime.Format(time.RFC3339),
		Services:  s.Registry.Details(),
	}
	if bootTime := s.Runner.BootTime(); bootTime > 0 {
		detail.BootTime = fmt.Sprintf("%.2fs", bootTime.Seconds())
	}
	if up := s.Runner.Uptime(); up > 0 {
		detail.Uptime = up.Round(time.Second).String()
	}
	return detail
}

func (s *System) GetHealthz() models.HealthResponse {
	running := 0
	for _, detail := range s.Registry.Details() {
		if detail.Status == models.StatusRunning {
			running++
		}
	}
	return models.HealthResponse{
		Version:   s.cfg.System.Version,
		StartTime: s.startTime.Format(time.RFC3339),
		Status:    "UP",
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Metrics: models.Metrics{
			TotalRequests:   GetTotalRequestCount(),
			ErrorRequests:   GetTotalErrorCount(),
			RunningServices: running,
		},
	}
}
