package config

import (
	"testing"
	"time"
)

func TestDefaultServices(t *testing.T) {
	services := DefaultServices()

	want := []string{
		"filesystem",
		"networking",
		"user-interface",
		"applications",
		"security",
		"background-tasks",
	}
	if len(services) != len(want) {
		t.Fatalf("expected %d services, got %d", len(want), len(services))
	}
	for i, svc := range services {
		if svc.Name != want[i] {
			t.Errorf("service %d: expected %q, got %q", i, want[i], svc.Name)
		}
		if svc.BootDelay != DefaultBootDelay {
			t.Errorf("service %q: unexpected boot delay %s", svc.Name, svc.BootDelay)
		}
		if svc.ShutdownDelay != DefaultShutdownDelay {
			t.Errorf("service %q: unexpected shutdown delay %s", svc.Name, svc.ShutdownDelay)
		}
	}
}

func TestServiceConfigCorrect(t *testing.T) {
	tests := []struct {
		name         string
		in           ServiceConfig
		wantBoot     time.Duration
		wantShutdown time.Duration
	}{
		{
			name:         "zero delays get defaults",
			in:           ServiceConfig{Name: "a"},
			wantBoot:     DefaultBootDelay,
			wantShutdown: DefaultShutdownDelay,
		},
		{
			name:         "negative delays get defaults",
			in:           ServiceConfig{Name: "b", BootDelay: -time.Second, ShutdownDelay: -time.Second},
			wantBoot:     DefaultBootDelay,
			wantShutdown: DefaultShutdownDelay,
		},
		{
			name:         "explicit delays are kept",
			in:           ServiceConfig{Name: "c", BootDelay: 3 * time.Second, ShutdownDelay: time.Second},
			wantBoot:     3 * time.Second,
			wantShutdown: time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Correct()
			if tt.in.BootDelay != tt.wantBoot {
				t.Errorf("boot delay: expected %s, got %s", tt.wantBoot, tt.in.BootDelay)
			}
			if tt.in.ShutdownDelay != tt.wantShutdown {
				t.Errorf("shutdown delay: expected %s, got %s", tt.wantShutdown, tt.in.ShutdownDelay)
			}
		})
	}
}

func TestCollectConfigDefaults(t *testing.T) {
	cfg := collectConfig(&AppConfig{})

	if cfg.System.Name != "FastOS" {
		t.Errorf("unexpected system name: %q", cfg.System.Name)
	}
	if cfg.Server.Address == "" {
		t.Error("server address not defaulted")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unexpected log level: %q", cfg.Log.Level)
	}
	if cfg.UI.Theme != "CoolWarm" {
		t.Errorf("unexpected theme: %q", cfg.UI.Theme)
	}
	if len(cfg.Services) == 0 {
		t.Fatal("service table not defaulted")
	}
}

func TestCollectConfigKeepsExplicitValues(t *testing.T) {
	cfg := collectConfig(&AppConfig{
		System: SystemConfig{Name: "TestOS", Version: "9.9"},
		UI:     UIConfig{Theme: "DarkMode"},
		Services: []ServiceConfig{
			{Name: "only", BootDelay: time.Second, ShutdownDelay: time.Second},
		},
	})

	if cfg.System.Name != "TestOS" || cfg.System.Version != "9.9" {
		t.Errorf("explicit system config overwritten: %+v", cfg.System)
	}
	if cfg.UI.Theme != "DarkMode" {
		t.Errorf("explicit theme overwritten: %q", cfg.UI.Theme)
	}
	if len(cfg.Services) != 1 || cfg.Services[0].Name != "only" {
		t.Errorf("explicit service table overwritten: %+v", cfg.Services)
	}
}
