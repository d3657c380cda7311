// Package config holds the panel configuration: animation rotation,
// remote fetch target, wifi timeouts and the portal identity. On the
// desktop it is loaded from a YAML file; firmware builds ship the
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Animations AnimationsConfig `yaml:"animations"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Wifi       WifiConfig       `yaml:"wifi"`
	Sched      SchedConfig      `yaml:"sched"`
}

type AnimationsConfig struct {
	SimpleCounter   AnimConfig `yaml:"simple_counter"`
	RandomPosition  AnimConfig `yaml:"random_position"`
	ColorTransition AnimConfig `yaml:"color_transition"`
	BouncingCounter AnimConfig `yaml:"bouncing_counter"`

	// ColorTransitionMS bounds the color sweep within its cycle.
	ColorTransitionMS int64 `yaml:"color_transition_ms"`
}

type AnimConfig struct {
	Enabled    bool  `yaml:"enabled"`
	DurationMS int64 `yaml:"duration_ms"`
}

type FetchConfig struct {
	URL        string `yaml:"url"`
	IntervalMS int64  `yaml:"interval_ms"`
}

type WifiConfig struct {
	Portal PortalConfig `yaml:"portal"`
}

type PortalConfig struct {
	SSID      string `yaml:"ssid"`
	Password  string `yaml:"password"`
	IP        string `yaml:"ip"`
	TimeoutMS int64  `yaml:"timeout_ms"`
}

type SchedConfig struct {
	TickBudgetMS int64 `yaml:"tick_budget_ms"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Animations: AnimationsConfig{
			SimpleCounter:     AnimConfig{Enabled: false, DurationMS: 10_000},
			RandomPosition:    AnimConfig{Enabled: true, DurationMS: 10_000},
			ColorTransition:   AnimConfig{Enabled: true, DurationMS: 15_000},
			BouncingCounter:   AnimConfig{Enabled: true, DurationMS: 60_000},
			ColorTransitionMS: 15_000,
		},
		Fetch: FetchConfig{
			URL:        "http://127.0.0.1:8000/api/followers",
			IntervalMS: 10_000,
		},
		Wifi: WifiConfig{
			Portal: PortalConfig{
				SSID:      "led-counter-setup",
				Password:  "configure",
				IP:        "192.168.4.1",
				TimeoutMS: 300_000,
			},
		},
		Sched: SchedConfig{TickBudgetMS: 100},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
