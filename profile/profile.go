// Package profile loads the YAML machine description the front ends use
// to build a system: memory size, pacing frequency, TV system, which
// peripherals to attach and the optional console putchar hook address.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes a machine to build.
type Profile struct {
	// MemorySize is the RAM size in bytes. Defaults to 64k.
	MemorySize int `yaml:"memory_size"`
	// ClockHz paces the CPU when positive. Zero free runs.
	ClockHz float64 `yaml:"clock_hz"`
	// TVSystem is "ntsc" or "pal".
	TVSystem string `yaml:"tv_system"`
	// Attach lists which peripherals to map.
	Attach struct {
		TIA  bool `yaml:"tia"`
		ACIA bool `yaml:"acia"`
		VIA  bool `yaml:"via"`
	} `yaml:"attach"`
	// ConsoleAddr, when non-zero, maps a write-only putchar hook at the
	// given address.
	ConsoleAddr uint16 `yaml:"console_addr"`
}

// Default returns the profile used when no file is given: a full 64k
// machine with every peripheral attached, free running, NTSC.
func Default() *Profile {
	p := &Profile{
		MemorySize: 1 << 16,
		TVSystem:   "ntsc",
	}
	p.Attach.TIA = true
	p.Attach.ACIA = true
	p.Attach.VIA = true
	return p
}

// Load reads and validates a profile file, filling defaults for
// anything unset.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read profile: %w", err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("can't parse profile: %w", err)
	}
	if p.MemorySize <= 0 || p.MemorySize > 1<<16 {
		return nil, fmt.Errorf("profile memory_size %d out of range", p.MemorySize)
	}
	switch p.TVSystem {
	case "ntsc", "pal":
	default:
		return nil, fmt.Errorf("profile tv_system %q must be ntsc or pal", p.TVSystem)
	}
	return p, nil
}
