package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, 1<<16, p.MemorySize)
	assert.Equal(t, "ntsc", p.TVSystem)
	assert.True(t, p.Attach.TIA)
	assert.True(t, p.Attach.ACIA)
	assert.True(t, p.Attach.VIA)
	assert.Zero(t, p.ClockHz)
}

func TestLoad(t *testing.T) {
	path := write(t, `
memory_size: 32768
clock_hz: 1000000
tv_system: pal
attach:
  tia: true
  acia: false
  via: true
console_addr: 0xd012
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32768, p.MemorySize)
	assert.Equal(t, float64(1000000), p.ClockHz)
	assert.Equal(t, "pal", p.TVSystem)
	assert.True(t, p.Attach.TIA)
	assert.False(t, p.Attach.ACIA)
	assert.Equal(t, uint16(0xD012), p.ConsoleAddr)
}

func TestLoadDefaultsFill(t *testing.T) {
	p, err := Load(write(t, `clock_hz: 50`))
	require.NoError(t, err)
	assert.Equal(t, 1<<16, p.MemorySize)
	assert.Equal(t, "ntsc", p.TVSystem)
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should error")
	}
	if _, err := Load(write(t, `tv_system: secam`)); err == nil {
		t.Error("bad tv system should error")
	}
	if _, err := Load(write(t, `memory_size: 999999`)); err == nil {
		t.Error("oversized memory should error")
	}
	if _, err := Load(write(t, "::notyaml")); err == nil {
		t.Error("bad yaml should error")
	}
}
