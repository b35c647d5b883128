package monitor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmchacon/sim65/acia"
	"github.com/jmchacon/sim65/bus"
	"github.com/jmchacon/sim65/cpu"
	"github.com/jmchacon/sim65/machine"
)

func setup(t *testing.T, prog ...uint8) *machine.Machine {
	t.Helper()
	b, err := bus.Init(&bus.BusDef{
		MemorySize: 1 << 16,
		ACIA:       acia.Init(&acia.ChipDef{}),
	})
	require.NoError(t, err)
	start := uint16(0x0400)
	require.NoError(t, b.LoadProgram(prog, start))
	b.Write(cpu.RESET_VECTOR, uint8(start&0xFF))
	b.Write(cpu.RESET_VECTOR+1, uint8(start>>8))
	c, err := cpu.Init(&cpu.ChipDef{Ram: b})
	require.NoError(t, err)
	return machine.New(c, b)
}

// script runs the given command lines and returns everything written.
func script(t *testing.T, m *machine.Machine, lines ...string) string {
	t.Helper()
	var out strings.Builder
	mon := Init(&Def{
		Machine: m,
		In:      strings.NewReader(strings.Join(lines, "\n")),
		Out:     &out,
	})
	mon.Run()
	return out.String()
}

func TestRegAndStep(t *testing.T) {
	m := setup(t, 0xA9, 0x42, 0xEA) // LDA #$42, NOP
	out := script(t, m, "step", "reg", "quit")
	assert.Contains(t, out, "A=42")
	assert.Contains(t, out, "PC=0402")
}

func TestMemDump(t *testing.T) {
	m := setup(t, 0xDE, 0xAD)
	out := script(t, m, "mem 0400 2", "quit")
	assert.Contains(t, out, "0400: DE AD")
}

func TestPCAndRun(t *testing.T) {
	m := setup(t, 0xEA, 0x4C, 0x01, 0x04) // NOP then JMP *
	out := script(t, m, "pc $0400", "run 100", "quit")
	assert.Contains(t, out, "PC=0401")
	assert.Contains(t, out, "stopped")
}

func TestRunHalts(t *testing.T) {
	m := setup(t, 0x02) // JAM
	out := script(t, m, "run 10", "quit")
	assert.Contains(t, out, "halted")
}

func TestStackCommand(t *testing.T) {
	m := setup(t, 0x48) // PHA
	m.CPU.A = 0x5A
	out := script(t, m, "step", "stack 1", "quit")
	assert.Contains(t, out, "01FD: 5A")
}

func TestSerialCommand(t *testing.T) {
	m := setup(t)
	m.Bus.ACIA().Write(acia.REG_CONTROL, acia.CONTROL_ENABLE_RX)
	out := script(t, m, "serial Hi", "quit")
	assert.Contains(t, out, "Fed 2 bytes")
	assert.Equal(t, uint8('H'), m.Bus.ACIA().Read(acia.REG_DATA_RX))
}

func TestDisasm(t *testing.T) {
	m := setup(t, 0xA9, 0x42, 0xEA)
	out := script(t, m, "disasm 0400 2", "quit")
	assert.Contains(t, out, "LDA #42")
	assert.Contains(t, out, "NOP")
}

func TestIrqNmi(t *testing.T) {
	m := setup(t, 0xEA)
	// I is clear after reset; vectors point at 0 which is fine here.
	out := script(t, m, "irq", "nmi", "quit")
	assert.Contains(t, out, "IRQ taken")
	assert.Contains(t, out, "NMI taken")
}

func TestLoadCommand(t *testing.T) {
	m := setup(t)
	path := filepath.Join(t.TempDir(), "prog.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x11, 0x22}, 0644))
	out := script(t, m, "load "+path+" 0600", "mem 0600 2", "quit")
	assert.Contains(t, out, "Loaded")
	assert.Contains(t, out, "0600: 11 22")

	out = script(t, m, "load "+path+"missing", "quit")
	assert.Contains(t, out, "Load failed")
}

func TestClockCommands(t *testing.T) {
	m := setup(t, 0xEA)
	out := script(t, m, "clock", "clock on", "clock freq 1000000", "clock on", "clock off", "quit")
	assert.Contains(t, out, "No frequency set")
	assert.Contains(t, out, "Clock at 1000000 Hz")
	assert.Contains(t, out, "Clock on")
	assert.Contains(t, out, "Clock off")
	assert.Nil(t, m.CPU.Pacer())
}

func TestUnknownAndHelp(t *testing.T) {
	m := setup(t)
	out := script(t, m, "bogus", "help", "quit")
	assert.Contains(t, out, "Unknown command: bogus")
	assert.Contains(t, out, "disasm")
}
