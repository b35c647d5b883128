package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmchacon/sim65/acia"
	"github.com/jmchacon/sim65/bus"
	"github.com/jmchacon/sim65/cpu"
	"github.com/jmchacon/sim65/tia"
	"github.com/jmchacon/sim65/via"
)

// sink collects ACIA output.
type sink struct {
	out []uint8
}

func (s *sink) SerialOut(b uint8) {
	s.out = append(s.out, b)
}

func setup(t *testing.T, s *sink, prog ...uint8) *Machine {
	t.Helper()
	chip, err := tia.Init(&tia.ChipDef{Mode: tia.TIA_MODE_NTSC})
	require.NoError(t, err)
	b, err := bus.Init(&bus.BusDef{
		MemorySize: 1 << 16,
		TIA:        chip,
		ACIA:       acia.Init(&acia.ChipDef{Receiver: s}),
		VIA:        via.Init(&via.ChipDef{}),
	})
	require.NoError(t, err)

	start := uint16(0x0400)
	require.NoError(t, b.LoadProgram(prog, start))
	b.Write(cpu.RESET_VECTOR, uint8(start&0xFF))
	b.Write(cpu.RESET_VECTOR+1, uint8(start>>8))

	c, err := cpu.Init(&cpu.ChipDef{Ram: b})
	require.NoError(t, err)
	return New(c, b)
}

// Each CPU cycle moves the TIA three color clocks and the VIA one tick.
func TestStepRatios(t *testing.T) {
	m := setup(t, &sink{}, 0xEA, 0xEA) // NOP NOP

	// Arm a VIA timer so ticks are observable.
	m.Bus.VIA().Write(via.REG_T2CL, 0xFF)
	m.Bus.VIA().Write(via.REG_T2CH, 0x00)

	cycles := m.Step()
	assert.Equal(t, 2, cycles)
	cc, sl := m.Bus.TIA().Position()
	assert.Equal(t, 6, cc+sl*228, "TIA stepped 3x per cycle")

	m.Step()
	cc, _ = m.Bus.TIA().Position()
	assert.Equal(t, 12, cc)
}

func TestSerialEcho(t *testing.T) {
	// Enable TX then store a byte into the ACIA data TX register:
	//   LDA #$03       enable TX+RX
	//   STA $D003      control
	//   LDA #$48       'H'
	//   STA $D001      data TX
	//   JMP *
	s := &sink{}
	m := setup(t, s,
		0xA9, 0x03,
		0x8D, 0x03, 0xD0,
		0xA9, 0x48,
		0x8D, 0x01, 0xD0,
		0x4C, 0x0A, 0x04,
	)
	pc, _ := m.RunUntilTrap(100)
	assert.Equal(t, uint16(0x040A), pc)
	assert.Equal(t, []uint8{'H'}, s.out, "ACIA drained between instructions")
}

func TestRunUntilTrapHalt(t *testing.T) {
	m := setup(t, &sink{}, 0x02) // JAM
	m.RunUntilTrap(100)
	assert.True(t, m.CPU.Halted())
}

func TestReset(t *testing.T) {
	m := setup(t, &sink{}, 0xEA)
	m.Step()
	m.Reset()
	// RAM was cleared so the reset vector now points at 0.
	assert.Equal(t, uint16(0x0000), m.CPU.PC)
}
