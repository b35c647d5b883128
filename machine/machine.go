// Package machine is the main logic for pulling together an emulated
// 6502 system. The actual chips are implemented in other packages and
// the logic here simply sequences them: each CPU instruction consumes N
// cycles, and for every consumed cycle the TIA is stepped three times
// (one CPU cycle is three color clocks on NTSC) and the VIA timers tick
// once, then the ACIA gets a chance to drain its transmit ring.
package machine

import (
	"github.com/jmchacon/sim65/bus"
	"github.com/jmchacon/sim65/cpu"
)

// The TIA runs at three color clocks per CPU cycle.
const kTIA_CLOCKS_PER_CYCLE = 3

// Machine ties a CPU to its bus and steps the whole system.
type Machine struct {
	CPU *cpu.Chip
	Bus *bus.Bus
}

// New returns a machine stepping the given CPU and bus.
func New(c *cpu.Chip, b *bus.Bus) *Machine {
	return &Machine{CPU: c, Bus: b}
}

// Step runs one instruction and then brings the peripherals forward by
// the cycles it consumed. Returns the cycle count.
func (m *Machine) Step() int {
	cycles := m.CPU.Step()
	t := m.Bus.TIA()
	v := m.Bus.VIA()
	for i := 0; i < cycles; i++ {
		if t != nil {
			for j := 0; j < kTIA_CLOCKS_PER_CYCLE; j++ {
				t.Tick()
			}
		}
		if v != nil {
			v.Tick()
		}
	}
	if a := m.Bus.ACIA(); a != nil {
		a.ProcessTx()
	}
	return cycles
}

// RunUntilTrap steps until the PC stops moving (the classic JMP * trap
// test ROMs end on), the CPU halts on a JAM, or max instructions have
// run. Returns the final PC and how many instructions executed.
func (m *Machine) RunUntilTrap(max int) (uint16, int) {
	steps := 0
	for steps < max {
		pc := m.CPU.PC
		m.Step()
		steps++
		if m.CPU.Halted() || m.CPU.PC == pc {
			break
		}
	}
	return m.CPU.PC, steps
}

// Reset resets the bus (RAM, pacer, peripherals) and then the CPU so the
// PC reloads from the reset vector.
func (m *Machine) Reset() {
	m.Bus.Reset()
	m.CPU.Reset()
}
