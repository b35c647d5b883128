// Package cpu defines the 6502 architecture and provides
// the methods needed to run the CPU and interface with it
// for emulation. Dispatch is instruction at a time: Step()
// executes one opcode through the shared 256 entry table and
// returns the cycles it consumed, including page cross, branch
// and decimal mode penalties.
package cpu

import (
	"fmt"

	"github.com/jmchacon/sim65/clock"
	"github.com/jmchacon/sim65/irq"
	"github.com/jmchacon/sim65/memory"
)

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	kSTACK_BASE = uint16(0x0100)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always 1 when read.
	P_B         = uint8(0x10) // Only set in frames pushed by BRK/PHP.
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Chip implements an NMOS 6502 including the undocumented opcodes.
type Chip struct {
	A  uint8  // Accumulator register
	X  uint8  // X register
	Y  uint8  // Y register
	S  uint8  // Stack pointer
	PC uint16 // Program counter

	// The six boolean flags are the sole source of truth for processor
	// state. The packed NV-BDIZC byte is derived on demand by Status().
	C bool
	Z bool
	I bool
	D bool
	V bool
	N bool

	halted bool // Set by the JAM family. Step() returns 0 from then on.

	ram   memory.Bank
	pacer *clock.Chip
	irq   irq.Sender
	nmi   irq.Sender

	// Per instruction dispatch state.
	opcode        uint8
	effectiveAddr uint16
	relAddr       uint16
	accMode       bool
	penaltyOp     bool
	penaltyAddr   bool
	cycles        int

	nmiEdge bool // Tracks the NMI line so a held line fires once.
}

// ChipDef defines a 6502.
type ChipDef struct {
	// Ram is the bus the CPU issues all reads and writes against.
	Ram memory.Bank
	// Pacer optionally blocks Step() per consumed cycle to hold a real
	// clock rate. Nil runs as fast as the host allows.
	Pacer *clock.Chip
	// Irq is an optional source for the IRQ line, sampled between instructions.
	Irq irq.Sender
	// Nmi is an optional source for the NMI line, sampled between
	// instructions and treated as edge triggered.
	Nmi irq.Sender
}

// Init will create a new 6502 and return it in powered on state:
// SP at 0xFD, flags clear and the PC loaded from the reset vector.
func Init(def *ChipDef) (*Chip, error) {
	if def.Ram == nil {
		return nil, InvalidCPUState{"no RAM attached"}
	}
	p := &Chip{
		ram:   def.Ram,
		pacer: def.Pacer,
		irq:   def.Irq,
		nmi:   def.Nmi,
	}
	p.Reset()
	return p, nil
}

// Status packs the flags into the NV-BDIZC byte. Bit 5 always reads as 1
// and bit 4 (B) is not stored so reads back as 0.
func (p *Chip) Status() uint8 {
	status := P_S1
	if p.N {
		status |= P_NEGATIVE
	}
	if p.V {
		status |= P_OVERFLOW
	}
	if p.D {
		status |= P_DECIMAL
	}
	if p.I {
		status |= P_INTERRUPT
	}
	if p.Z {
		status |= P_ZERO
	}
	if p.C {
		status |= P_CARRY
	}
	return status
}

// SetStatus unpacks the NV-BDIZC byte into the flags. Bits 4 and 5 are
// ignored since they have no storage.
func (p *Chip) SetStatus(val uint8) {
	p.N = val&P_NEGATIVE != 0x00
	p.V = val&P_OVERFLOW != 0x00
	p.D = val&P_DECIMAL != 0x00
	p.I = val&P_INTERRUPT != 0x00
	p.Z = val&P_ZERO != 0x00
	p.C = val&P_CARRY != 0x00
}

// Halted returns whether a JAM opcode has frozen the CPU. Only Reset
// clears this.
func (p *Chip) Halted() bool {
	if p == nil {
		return false
	}
	return p.halted
}

// Reset performs the RES sequence: registers retained, SP forced to
// 0xFD, flags cleared, PC reloaded from the reset vector and any halt
// state dropped. Returns the cycles consumed.
func (p *Chip) Reset() int {
	if p == nil {
		return 0
	}
	p.S = 0xFD
	p.C, p.Z, p.I, p.D, p.V, p.N = false, false, false, false, false, false
	p.halted = false
	p.nmiEdge = false
	p.PC = p.readWord(RESET_VECTOR)
	return 7
}

// NMI runs the non maskable interrupt sequence: push PC and status
// (B clear), set I and load the PC from the NMI vector.
func (p *Chip) NMI() int {
	if p == nil {
		return 0
	}
	p.interrupt(NMI_VECTOR)
	return 7
}

// IRQ runs the interrupt sequence through the IRQ vector when interrupts
// are not masked. Returns 0 when masked.
func (p *Chip) IRQ() int {
	if p == nil || p.I {
		return 0
	}
	p.interrupt(IRQ_VECTOR)
	return 7
}

func (p *Chip) interrupt(vector uint16) {
	p.push8(uint8(p.PC >> 8))
	p.push8(uint8(p.PC & 0xFF))
	// Interrupt frames push B clear; only BRK/PHP push it set.
	p.push8(p.Status())
	p.I = true
	p.PC = p.readWord(vector)
}

// SetPacer installs (or with nil removes) the cycle pacer used by Step.
func (p *Chip) SetPacer(c *clock.Chip) {
	if p != nil {
		p.pacer = c
	}
}

// Pacer returns the installed cycle pacer, nil when free running.
func (p *Chip) Pacer() *clock.Chip {
	if p == nil {
		return nil
	}
	return p.pacer
}

// Step executes the instruction at PC and returns the cycles consumed.
// A halted CPU consumes nothing and the PC stays put. Interrupt lines
// are sampled first so a pending IRQ/NMI dispatches instead of an opcode.
func (p *Chip) Step() int {
	if p == nil || p.halted {
		return 0
	}

	if p.nmi != nil {
		if p.nmi.Raised() {
			if !p.nmiEdge {
				p.nmiEdge = true
				cycles := p.NMI()
				p.pace(cycles)
				return cycles
			}
		} else {
			p.nmiEdge = false
		}
	}
	if p.irq != nil && p.irq.Raised() && !p.I {
		cycles := p.IRQ()
		p.pace(cycles)
		return cycles
	}

	p.opcode = p.ram.Read(p.PC)
	p.PC++

	p.penaltyOp = false
	p.penaltyAddr = false
	p.accMode = false

	entry := &opcodeTable[p.opcode]
	p.cycles = int(entry.cycles)
	entry.mode(p)
	entry.op(p)

	if p.penaltyOp && p.penaltyAddr {
		p.cycles++
	}

	p.pace(p.cycles)
	return p.cycles
}

// pace blocks once per consumed cycle when a pacer is attached.
func (p *Chip) pace(cycles int) {
	if p.pacer == nil {
		return
	}
	for i := 0; i < cycles; i++ {
		p.pacer.WaitNextCycle()
	}
}

// readWord reads a 16 bit little endian value.
func (p *Chip) readWord(addr uint16) uint16 {
	return uint16(p.ram.Read(addr)) | uint16(p.ram.Read(addr+1))<<8
}

// push8 pushes the given byte onto the stack and adjusts the stack pointer.
func (p *Chip) push8(val uint8) {
	p.ram.Write(kSTACK_BASE+uint16(p.S), val)
	p.S--
}

// pull8 pops the top byte off the stack and adjusts the stack pointer.
func (p *Chip) pull8() uint8 {
	p.S++
	return p.ram.Read(kSTACK_BASE + uint16(p.S))
}

func (p *Chip) push16(val uint16) {
	p.push8(uint8(val >> 8))
	p.push8(uint8(val & 0xFF))
}

func (p *Chip) pull16() uint16 {
	lo := p.pull8()
	hi := p.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// zeroCheck sets the Z flag based on the value.
func (p *Chip) zeroCheck(val uint8) {
	p.Z = val == 0x00
}

// negativeCheck sets the N flag based on the value.
func (p *Chip) negativeCheck(val uint8) {
	p.N = val&P_NEGATIVE != 0x00
}

// carryCheck sets the C flag if the result of an 8 bit ALU operation
// (passed as a 16 bit result) caused a carry out by generating a value >= 0x100.
// NOTE: normally this just means masking 0x100 but in some overflow cases for BCD
//       math the value can be 0x200 here so it's still a carry.
func (p *Chip) carryCheck(res uint16) {
	p.C = res >= 0x100
}

// overflowCheck sets the V flag if the result of the ALU operation
// caused a two's complement sign change.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Chip) overflowCheck(reg uint8, arg uint8, res uint8) {
	// If the original signs differ from the end sign bit.
	p.V = (reg^res)&(arg^res)&0x80 != 0x00
}

// loadRegister takes the val and inserts it into the register passed in.
// It then does Z and N checks against the new value.
func (p *Chip) loadRegister(reg *uint8, val uint8) {
	*reg = val
	p.zeroCheck(*reg)
	p.negativeCheck(*reg)
}
