// Package via implements the state of a 6522 VIA as observed over the
// bus: the sixteen register file, the two interval timers, the serial
// shift register and the interrupt flag/enable logic. Port A carries the
// HD44780 style control lines used by the classic breadboard LCD hookup;
// the falling edge of the enable line forwards the current port B byte
// to a Display collaborator.
package via

import (
	"github.com/jmchacon/sim65/io"
	"github.com/jmchacon/sim65/memory"
)

var _ = memory.Bank(&Chip{})

// Register offsets within the chip's sixteen byte window.
const (
	REG_ORB  = uint16(0x00)
	REG_ORA  = uint16(0x01)
	REG_DDRB = uint16(0x02)
	REG_DDRA = uint16(0x03)
	REG_T1CL = uint16(0x04)
	REG_T1CH = uint16(0x05)
	REG_T1LL = uint16(0x06)
	REG_T1LH = uint16(0x07)
	REG_T2CL = uint16(0x08)
	REG_T2CH = uint16(0x09)
	REG_SR   = uint16(0x0A)
	REG_ACR  = uint16(0x0B)
	REG_PCR  = uint16(0x0C)
	REG_IFR  = uint16(0x0D)
	REG_IER  = uint16(0x0E)
	REG_ORA2 = uint16(0x0F) // ORA without handshake latching.
)

// Interrupt flag bits in IFR/IER.
const (
	kMASK_IFR_SR = uint8(0x10)
	kMASK_IFR_T2 = uint8(0x20)
	kMASK_IFR_T1 = uint8(0x40)
)

// Port B serial convention bits.
const (
	kMASK_SERIAL_OUT = uint8(0x80) // PB7: strobe ORA out as a character.
	kMASK_SERIAL_IN  = uint8(0x40) // PB6: inbound ring has data.
)

// Port A control lines for the LCD hookup.
const (
	kMASK_LCD_E  = uint8(0x80)
	kMASK_LCD_RW = uint8(0x40)
	kMASK_LCD_RS = uint8(0x20)
)

const kSERIAL_IN_BUF_SIZE = 256

// shiftMode enumerates the shift register clock sources from ACR bits 2-4.
type shiftMode int

const (
	kSR_DISABLED shiftMode = iota
	kSR_OUTPUT_MANUAL
	kSR_OUTPUT_T1
	kSR_OUTPUT_T2
	kSR_INPUT_EXTERNAL
)

// Receiver is the collaborator accepting serial bytes the chip emits,
// both the PB7 strobed characters and completed shift register bytes.
type Receiver interface {
	// SerialOut is called once per emitted byte.
	SerialOut(b uint8)
}

// Display is the collaborator wired to the LCD control lines on port A
// and the data bus on port B.
type Display interface {
	// Command receives a byte latched with RS low.
	Command(b uint8)
	// Data receives a byte latched with RS high.
	Data(b uint8)
}

// out holds the data for an 8 bit I/O port.
type out struct {
	data uint8
}

// Output implements the interface for io.PortOut8
func (o *out) Output() uint8 {
	return o.data
}

// Chip implements all bus observable state of the 6522.
type Chip struct {
	reg [16]uint8

	t1c, t1l uint16
	t2c, t2l uint16

	ifr, ier uint8

	serialIn     [kSERIAL_IN_BUF_SIZE]uint8
	serialInHead int
	serialInTail int

	shiftReg    uint8
	shiftOut    uint8
	shiftCount  uint8
	shiftActive bool
	shiftMode   shiftMode
	srTxReady   bool
	srRxReady   bool

	// Previous port snapshots for enable edge detection.
	prevPortA uint8
	prevPortB uint8

	portAOutput *out
	portBOutput *out
	portBInput  io.PortIn8

	receiver Receiver
	display  Display
}

// ChipDef defines a 6522.
type ChipDef struct {
	// Receiver accepts serial output bytes. May be nil.
	Receiver Receiver
	// Display is the LCD collaborator on the port A/B hookup. May be nil.
	Display Display
	// PortB optionally provides external input pins for port B reads.
	PortB io.PortIn8
}

// Init returns a fully initialized 6522 in powered on state.
func Init(def *ChipDef) *Chip {
	v := &Chip{
		portAOutput: &out{},
		portBOutput: &out{},
		portBInput:  def.PortB,
		receiver:    def.Receiver,
		display:     def.Display,
	}
	v.PowerOn()
	return v
}

// PowerOn performs a full power-on/reset of the chip.
func (v *Chip) PowerOn() {
	v.Reset()
}

// Reset clears the register file, timers, shift register and edge state.
func (v *Chip) Reset() {
	if v == nil {
		return
	}
	for i := range v.reg {
		v.reg[i] = 0x00
	}
	v.t1c, v.t1l = 0, 0
	v.t2c, v.t2l = 0, 0
	v.ifr, v.ier = 0, 0
	v.serialInHead, v.serialInTail = 0, 0
	v.shiftReg = 0
	v.shiftCount = 0
	v.shiftActive = false
	v.shiftMode = kSR_DISABLED
	v.srTxReady = true
	v.srRxReady = false
	v.prevPortA = 0
	v.prevPortB = 0
	v.portAOutput.data = 0
	v.portBOutput.data = 0
}

// PortA returns an io.PortOut8 for observing the current port A pins.
func (v *Chip) PortA() io.PortOut8 {
	return v.portAOutput
}

// PortB returns an io.PortOut8 for observing the current port B pins.
func (v *Chip) PortB() io.PortOut8 {
	return v.portBOutput
}

// Read returns the register at the given offset from the chip base.
func (v *Chip) Read(addr uint16) uint8 {
	if v == nil {
		return 0xFF
	}
	switch addr & 0x0F {
	case REG_ORB:
		val := v.reg[REG_ORB]
		// External input pins show through where DDRB marks inputs.
		if v.portBInput != nil {
			ddrb := v.reg[REG_DDRB]
			val = (val & ddrb) | (v.portBInput.Input() &^ ddrb)
		}
		// PB6 reflects inbound serial availability.
		if v.serialInHead != v.serialInTail {
			val |= kMASK_SERIAL_IN
		} else {
			val &^= kMASK_SERIAL_IN
		}
		return val
	case REG_ORA:
		// With inbound data pending ORA reads drain the ring. This is the
		// convention the serial monitor ROMs poll PB6/read ORA with.
		if v.serialInHead != v.serialInTail {
			c := v.serialIn[v.serialInTail]
			v.serialInTail = (v.serialInTail + 1) % kSERIAL_IN_BUF_SIZE
			return c
		}
		return v.reg[REG_ORA]
	case REG_ORA2:
		return v.reg[REG_ORA]
	case REG_SR:
		if v.srRxReady {
			v.srRxReady = false
			v.ifr &^= kMASK_IFR_SR
			return v.shiftReg
		}
		return 0x00
	case REG_IFR:
		return v.ifr
	case REG_IER:
		return v.ier | 0x80
	default:
		return v.reg[addr&0x0F]
	}
}

// Write stores the value at the given offset from the chip base and
// applies its side effects immediately.
func (v *Chip) Write(addr uint16, val uint8) {
	if v == nil {
		return
	}
	switch addr & 0x0F {
	case REG_ORB:
		// PB7 strobes the current ORA out as a character.
		if val&kMASK_SERIAL_OUT != 0x00 && v.receiver != nil {
			v.receiver.SerialOut(v.reg[REG_ORA])
		}
		v.reg[REG_ORB] = val
		v.portBOutput.data = val & v.reg[REG_DDRB]
		v.edgeDetect()
		v.prevPortB = val
	case REG_ORA, REG_ORA2:
		v.reg[REG_ORA] = val
		v.portAOutput.data = val & v.reg[REG_DDRA]
		v.edgeDetect()
		v.prevPortA = val
	case REG_DDRB, REG_DDRA, REG_ACR, REG_PCR:
		v.reg[addr&0x0F] = val
		if addr&0x0F == REG_ACR {
			v.shiftMode = decodeShiftMode(val)
		}
	case REG_T1CL:
		v.t1l = (v.t1l & 0xFF00) | uint16(val)
	case REG_T1CH:
		v.t1l = (v.t1l & 0x00FF) | (uint16(val) << 8)
		v.t1c = v.t1l
		v.ifr &^= kMASK_IFR_T1
	case REG_T1LL:
		v.t1l = (v.t1l & 0xFF00) | uint16(val)
	case REG_T1LH:
		v.t1l = (v.t1l & 0x00FF) | (uint16(val) << 8)
	case REG_T2CL:
		v.t2l = (v.t2l & 0xFF00) | uint16(val)
	case REG_T2CH:
		v.t2l = (v.t2l & 0x00FF) | (uint16(val) << 8)
		v.t2c = v.t2l
		v.ifr &^= kMASK_IFR_T2
	case REG_SR:
		// Writing the shift register starts a transmission.
		v.shiftReg = val
		v.shiftOut = val
		v.shiftCount = 8
		v.shiftActive = true
		v.srTxReady = false
		v.ifr &^= kMASK_IFR_SR
	case REG_IFR:
		// Bits written as 1 are cleared.
		v.ifr &^= val
	case REG_IER:
		if val&0x80 != 0x00 {
			v.ier |= val & 0x7F
		} else {
			v.ier &^= val & 0x7F
		}
	}
}

// decodeShiftMode maps ACR bits 2-4 onto the shift clock source.
func decodeShiftMode(acr uint8) shiftMode {
	switch (acr >> 2) & 0x07 {
	case 0x00:
		return kSR_DISABLED
	case 0x04:
		return kSR_OUTPUT_T1
	case 0x05:
		return kSR_OUTPUT_T2
	case 0x06, 0x07:
		return kSR_OUTPUT_MANUAL
	default:
		return kSR_INPUT_EXTERNAL
	}
}

// edgeDetect watches the LCD control lines across port writes. On the
// falling edge of E with RW low, the current port B byte goes to the
// display as a command (RS low) or a datum (RS high). Intermediate port
// writes while E stays high produce no notification.
func (v *Chip) edgeDetect() {
	porta := v.reg[REG_ORA]
	portb := v.reg[REG_ORB]

	e := porta&kMASK_LCD_E != 0x00
	prevE := v.prevPortA&kMASK_LCD_E != 0x00

	if prevE && !e {
		rw := porta&kMASK_LCD_RW != 0x00
		rs := porta&kMASK_LCD_RS != 0x00
		if rw || v.display == nil {
			// Reads (busy flag polls) have no bus observable effect here.
			return
		}
		if rs {
			v.display.Data(portb)
		} else {
			v.display.Command(portb)
		}
	}
}

// SerialFeed enqueues bytes onto the inbound ring read through ORA/PB6.
// Bytes that don't fit are dropped.
func (v *Chip) SerialFeed(data []uint8) {
	if v == nil {
		return
	}
	for _, b := range data {
		nextHead := (v.serialInHead + 1) % kSERIAL_IN_BUF_SIZE
		if nextHead == v.serialInTail {
			break
		}
		v.serialIn[v.serialInHead] = b
		v.serialInHead = nextHead
	}
}

// RxByte places a received byte directly in the shift register and
// raises the shift interrupt, simulating an external serial clock.
func (v *Chip) RxByte(b uint8) {
	if v == nil {
		return
	}
	v.shiftReg = b
	v.srRxReady = true
	v.ifr |= kMASK_IFR_SR
}

// Tick advances the timers and the shift register by one cycle. Hosts
// call this once per emulated CPU cycle.
func (v *Chip) Tick() {
	if v == nil {
		return
	}
	if v.t1c > 0 {
		v.t1c--
		if v.t1c == 0 {
			v.ifr |= kMASK_IFR_T1
		}
	}
	if v.t2c > 0 {
		v.t2c--
		if v.t2c == 0 {
			v.ifr |= kMASK_IFR_T2
		}
	}
	v.tickSerial()
}

// tickSerial shifts one bit out per tick while a transmission is active.
// When the last bit leaves, the completed byte goes to the receiver and
// the shift interrupt is raised.
func (v *Chip) tickSerial() {
	if !v.shiftActive {
		return
	}
	v.shiftReg <<= 1
	v.shiftCount--
	if v.shiftCount == 0 {
		v.shiftActive = false
		v.srTxReady = true
		v.ifr |= kMASK_IFR_SR
		if v.receiver != nil {
			v.receiver.SerialOut(v.shiftOut)
		}
	}
}

// Raised implements the irq.Sender interface: high whenever an enabled
// interrupt flag is set.
func (v *Chip) Raised() bool {
	if v == nil {
		return false
	}
	return v.ifr&v.ier&0x7F != 0x00
}
