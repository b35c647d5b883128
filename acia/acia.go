// Package acia implements the state of a 6550/6551 style ACIA (UART)
// to the extent the bus can observe it: status/control registers plus
// ring buffered transmit and receive paths. Actual byte delivery is
// done by a Receiver collaborator installed at construction.
package acia

import "github.com/jmchacon/sim65/memory"

var _ = memory.Bank(&Chip{})

// Register offsets relative to the chip's base address.
const (
	REG_STATUS  = uint16(0x00)
	REG_DATA_TX = uint16(0x01)
	REG_DATA_RX = uint16(0x02)
	REG_CONTROL = uint16(0x03)
)

// Status register bits.
const (
	STATUS_TX_READY = uint8(0x01)
	STATUS_RX_READY = uint8(0x02)
	STATUS_OVERRUN  = uint8(0x04)
	STATUS_PARITY   = uint8(0x08)
	STATUS_FRAME    = uint8(0x10)
)

// Control register bits.
const (
	CONTROL_ENABLE_TX = uint8(0x01)
	CONTROL_ENABLE_RX = uint8(0x02)
	CONTROL_INT_TX    = uint8(0x04)
	CONTROL_INT_RX    = uint8(0x08)
)

// Ring capacities. Must be powers of two so head/tail wrap with a mask.
const (
	kTX_BUFFER_SIZE = 256
	kRX_BUFFER_SIZE = 256
)

// Receiver is the collaborator that accepts bytes drained from the TX ring.
type Receiver interface {
	// SerialOut is called once per transmitted byte.
	SerialOut(b uint8)
}

// Chip implements all bus observable state of the ACIA.
type Chip struct {
	txBuffer [kTX_BUFFER_SIZE]uint8
	txHead   int
	txTail   int
	txReady  bool

	rxBuffer [kRX_BUFFER_SIZE]uint8
	rxHead   int
	rxTail   int
	rxReady  bool

	controlReg uint8
	statusReg  uint8

	receiver Receiver
}

// ChipDef defines an ACIA.
type ChipDef struct {
	// Receiver accepts transmitted bytes from ProcessTx. May be nil in
	// which case drained bytes are dropped.
	Receiver Receiver
}

// Init returns a fully initialized ACIA in powered on state.
func Init(def *ChipDef) *Chip {
	a := &Chip{receiver: def.Receiver}
	a.PowerOn()
	return a
}

// PowerOn performs a full power-on/reset of the chip.
func (a *Chip) PowerOn() {
	a.Reset()
}

// Reset returns the chip to its default state: both rings empty,
// transmitter ready, all control features disabled.
func (a *Chip) Reset() {
	if a == nil {
		return
	}
	a.txHead, a.txTail = 0, 0
	a.txReady = true
	a.rxHead, a.rxTail = 0, 0
	a.rxReady = false
	a.controlReg = 0x00
	a.statusReg = STATUS_TX_READY
}

// Read returns the register at the given offset from the chip base.
// Reading DATA_RX consumes a byte from the RX ring.
func (a *Chip) Read(addr uint16) uint8 {
	if a == nil {
		return 0xFF
	}
	switch addr & 0x0F {
	case REG_STATUS:
		// Readiness bits are recomputed, error bits stay sticky.
		status := a.statusReg &^ (STATUS_TX_READY | STATUS_RX_READY)
		if a.txReady {
			status |= STATUS_TX_READY
		}
		if a.rxReady {
			status |= STATUS_RX_READY
		}
		return status
	case REG_DATA_RX:
		if !a.rxReady {
			return 0
		}
		data := a.rxBuffer[a.rxTail]
		a.rxTail = (a.rxTail + 1) % kRX_BUFFER_SIZE
		if a.rxTail == a.rxHead {
			a.rxReady = false
			a.statusReg &^= STATUS_RX_READY
		}
		return data
	case REG_CONTROL:
		return a.controlReg
	}
	// Undefined or write-only register address.
	return 0xFF
}

// Write stores the value at the given offset from the chip base.
// Writing DATA_TX enqueues onto the TX ring (when enabled) and writing
// CONTROL recomputes readiness from the new enable bits.
func (a *Chip) Write(addr uint16, val uint8) {
	if a == nil {
		return
	}
	switch addr & 0x0F {
	case REG_DATA_TX:
		if a.controlReg&CONTROL_ENABLE_TX == 0x00 {
			// Transmitter disabled, drop the write.
			return
		}
		nextHead := (a.txHead + 1) % kTX_BUFFER_SIZE
		if nextHead == a.txTail {
			a.statusReg |= STATUS_OVERRUN
			return
		}
		a.txBuffer[a.txHead] = val
		a.txHead = nextHead
		a.txReady = false
		a.statusReg &^= STATUS_TX_READY
	case REG_CONTROL:
		a.controlReg = val
		// A control write clears sticky error state and recomputes
		// readiness against the current buffer fill.
		a.statusReg &^= STATUS_OVERRUN | STATUS_PARITY | STATUS_FRAME
		if a.controlReg&CONTROL_ENABLE_TX != 0x00 {
			a.txReady = a.txHead == a.txTail
		} else {
			a.txReady = false
		}
		if a.txReady {
			a.statusReg |= STATUS_TX_READY
		} else {
			a.statusReg &^= STATUS_TX_READY
		}
		if a.controlReg&CONTROL_ENABLE_RX != 0x00 {
			a.rxReady = a.rxHead != a.rxTail
		} else {
			a.rxReady = false
		}
		if a.rxReady {
			a.statusReg |= STATUS_RX_READY
		} else {
			a.statusReg &^= STATUS_RX_READY
		}
	}
}

// ProcessTx drains the TX ring to the receiver, re-asserting TX_READY
// once the ring empties. Hosts call this between instructions.
func (a *Chip) ProcessTx() {
	if a == nil {
		return
	}
	if a.controlReg&CONTROL_ENABLE_TX == 0x00 || a.txReady {
		return
	}
	for a.txTail != a.txHead {
		data := a.txBuffer[a.txTail]
		if a.receiver != nil {
			a.receiver.SerialOut(data)
		}
		a.txTail = (a.txTail + 1) % kTX_BUFFER_SIZE
	}
	a.txReady = true
	a.statusReg |= STATUS_TX_READY
}

// ProvideInput enqueues received bytes onto the RX ring, simulating
// incoming serial data. If the ring fills the OVERRUN bit is set and the
// remaining bytes are dropped.
func (a *Chip) ProvideInput(data []uint8) {
	if a == nil {
		return
	}
	for _, b := range data {
		nextHead := (a.rxHead + 1) % kRX_BUFFER_SIZE
		if nextHead == a.rxTail {
			a.statusReg |= STATUS_OVERRUN
			break
		}
		a.rxBuffer[a.rxHead] = b
		a.rxHead = nextHead
		a.rxReady = true
		a.statusReg |= STATUS_RX_READY
	}
}

// Raised implements the irq.Sender interface. The interrupt line is
// asserted when an enabled interrupt source is pending: TX interrupts
// when the transmitter is ready for more data, RX interrupts when
// received data is waiting.
func (a *Chip) Raised() bool {
	if a == nil {
		return false
	}
	if a.controlReg&CONTROL_INT_TX != 0x00 && a.txReady {
		return true
	}
	if a.controlReg&CONTROL_INT_RX != 0x00 && a.rxReady {
		return true
	}
	return false
}
