// Package bus implements the address decoder tying the CPU to RAM and
// the memory mapped peripherals. Decoding is first match wins: TIA,
// ACIA, VIA, any registered extension handlers, then RAM. Reads that
// fall through everything return 0xFF and writes are dropped, matching
// an open bus.
package bus

import (
	"fmt"
	"os"

	"github.com/jmchacon/sim65/acia"
	"github.com/jmchacon/sim65/clock"
	"github.com/jmchacon/sim65/memory"
	"github.com/jmchacon/sim65/tia"
	"github.com/jmchacon/sim65/via"
)

var _ = memory.Bank(&Bus{})

// Device address windows.
const (
	TIA_START = uint16(0x0000)
	TIA_END   = uint16(0x003F)

	VIA_START = uint16(0x6000)
	VIA_END   = uint16(0x600F)

	ACIA_START = uint16(0xD000)
	ACIA_END   = uint16(0xD00F)
)

// RangeExceeded represents a program image that does not fit in the
// 64k address space from its start address.
type RangeExceeded struct {
	Start uint16
	Len   int
}

// Error implements the interface for error types.
func (e RangeExceeded) Error() string {
	return fmt.Sprintf("program of %d bytes does not fit at 0x%.4X", e.Len, e.Start)
}

// IoFailure represents a program image that could not be read.
type IoFailure struct {
	Path string
	Err  error
}

// Error implements the interface for error types.
func (e IoFailure) Error() string {
	return fmt.Sprintf("can't load %q: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e IoFailure) Unwrap() error {
	return e.Err
}

// handler is one registered (range -> Bank) decode entry.
type handler struct {
	first uint16
	last  uint16
	bank  memory.Bank
}

// Bus implements the system address decoder.
type Bus struct {
	ram      memory.Bank
	pacer    *clock.Chip
	tia      *tia.Chip
	acia     *acia.Chip
	via      *via.Chip
	handlers []handler

	// Trace, when non-nil, observes every read and write. Leave nil for
	// zero overhead.
	Trace func(write bool, addr uint16, val uint8)
}

// BusDef defines a bus. Peripherals are optional; the bus owns whatever
// is handed to it for its lifetime.
type BusDef struct {
	// MemorySize is the RAM size in bytes (1 to 64k).
	MemorySize int
	// Pacer is an optional cycle pacer the bus holds and rewinds on Reset.
	// The bus never waits on it; Step is paced only by the pacer given to
	// the CPU.
	Pacer *clock.Chip
	// TIA, ACIA and VIA are optional attached peripherals.
	TIA  *tia.Chip
	ACIA *acia.Chip
	VIA  *via.Chip
}

// Init returns a fully initialized bus with its RAM powered on.
func Init(def *BusDef) (*Bus, error) {
	ram, err := memory.NewRAM(def.MemorySize)
	if err != nil {
		return nil, fmt.Errorf("can't initialize RAM: %w", err)
	}
	b := &Bus{
		ram:   ram,
		pacer: def.Pacer,
		tia:   def.TIA,
		acia:  def.ACIA,
		via:   def.VIA,
	}
	b.PowerOn()
	return b, nil
}

// AddHandler registers an extension decode range consulted after the
// fixed peripherals but before RAM. First registered wins on overlap.
func (b *Bus) AddHandler(first, last uint16, bank memory.Bank) {
	if b == nil || bank == nil || last < first {
		return
	}
	b.handlers = append(b.handlers, handler{first, last, bank})
}

// PowerOn implements the interface for memory.Bank.
func (b *Bus) PowerOn() {
	if b == nil {
		return
	}
	b.ram.PowerOn()
}

// Reset resets the RAM contents, pacer and all attached peripherals.
func (b *Bus) Reset() {
	if b == nil {
		return
	}
	b.ram.PowerOn()
	b.pacer.Reset()
	if b.tia != nil {
		b.tia.Reset()
	}
	if b.acia != nil {
		b.acia.Reset()
	}
	if b.via != nil {
		b.via.Reset()
	}
}

// Read implements the interface for memory.Bank, routing the address to
// the first matching device.
func (b *Bus) Read(addr uint16) uint8 {
	if b == nil {
		return 0xFF
	}
	var val uint8
	switch {
	case b.tia != nil && addr <= TIA_END:
		val = b.tia.Read(addr)
	case b.acia != nil && addr >= ACIA_START && addr <= ACIA_END:
		val = b.acia.Read(addr - ACIA_START)
	case b.via != nil && addr >= VIA_START && addr <= VIA_END:
		val = b.via.Read(addr - VIA_START)
	default:
		if h := b.findHandler(addr); h != nil {
			val = h.bank.Read(addr)
			break
		}
		val = b.ram.Read(addr)
	}
	if b.Trace != nil {
		b.Trace(false, addr, val)
	}
	return val
}

// Write implements the interface for memory.Bank, routing the address to
// the first matching device.
func (b *Bus) Write(addr uint16, val uint8) {
	if b == nil {
		return
	}
	if b.Trace != nil {
		b.Trace(true, addr, val)
	}
	switch {
	case b.tia != nil && addr <= TIA_END:
		b.tia.Write(addr, val)
	case b.acia != nil && addr >= ACIA_START && addr <= ACIA_END:
		b.acia.Write(addr-ACIA_START, val)
	case b.via != nil && addr >= VIA_START && addr <= VIA_END:
		b.via.Write(addr-VIA_START, val)
	default:
		if h := b.findHandler(addr); h != nil {
			h.bank.Write(addr, val)
			return
		}
		b.ram.Write(addr, val)
	}
}

func (b *Bus) findHandler(addr uint16) *handler {
	for i := range b.handlers {
		if addr >= b.handlers[i].first && addr <= b.handlers[i].last {
			return &b.handlers[i]
		}
	}
	return nil
}

// Pacer returns the attached cycle pacer, nil when none is attached.
func (b *Bus) Pacer() *clock.Chip {
	if b == nil {
		return nil
	}
	return b.pacer
}

// SetPacer installs (or with nil removes) the cycle pacer.
func (b *Bus) SetPacer(p *clock.Chip) {
	if b != nil {
		b.pacer = p
	}
}

// TIA returns the attached TIA, if any.
func (b *Bus) TIA() *tia.Chip {
	if b == nil {
		return nil
	}
	return b.tia
}

// ACIA returns the attached ACIA, if any.
func (b *Bus) ACIA() *acia.Chip {
	if b == nil {
		return nil
	}
	return b.acia
}

// VIA returns the attached VIA, if any.
func (b *Bus) VIA() *via.Chip {
	if b == nil {
		return nil
	}
	return b.via
}

// LoadProgram copies a raw byte image into RAM starting at start. Device
// windows are never disturbed; images are RAM payloads.
func (b *Bus) LoadProgram(data []uint8, start uint16) error {
	if b == nil {
		return fmt.Errorf("nil bus")
	}
	if int(start)+len(data) > 1<<16 {
		return RangeExceeded{start, len(data)}
	}
	for i, v := range data {
		b.ram.Write(start+uint16(i), v)
	}
	return nil
}

// LoadFile reads a raw binary image and copies it in at start.
func (b *Bus) LoadFile(path string, start uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return IoFailure{path, err}
	}
	return b.LoadProgram(data, start)
}
