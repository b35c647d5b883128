// The opt-in console putchar hook. Legacy ROMs print by storing a byte
// at a fixed address; mapping this handler recreates that without
// hard wiring the address into the decoder.
package bus

import (
	"io"

	"github.com/jmchacon/sim65/memory"
)

var _ = memory.Bank(&Console{})

// Console is a one byte write-only device that forwards stores to a writer.
type Console struct {
	w io.Writer
}

// NewConsole returns a console hook writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Read implements the interface for memory.Bank. The hook is write only.
func (c *Console) Read(addr uint16) uint8 {
	return 0xFF
}

// Write implements the interface for memory.Bank, emitting the byte as a
// character.
func (c *Console) Write(addr uint16, val uint8) {
	if c.w != nil {
		_, _ = c.w.Write([]byte{val})
	}
}

// PowerOn implements the interface for memory.Bank.
func (c *Console) PowerOn() {}
