package bus

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmchacon/sim65/acia"
	"github.com/jmchacon/sim65/tia"
	"github.com/jmchacon/sim65/via"
)

func fullBus(t *testing.T) *Bus {
	t.Helper()
	chip, err := tia.Init(&tia.ChipDef{Mode: tia.TIA_MODE_NTSC})
	if err != nil {
		t.Fatalf("Can't initialize TIA - %v", err)
	}
	b, err := Init(&BusDef{
		MemorySize: 1 << 16,
		TIA:        chip,
		ACIA:       acia.Init(&acia.ChipDef{}),
		VIA:        via.Init(&via.ChipDef{}),
	})
	if err != nil {
		t.Fatalf("Can't initialize bus - %v", err)
	}
	return b
}

func TestInitValidation(t *testing.T) {
	if _, err := Init(&BusDef{MemorySize: 0}); err == nil {
		t.Error("zero memory should error")
	}
	if _, err := Init(&BusDef{MemorySize: 1<<16 + 1}); err == nil {
		t.Error("oversized memory should error")
	}
}

func TestDecodeOrder(t *testing.T) {
	b := fullBus(t)

	// TIA window: a write at 0x09 (COLUBK) lands in the TIA, not RAM.
	b.Write(0x0009, 0x55)
	assert.Equal(t, uint8(0x55), b.TIA().Read(0x09))

	// TIA mirror mask: 0x0049 is outside the window so it's RAM.
	b.Write(0x0049, 0x66)
	assert.Equal(t, uint8(0x66), b.Read(0x0049))
	assert.Equal(t, uint8(0x55), b.TIA().Read(0x49), "TIA cell undisturbed")

	// ACIA window with base relative offsets.
	b.ACIA().Write(acia.REG_CONTROL, acia.CONTROL_ENABLE_RX)
	b.ACIA().ProvideInput([]uint8{0x42})
	assert.Equal(t, uint8(0x42), b.Read(ACIA_START+acia.REG_DATA_RX))

	// VIA window.
	b.Write(VIA_START+via.REG_ACR, 0x18)
	assert.Equal(t, uint8(0x18), b.Read(VIA_START+via.REG_ACR))

	// Plain RAM everywhere else.
	b.Write(0x1234, 0x99)
	assert.Equal(t, uint8(0x99), b.Read(0x1234))
}

func TestSmallRAMOpenBus(t *testing.T) {
	b, err := Init(&BusDef{MemorySize: 0x4000})
	require.NoError(t, err)
	b.Write(0x0100, 0x12)
	assert.Equal(t, uint8(0x12), b.Read(0x0100))
	// Past the configured size: reads pull high, writes drop.
	b.Write(0x8000, 0x34)
	assert.Equal(t, uint8(0xFF), b.Read(0x8000))
}

func TestHandlerRegistry(t *testing.T) {
	b, err := Init(&BusDef{MemorySize: 1 << 16})
	require.NoError(t, err)

	var out bytes.Buffer
	b.AddHandler(0xD012, 0xD012, NewConsole(&out))

	b.Write(0xD012, 'H')
	b.Write(0xD012, 'i')
	assert.Equal(t, "Hi", out.String())
	// The hook is write only.
	assert.Equal(t, uint8(0xFF), b.Read(0xD012))
	// Neighbors still hit RAM.
	b.Write(0xD013, 0x77)
	assert.Equal(t, uint8(0x77), b.Read(0xD013))
}

func TestLoadProgram(t *testing.T) {
	b, err := Init(&BusDef{MemorySize: 1 << 16})
	require.NoError(t, err)

	require.NoError(t, b.LoadProgram([]uint8{0x01, 0x02, 0x03}, 0x0400))
	assert.Equal(t, uint8(0x01), b.Read(0x0400))
	assert.Equal(t, uint8(0x03), b.Read(0x0402))

	// Overflowing the address space fails typed.
	err = b.LoadProgram(make([]uint8, 0x200), 0xFF00)
	var re RangeExceeded
	require.ErrorAs(t, err, &re)
	assert.Equal(t, uint16(0xFF00), re.Start)

	// An exact fit at the top is fine.
	assert.NoError(t, b.LoadProgram(make([]uint8, 0x100), 0xFF00))
}

func TestLoadFile(t *testing.T) {
	b, err := Init(&BusDef{MemorySize: 1 << 16})
	require.NoError(t, err)

	err = b.LoadFile(filepath.Join(t.TempDir(), "missing.bin"), 0)
	var io IoFailure
	require.ErrorAs(t, err, &io)

	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xA9, 0x42}, 0644))
	require.NoError(t, b.LoadFile(path, 0x0600))
	assert.Equal(t, uint8(0xA9), b.Read(0x0600))
	assert.Equal(t, uint8(0x42), b.Read(0x0601))
}

func TestTraceHook(t *testing.T) {
	b, err := Init(&BusDef{MemorySize: 1 << 16})
	require.NoError(t, err)

	type access struct {
		write bool
		addr  uint16
		val   uint8
	}
	var seen []access
	b.Trace = func(write bool, addr uint16, val uint8) {
		seen = append(seen, access{write, addr, val})
	}
	b.Write(0x10, 0x20)
	b.Read(0x10)
	require.Len(t, seen, 2)
	assert.Equal(t, access{true, 0x10, 0x20}, seen[0])
	assert.Equal(t, access{false, 0x10, 0x20}, seen[1])
}

func TestReset(t *testing.T) {
	b := fullBus(t)
	b.Write(0x1000, 0xAA)
	b.Reset()
	assert.Equal(t, uint8(0x00), b.Read(0x1000), "RAM cleared on reset")
}
