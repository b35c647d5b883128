package cpu

import (
	"os"
	"path/filepath"
	"testing"
)

const testDir = "../testdata"

// romTest describes one trap style test ROM: run until the PC stops
// moving and compare against the success address the ROM's build embeds.
type romTest struct {
	name     string
	file     string
	loadAddr uint16
	startPC  uint16
	endPC    uint16
	maxSteps int
}

// TestROMs runs the classic conformance ROMs when their images are
// present in testdata. Each ends in a deliberate JMP * trap; success is
// trapping at the documented address.
func TestROMs(t *testing.T) {
	tests := []romTest{
		{
			name:     "Klaus functional",
			file:     "6502_functional_test.bin",
			loadAddr: 0x0000,
			startPC:  0x0400,
			endPC:    0x3469,
			maxSteps: 100000000,
		},
		{
			name:     "Klaus decimal",
			file:     "6502_decimal_test.bin",
			loadAddr: 0x0200,
			startPC:  0x0200,
			endPC:    0x044B,
			maxSteps: 100000000,
		},
		{
			name:     "Lorenz SLO absolute",
			file:     filepath.Join("lorenz", "slo_asoa.bin"),
			loadAddr: 0x0801,
			startPC:  0x0801,
			endPC:    0x08B3,
			maxSteps: 10000000,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(testDir, test.file)
			rom, err := os.ReadFile(path)
			if err != nil {
				t.Skipf("no ROM image at %s - skipping", path)
			}

			r := &flatMemory{}
			copy(r.addr[test.loadAddr:], rom)
			r.addr[RESET_VECTOR] = uint8(test.startPC & 0xFF)
			r.addr[RESET_VECTOR+1] = uint8(test.startPC >> 8)
			c, err := Init(&ChipDef{Ram: r})
			if err != nil {
				t.Fatalf("Can't initialize cpu - %v", err)
			}

			var pc uint16
			for i := 0; i < test.maxSteps; i++ {
				pc = c.PC
				c.Step()
				if c.Halted() || c.PC == pc {
					break
				}
			}
			if c.Halted() {
				t.Fatalf("CPU halted at %.4X", c.PC)
			}
			if c.PC != test.endPC {
				t.Fatalf("trapped at %.4X want %.4X", c.PC, test.endPC)
			}
		})
	}
}
