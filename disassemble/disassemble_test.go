package disassemble

import (
	"strings"
	"testing"
)

// flatMemory implements the RAM interface
type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8 {
	return r.addr[addr]
}

func (r *flatMemory) Write(addr uint16, val uint8) {
	r.addr[addr] = val
}

func (r *flatMemory) PowerOn() {}

func TestStep(t *testing.T) {
	tests := []struct {
		name   string
		bytes  []uint8
		want   string
		length int
	}{
		{"implied", []uint8{0xEA}, "NOP", 1},
		{"immediate", []uint8{0xA9, 0x42}, "LDA #42", 2},
		{"zero page", []uint8{0x85, 0x10}, "STA 10", 2},
		{"zp,x", []uint8{0xB5, 0x20}, "LDA 20,X", 2},
		{"absolute", []uint8{0x4C, 0x34, 0x12}, "JMP 1234", 3},
		{"abs,y", []uint8{0xB9, 0x00, 0x80}, "LDA 8000,Y", 3},
		{"(d,x)", []uint8{0xA1, 0x30}, "LDA (30,X)", 2},
		{"(d),y", []uint8{0xB1, 0x30}, "LDA (30),Y", 2},
		{"indirect", []uint8{0x6C, 0xFF, 0x12}, "JMP (12FF)", 3},
		{"jam", []uint8{0x02}, "JAM", 1},
		{"illegal", []uint8{0x07, 0x10}, "SLO 10", 2},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			r := &flatMemory{}
			copy(r.addr[0x1000:], test.bytes)
			got, length := Step(0x1000, r)
			if !strings.Contains(got, test.want) {
				t.Errorf("disassembly %q doesn't contain %q", got, test.want)
			}
			if length != test.length {
				t.Errorf("length %d want %d", length, test.length)
			}
			if !strings.HasPrefix(got, "1000 ") {
				t.Errorf("missing address prefix: %q", got)
			}
		})
	}
}

func TestRelativeTarget(t *testing.T) {
	r := &flatMemory{}
	// BNE *-2 at 0x1000: offset FE targets 0x1000.
	r.addr[0x1000] = 0xD0
	r.addr[0x1001] = 0xFE
	got, length := Step(0x1000, r)
	if !strings.Contains(got, "BNE FE (1000)") {
		t.Errorf("relative target wrong: %q", got)
	}
	if length != 2 {
		t.Errorf("length %d want 2", length)
	}
}
