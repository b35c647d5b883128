package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeValidation(t *testing.T) {
	tests := []struct {
		name string
		size int
		ok   bool
	}{
		{"zero", 0, false},
		{"negative", -1, false},
		{"one byte", 1, true},
		{"full 64k", 1 << 16, true},
		{"too big", 1<<16 + 1, false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := NewRAM(test.size)
			if test.ok {
				assert.NoError(t, err)
				return
			}
			var is InvalidSize
			require.ErrorAs(t, err, &is)
			assert.Equal(t, test.size, is.Size)
		})
	}
}

func TestReadWrite(t *testing.T) {
	r, err := NewRAM(0x1000)
	require.NoError(t, err)

	r.Write(0x0123, 0xAB)
	assert.Equal(t, uint8(0xAB), r.Read(0x0123))

	// Out of range reads pull high; writes drop.
	assert.Equal(t, uint8(0xFF), r.Read(0x1000))
	r.Write(0x1000, 0x55)
	assert.Equal(t, uint8(0xFF), r.Read(0x1000))
}

func TestPowerOnZeros(t *testing.T) {
	r, err := NewRAM(0x100)
	require.NoError(t, err)
	r.Write(0x10, 0xFF)
	r.PowerOn()
	assert.Equal(t, uint8(0x00), r.Read(0x10))
}
