package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmchacon/sim65/tia"
)

func setup(t *testing.T) *tia.Chip {
	t.Helper()
	chip, err := tia.Init(&tia.ChipDef{Mode: tia.TIA_MODE_NTSC})
	require.NoError(t, err)
	return chip
}

func TestCaptureSilence(t *testing.T) {
	rec := NewRecorder(setup(t))
	rec.Capture(100)
	assert.Equal(t, 100, rec.Len())
}

func TestCaptureTone(t *testing.T) {
	chip := setup(t)
	chip.Write(tia.AUDC0, 0x04)
	chip.Write(tia.AUDF0, 0x08)
	chip.Write(tia.AUDV0, 0x0F)

	rec := NewRecorder(chip)
	rec.CaptureSeconds(0.1)
	assert.Equal(t, 4410, rec.Len())

	nonzero := false
	for _, s := range rec.samples {
		if s != 0 {
			nonzero = true
			break
		}
	}
	assert.True(t, nonzero, "tone expected in capture")
}

func TestWriteWAV(t *testing.T) {
	chip := setup(t)
	chip.Write(tia.AUDC0, 0x01)
	chip.Write(tia.AUDV0, 0x08)

	rec := NewRecorder(chip)
	rec.Capture(1000)
	path := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, rec.WriteWAV(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 1000, len(buf.Data))
}
