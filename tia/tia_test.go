package tia

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, mode TIAMode) *Chip {
	t.Helper()
	chip, err := Init(&ChipDef{Mode: mode})
	if err != nil {
		t.Fatalf("Can't initialize TIA - %v", err)
	}
	return chip
}

func TestInitValidation(t *testing.T) {
	if _, err := Init(&ChipDef{}); err == nil {
		t.Error("Init with no mode should error")
	}
	if _, err := Init(&ChipDef{Mode: TIA_MODE_MAX}); err == nil {
		t.Error("Init with TIA_MODE_MAX should error")
	}
}

// Frame cadence: after exactly cycles-per-line * lines-per-frame ticks
// the beam is back at (0, 0) and exactly one frame has completed.
func TestFrameCadence(t *testing.T) {
	tests := []struct {
		name  string
		mode  TIAMode
		lines int
	}{
		{"NTSC", TIA_MODE_NTSC, kLINES_NTSC},
		{"PAL", TIA_MODE_PAL, kLINES_PAL},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			frames := 0
			chip, err := Init(&ChipDef{
				Mode:      test.mode,
				FrameDone: func(*image.NRGBA) { frames++ },
			})
			if err != nil {
				t.Fatalf("Can't initialize TIA - %v", err)
			}
			total := kCYCLES_PER_LINE * test.lines
			for i := 0; i < total; i++ {
				if chip.FrameDone() && i < total-1 {
					t.Fatalf("frame done raised early at tick %d", i)
				}
				chip.Tick()
			}
			if frames != 1 {
				t.Errorf("got %d frames want 1", frames)
			}
			if !chip.FrameDone() {
				t.Error("frame done not raised")
			}
			cc, sl := chip.Position()
			if cc != 0 || sl != 0 {
				t.Errorf("beam at (%d, %d) want (0, 0)", cc, sl)
			}
			chip.ClearFrameDone()
			if chip.FrameDone() {
				t.Error("ClearFrameDone didn't")
			}
			if chip.FrameCount() != 1 {
				t.Errorf("frame count %d want 1", chip.FrameCount())
			}
		})
	}
}

// pixelAt pulls the RGBA tuple back out of the framebuffer.
func pixelAt(chip *Chip, x, y int) [4]uint8 {
	off := chip.Picture().PixOffset(x, y)
	pix := chip.Picture().Pix
	return [4]uint8{pix[off], pix[off+1], pix[off+2], pix[off+3]}
}

func wantColor(code uint8) [4]uint8 {
	c := paletteNTSC[code&0x7F]
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// The PF1 band: with PF1=FF its eight bits drive playfield indices 4-11,
// which is x in [16, 48). Without reflect the right half repeats the
// field, so the band shows again at x in [96, 128). Everything else stays
// background.
func TestPlayfieldScanline(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	chip.Write(COLUBK, 0x44)
	chip.Write(COLUPF, 0x0E)
	chip.Write(PF1, 0xFF)
	chip.Write(CTRLPF, 0x00)

	for i := 0; i < kCYCLES_PER_LINE; i++ {
		chip.Tick()
	}

	for x := 0; x < kWIDTH; x++ {
		want := wantColor(0x44)
		if (x >= 16 && x < 48) || (x >= 96 && x < 128) {
			want = wantColor(0x0E)
		}
		if got := pixelAt(chip, x, 0); got != want {
			t.Fatalf("pixel %d: got %v want %v", x, got, want)
		}
	}
}

// Reflection mirrors the right half; without it the field repeats.
func TestPlayfieldReflect(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	chip.Write(COLUPF, 0x0E)
	chip.Write(PF1, 0xFF)

	// No reflect: band repeats at x in [96, 128).
	assert.True(t, chip.playfieldPixel(96))
	assert.False(t, chip.playfieldPixel(128))

	// Reflect: indices mirror so the band lands at x in [112, 144).
	chip.Write(CTRLPF, kMASK_REFLECT)
	assert.False(t, chip.playfieldPixel(96))
	assert.True(t, chip.playfieldPixel(112))
}

func TestScoreMode(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	chip.Write(COLUP0, 0x16)
	chip.Write(COLUP1, 0x86)
	chip.Write(PF0, 0xF0)
	chip.Write(PF2, 0xFF)
	chip.Write(CTRLPF, kMASK_SCORE)

	for i := 0; i < kCYCLES_PER_LINE; i++ {
		chip.Tick()
	}
	// PF0 drives x [0, 16) on the left; PF2 drives x [48, 80) and its
	// repeat [128, 160) on the right.
	assert.Equal(t, wantColor(0x16), pixelAt(chip, 0, 0), "left half uses COLUP0")
	assert.Equal(t, wantColor(0x86), pixelAt(chip, 130, 0), "right half uses COLUP1")
}

func TestPlayersAndPriority(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	chip.Write(COLUBK, 0x00)
	chip.Write(COLUP0, 0x16)
	chip.Write(COLUP1, 0x86)
	chip.Write(GRP0, 0xFF)
	chip.Write(GRP1, 0xFF)

	// Position both players while the beam is at color clock 8.
	for i := 0; i < 8; i++ {
		chip.Tick()
	}
	chip.Write(RESP0, 0x00)
	chip.Write(RESP1, 0x00)
	cc, _ := chip.Position()
	require.Equal(t, 8, cc)

	// Finish the line.
	for i := 8; i < kCYCLES_PER_LINE; i++ {
		chip.Tick()
	}
	// Overlapping players: P1 wins.
	assert.Equal(t, wantColor(0x86), pixelAt(chip, 8, 0))
	assert.Equal(t, wantColor(0x86), pixelAt(chip, 15, 0))
	assert.Equal(t, wantColor(0x00), pixelAt(chip, 16, 0))

	// The P0/P1 latch is set from the overlap.
	assert.NotZero(t, chip.Read(CXPPMM)&0x80)
}

func TestCollisionsAndClear(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	chip.Write(COLUPF, 0x0E)
	chip.Write(PF0, 0xF0)
	chip.Write(GRP0, 0xFF)
	chip.Write(RESP0, 0x00) // p0 at x=0 overlapping PF0's band

	for i := 0; i < 16; i++ {
		chip.Tick()
	}
	assert.NotZero(t, chip.Read(CXP0FB)&0x80, "p0/pf latch")
	assert.Zero(t, chip.Read(CXP1FB)&0x80, "p1 never drawn")

	chip.Write(CXCLR, 0x00)
	assert.Zero(t, chip.Read(CXP0FB)&0x80, "CXCLR clears latches")
}

func TestVsyncVblankSuppressRendering(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	chip.Write(COLUBK, 0x44)
	chip.Write(VBLANK, 0x80)
	for i := 0; i < kCYCLES_PER_LINE; i++ {
		chip.Tick()
	}
	assert.Equal(t, [4]uint8{0, 0, 0, 0}, pixelAt(chip, 0, 0), "vblank pixel untouched")

	chip.Reset()
	chip.Write(COLUBK, 0x44)
	chip.Write(VSYNC, 0x02)
	chip.Tick()
	assert.Equal(t, [4]uint8{0, 0, 0, 0}, pixelAt(chip, 0, 0), "vsync pixel untouched")
}

func TestRSYNCAndRESP(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	for i := 0; i < 10; i++ {
		chip.Tick()
	}
	chip.Write(RESP0, 0x00)
	assert.Equal(t, 10, chip.p0X)
	chip.Write(RSYNC, 0x00)
	cc, _ := chip.Position()
	assert.Equal(t, 0, cc)
}

func TestHMOVE(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	chip.p0X = 10
	chip.p1X = 0

	// +7 for P0 (nibble 0x7), -8 for P1 (nibble 0x8).
	chip.Write(HMP0, 0x07)
	chip.Write(HMP1, 0x08)
	chip.Write(HMOVE, 0x00)
	assert.Equal(t, 17, chip.p0X)
	assert.Equal(t, kWIDTH-8, chip.p1X, "wraps modulo the screen width")
}

func TestRegisterMirroring(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	// 0x49 mirrors down to COLUBK (0x09).
	chip.Write(0x49, 0x22)
	assert.Equal(t, uint8(0x22), chip.Read(COLUBK))
	assert.Equal(t, uint8(0x22), chip.colubk)
}

func TestAudio(t *testing.T) {
	chip := setup(t, TIA_MODE_NTSC)
	dt := 1.0 / 44100.0

	// Silence with AUDC=0.
	for i := 0; i < 100; i++ {
		assert.Zero(t, chip.AudioStep(dt))
	}

	// A square wave appears with nonzero AUDC/AUDV.
	chip.Write(AUDC0, 0x01)
	chip.Write(AUDF0, 0x10)
	chip.Write(AUDV0, 0x0F)
	nonzero := false
	for i := 0; i < 1000; i++ {
		if chip.AudioStep(dt) != 0 {
			nonzero = true
			break
		}
	}
	assert.True(t, nonzero, "tone expected")

	// Volume scales: max sample magnitude is AUDV/15 mixed at half.
	chip.Write(AUDV0, 0x05)
	var peak float64
	for i := 0; i < 10000; i++ {
		s := chip.AudioStep(dt)
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	assert.InDelta(t, float64(5)/15.0/2.0, peak, 1e-9)
}
