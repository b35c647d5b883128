// Package tia implements the TIA chip used in an atari 2600 for display/sound.
// The pixel engine runs one color clock per Tick with register writes taking
// effect immediately, which is what lets racing-the-beam kernels work.
package tia

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/jmchacon/sim65/memory"
)

var _ = memory.Bank(&Chip{})

// TIAMode is an enumeration of the supported TV systems.
type TIAMode int

const (
	TIA_MODE_UNIMPLEMENTED TIAMode = iota // Start of valid tia enumerations.
	TIA_MODE_NTSC
	TIA_MODE_PAL
	TIA_MODE_MAX // End of tia enumerations.
)

// Screen geometry. The visible window is the same for both TV systems;
// only the total line count differs.
const (
	kWIDTH           = 160
	kHEIGHT          = 192
	kCYCLES_PER_LINE = 228

	kLINES_NTSC = 262
	kLINES_PAL  = 312
)

// Register offsets within the 64 byte window (addresses mirror with & 0x3F).
const (
	VSYNC  = uint16(0x00)
	VBLANK = uint16(0x01)
	WSYNC  = uint16(0x02)
	RSYNC  = uint16(0x03)
	COLUP0 = uint16(0x06)
	COLUP1 = uint16(0x07)
	COLUPF = uint16(0x08)
	COLUBK = uint16(0x09)
	CTRLPF = uint16(0x0A)
	PF0    = uint16(0x0D)
	PF1    = uint16(0x0E)
	PF2    = uint16(0x0F)
	RESP0  = uint16(0x10)
	RESP1  = uint16(0x11)
	AUDC0  = uint16(0x17)
	AUDC1  = uint16(0x18)
	AUDF0  = uint16(0x19)
	AUDF1  = uint16(0x1A)
	AUDV0  = uint16(0x1B)
	AUDV1  = uint16(0x1C)
	GRP0   = uint16(0x1D)
	GRP1   = uint16(0x1E)
	HMP0   = uint16(0x24)
	HMP1   = uint16(0x25)
	HMOVE  = uint16(0x2D)
	CXCLR  = uint16(0x2F)
)

// Collision latch read slots. Bit 7 of the latch shows through on reads.
const (
	CXP0FB = uint16(0x32)
	CXP1FB = uint16(0x33)
	CXPPMM = uint16(0x37)
)

const (
	kMASK_VSYNC   = uint8(0x02)
	kMASK_VBLANK  = uint8(0x80)
	kMASK_REFLECT = uint8(0x01) // CTRLPF bit 0
	kMASK_SCORE   = uint8(0x02) // CTRLPF bit 1
)

// audioChannel holds the cached state for one of the two tone generators.
type audioChannel struct {
	control uint8 // AUDC
	freq    uint8 // AUDF
	volume  uint8 // AUDV
	phase   float64
}

// collisions holds the sticky latches the pixel engine sets.
type collisions struct {
	p0p1 bool
	p0pf bool
	p1pf bool
}

// Chip implements all modes needed for a TIA including sound.
type Chip struct {
	mode TIAMode

	registers [64]uint8

	colorClock int
	scanline   int
	frameCount uint64
	frameDone  bool

	vsync  bool
	vblank bool

	p0X, p1X   int
	grp0, grp1 uint8

	pf0, pf1, pf2 uint8
	ctrlpf        uint8

	colup0, colup1 uint8
	colupf, colubk uint8

	collide collisions

	lines   int
	palette *[128]color.NRGBA
	picture *image.NRGBA

	audioMu sync.Mutex
	audio0  audioChannel
	audio1  audioChannel

	frameDoneCB func(*image.NRGBA)
}

// ChipDef defines a TIA.
type ChipDef struct {
	// Mode is the TV system to emulate.
	Mode TIAMode
	// FrameDone is called whenever a full frame wraps so the host can
	// consume the framebuffer. The image is owned by the chip and must
	// not be retained past the callback. May be nil.
	FrameDone func(*image.NRGBA)
}

// InvalidMode represents a TIA construction request with a bad TV system.
type InvalidMode struct {
	Mode TIAMode
}

// Error implements the interface for error types.
func (e InvalidMode) Error() string {
	return fmt.Sprintf("invalid TIA mode: %d", e.Mode)
}

// Init returns a fully initialized TIA.
func Init(def *ChipDef) (*Chip, error) {
	if def.Mode <= TIA_MODE_UNIMPLEMENTED || def.Mode >= TIA_MODE_MAX {
		return nil, InvalidMode{def.Mode}
	}
	t := &Chip{
		mode:        def.Mode,
		lines:       kLINES_NTSC,
		frameDoneCB: def.FrameDone,
		picture:     image.NewNRGBA(image.Rect(0, 0, kWIDTH, kHEIGHT)),
	}
	t.palette = &paletteNTSC
	if def.Mode == TIA_MODE_PAL {
		t.lines = kLINES_PAL
		t.palette = &palettePAL
	}
	t.PowerOn()
	return t, nil
}

// PowerOn performs a full power-on/reset for the TIA.
func (t *Chip) PowerOn() {
	t.Reset()
}

// Reset clears the register file and beam position and blacks the framebuffer.
func (t *Chip) Reset() {
	if t == nil {
		return
	}
	for i := range t.registers {
		t.registers[i] = 0x00
	}
	t.colorClock = 0
	t.scanline = 0
	t.frameDone = false
	t.vsync, t.vblank = false, false
	t.p0X, t.p1X = 0, 0
	t.grp0, t.grp1 = 0, 0
	t.pf0, t.pf1, t.pf2 = 0, 0, 0
	t.ctrlpf = 0
	t.colup0, t.colup1, t.colupf, t.colubk = 0, 0, 0, 0
	t.collide = collisions{}
	t.audioMu.Lock()
	t.audio0 = audioChannel{}
	t.audio1 = audioChannel{}
	t.audioMu.Unlock()
	for i := range t.picture.Pix {
		t.picture.Pix[i] = 0x00
	}
}

// Read returns the register cell at the given address (mirrored with
// & 0x3F). Collision latches fold into their read slots as bit 7.
func (t *Chip) Read(addr uint16) uint8 {
	if t == nil {
		return 0xFF
	}
	switch addr & 0x3F {
	case CXPPMM:
		return latchBit(t.collide.p0p1)
	case CXP0FB:
		return latchBit(t.collide.p0pf)
	case CXP1FB:
		return latchBit(t.collide.p1pf)
	}
	return t.registers[addr&0x3F]
}

func latchBit(b bool) uint8 {
	if b {
		return 0x80
	}
	return 0x00
}

// Write stores the value at the given address (mirrored with & 0x3F) and
// applies its side effect immediately.
func (t *Chip) Write(addr uint16, val uint8) {
	if t == nil {
		return
	}
	reg := addr & 0x3F
	t.registers[reg] = val

	switch reg {
	case VSYNC:
		t.vsync = val&kMASK_VSYNC != 0x00
	case VBLANK:
		t.vblank = val&kMASK_VBLANK != 0x00
	case RSYNC:
		t.colorClock = 0
	case COLUP0:
		t.colup0 = val
	case COLUP1:
		t.colup1 = val
	case COLUPF:
		t.colupf = val
	case COLUBK:
		t.colubk = val
	case CTRLPF:
		t.ctrlpf = val
	case PF0:
		t.pf0 = val
	case PF1:
		t.pf1 = val
	case PF2:
		t.pf2 = val
	case RESP0:
		t.p0X = t.colorClock
	case RESP1:
		t.p1X = t.colorClock
	case GRP0:
		t.grp0 = val
	case GRP1:
		t.grp1 = val
	case HMOVE:
		t.hmove()
	case CXCLR:
		t.collide = collisions{}
	case AUDC0, AUDC1, AUDF0, AUDF1, AUDV0, AUDV1:
		t.audioMu.Lock()
		switch reg {
		case AUDC0:
			t.audio0.control = val
		case AUDF0:
			t.audio0.freq = val
		case AUDV0:
			t.audio0.volume = val
		case AUDC1:
			t.audio1.control = val
		case AUDF1:
			t.audio1.freq = val
		case AUDV1:
			t.audio1.volume = val
		}
		t.audioMu.Unlock()
	}
}

// hmove applies the 4 bit signed motion nibbles from HMP0/HMP1 to the
// player origins, wrapping modulo the screen width.
func (t *Chip) hmove() {
	shift0 := int(int8(t.registers[HMP0]<<4) >> 4)
	t.p0X = wrapX(t.p0X + shift0)
	shift1 := int(int8(t.registers[HMP1]<<4) >> 4)
	t.p1X = wrapX(t.p1X + shift1)
}

func wrapX(x int) int {
	x %= kWIDTH
	if x < 0 {
		x += kWIDTH
	}
	return x
}

// Tick advances the chip one color clock: render the current beam
// position, then move the beam. Hosts run this 3x per CPU cycle (NTSC).
func (t *Chip) Tick() {
	if t == nil {
		return
	}
	t.renderPixel()

	t.colorClock++
	if t.colorClock >= kCYCLES_PER_LINE {
		t.colorClock = 0
		t.scanline++
		if t.scanline >= t.lines {
			t.scanline = 0
			t.frameDone = true
			t.frameCount++
			if t.frameDoneCB != nil {
				t.frameDoneCB(t.picture)
			}
		}
	}
}

// FrameDone returns whether a frame wrapped since the last ClearFrameDone.
func (t *Chip) FrameDone() bool {
	if t == nil {
		return false
	}
	return t.frameDone
}

// ClearFrameDone acknowledges the current frame.
func (t *Chip) ClearFrameDone() {
	if t != nil {
		t.frameDone = false
	}
}

// FrameCount returns the number of completed frames.
func (t *Chip) FrameCount() uint64 {
	if t == nil {
		return 0
	}
	return t.frameCount
}

// Position returns the current beam position as (color clock, scanline).
func (t *Chip) Position() (int, int) {
	if t == nil {
		return 0, 0
	}
	return t.colorClock, t.scanline
}

// Picture returns the framebuffer. The image is owned by the chip; hosts
// read it and must never free or resize it.
func (t *Chip) Picture() *image.NRGBA {
	if t == nil {
		return nil
	}
	return t.picture
}

// renderPixel composites the pixel under the beam into the framebuffer.
// Nothing is drawn during vsync/vblank or outside the visible window.
func (t *Chip) renderPixel() {
	x := t.colorClock
	y := t.scanline
	if t.vsync || t.vblank || x >= kWIDTH || y >= kHEIGHT {
		return
	}

	colorCode := t.colubk

	pf := t.playfieldPixel(x)
	p0 := playerPixel(t.grp0, t.p0X, x)
	p1 := playerPixel(t.grp1, t.p1X, x)

	if pf {
		if t.ctrlpf&kMASK_SCORE == 0x00 {
			colorCode = t.colupf
		} else if x < kWIDTH/2 {
			colorCode = t.colup0
		} else {
			colorCode = t.colup1
		}
	}
	// Players overlay the playfield, P1 on top of P0.
	if p0 {
		colorCode = t.colup0
	}
	if p1 {
		colorCode = t.colup1
	}

	t.setPixel(x, y, colorCode)

	if p0 && p1 {
		t.collide.p0p1 = true
	}
	if p0 && pf {
		t.collide.p0pf = true
	}
	if p1 && pf {
		t.collide.p1pf = true
	}
}

// playfieldPixel evaluates the 20 bit playfield (PF0 high nibble, PF1,
// PF2) at x. Each bit drives a 4 pixel span; the right half repeats the
// field or mirrors it when CTRLPF reflect is set.
func (t *Chip) playfieldPixel(x int) bool {
	index := (x / 4) % 20
	if x >= kWIDTH/2 && t.ctrlpf&kMASK_REFLECT != 0x00 {
		index = 19 - index
	}
	switch {
	case index < 4:
		return t.pf0&(1<<uint(7-index)) != 0x00
	case index < 12:
		return t.pf1&(1<<uint(11-index)) != 0x00
	default:
		return t.pf2&(1<<uint(19-index)) != 0x00
	}
}

// playerPixel evaluates an 8 bit player pattern at x given its origin.
// Bit 7 is the leftmost pixel.
func playerPixel(grp uint8, originX, x int) bool {
	rel := x - originX
	if rel < 0 || rel > 7 {
		return false
	}
	return grp&(1<<uint(7-rel)) != 0x00
}

func (t *Chip) setPixel(x, y int, colorCode uint8) {
	c := t.palette[colorCode&0x7F]
	off := t.picture.PixOffset(x, y)
	t.picture.Pix[off+0] = c.R
	t.picture.Pix[off+1] = c.G
	t.picture.Pix[off+2] = c.B
	t.picture.Pix[off+3] = c.A
}

// AudioStep produces one mixed mono sample in [-1, 1] for the host audio
// rate, advancing both channel phases by dt seconds. AUDC zero (or zero
// volume) is silence; any other control value produces a square wave
// whose pitch rises with AUDF.
func (t *Chip) AudioStep(dt float64) float64 {
	if t == nil {
		return 0
	}
	t.audioMu.Lock()
	defer t.audioMu.Unlock()
	return (t.audio0.step(dt) + t.audio1.step(dt)) * 0.5
}

func (c *audioChannel) step(dt float64) float64 {
	if c.control == 0x00 || c.volume == 0x00 {
		return 0
	}
	freq := 30.0 + float64(c.freq)*10.0
	c.phase += freq * dt
	for c.phase >= 1.0 {
		c.phase -= 1.0
	}
	sample := 1.0
	if c.phase >= 0.5 {
		sample = -1.0
	}
	return sample * float64(c.volume&0x0F) / 15.0
}
