// vcs runs a raw Atari style ROM against the TIA and shows the
// framebuffer in an SDL window, scaled up with x/image. The ROM is
// copied in at its load address and the reset vector pointed at it.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"

	"github.com/jmchacon/sim65/bus"
	"github.com/jmchacon/sim65/cpu"
	"github.com/jmchacon/sim65/machine"
	"github.com/jmchacon/sim65/tia"
)

var (
	cart     = flag.String("cart", "", "Path to the ROM image to load")
	loadAddr = flag.Int("load_addr", 0xF000, "Address to load the ROM at")
	scale    = flag.Int("scale", 3, "Scale factor to render the screen")
	mode     = flag.String("mode", "NTSC", "Either NTSC or PAL (case insensitive)")
)

const (
	kWIDTH  = 160
	kHEIGHT = 192
)

func main() {
	flag.Parse()

	tiaMode := tia.TIA_MODE_NTSC
	switch strings.ToUpper(*mode) {
	case "NTSC":
	case "PAL":
		tiaMode = tia.TIA_MODE_PAL
	default:
		log.Fatalf("Invalid video mode %q - Must be NTSC or PAL", *mode)
	}

	rom, err := os.ReadFile(*cart)
	if err != nil {
		log.Fatalf("Can't load rom: %v from path: %s", err, *cart)
	}

	var window *sdl.Window
	var surface *sdl.Surface
	scaled := image.NewNRGBA(image.Rect(0, 0, kWIDTH**scale, kHEIGHT**scale))

	sdl.Main(func() {
		var wg sync.WaitGroup
		wg.Add(1)
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
				log.Fatalf("Can't init SDL: %v", err)
			}
			var err error
			window, err = sdl.CreateWindow("vcs", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(kWIDTH**scale), int32(kHEIGHT**scale), sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("Can't create window: %v", err)
			}
			if surface, err = window.GetSurface(); err != nil {
				log.Fatalf("Can't get window surface: %v", err)
			}
			wg.Done()
		})
		wg.Wait()
		defer func() {
			window.Destroy()
			sdl.Quit()
		}()

		t, err := tia.Init(&tia.ChipDef{
			Mode: tiaMode,
			FrameDone: func(frame *image.NRGBA) {
				// Scale up and blit into the window surface.
				draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), frame, frame.Bounds(), draw.Src, nil)
				sdl.Do(func() {
					pixels := surface.Pixels()
					copy(pixels, scaled.Pix)
					window.UpdateSurface()
				})
			},
		})
		if err != nil {
			log.Fatalf("Can't init TIA: %v", err)
		}

		b, err := bus.Init(&bus.BusDef{
			MemorySize: 1 << 16,
			TIA:        t,
		})
		if err != nil {
			log.Fatalf("Can't init bus: %v", err)
		}
		if err := b.LoadProgram(rom, uint16(*loadAddr)); err != nil {
			log.Fatalf("Can't load ROM: %v", err)
		}
		// Point the reset vector at the image.
		b.Write(cpu.RESET_VECTOR, uint8(*loadAddr&0xFF))
		b.Write(cpu.RESET_VECTOR+1, uint8(*loadAddr>>8))

		c, err := cpu.Init(&cpu.ChipDef{Ram: b})
		if err != nil {
			log.Fatalf("Can't init cpu: %v", err)
		}

		m := machine.New(c, b)
		for {
			if m.Step() == 0 {
				fmt.Println("CPU halted")
				return
			}
		}
	})
}
