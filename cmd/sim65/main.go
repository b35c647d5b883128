// sim65 loads a raw ROM image at a hex start address and drops into the
// interactive monitor: sim65 [flags] <rom> <hex-start>
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/jmchacon/sim65/acia"
	"github.com/jmchacon/sim65/audio"
	"github.com/jmchacon/sim65/bus"
	"github.com/jmchacon/sim65/clock"
	"github.com/jmchacon/sim65/cpu"
	"github.com/jmchacon/sim65/machine"
	"github.com/jmchacon/sim65/monitor"
	"github.com/jmchacon/sim65/profile"
	"github.com/jmchacon/sim65/tia"
	"github.com/jmchacon/sim65/via"
)

// stdoutSerial writes serial bytes from the ACIA/VIA straight to stdout.
type stdoutSerial struct{}

func (stdoutSerial) SerialOut(b uint8) {
	fmt.Printf("%c", b)
}

func main() {
	var (
		profilePath = pflag.String("profile", "", "Path to a YAML machine profile")
		clockHz     = pflag.Float64("clock-hz", 0, "Pace the CPU at this frequency (0 = free run)")
		noClock     = pflag.Bool("no-clock", false, "Force free running even if the profile paces")
		tvSystem    = pflag.String("tv", "", "TV system: ntsc or pal (overrides the profile)")
		trace       = pflag.Bool("trace", false, "Log every bus access at debug level")
		wavOut      = pflag.String("wav-out", "", "Record TIA audio to this WAV file on exit")
		wavSeconds  = pflag.Float64("wav-seconds", 1.0, "Seconds of TIA audio to record")
	)
	pflag.Parse()

	logger := log.New(os.Stderr)
	if *trace {
		logger.SetLevel(log.DebugLevel)
	}

	if pflag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <rom> <hex-start>\n", os.Args[0])
		os.Exit(1)
	}
	romPath := pflag.Arg(0)
	startStr := strings.TrimPrefix(strings.TrimPrefix(pflag.Arg(1), "$"), "0x")
	start, err := strconv.ParseUint(startStr, 16, 16)
	if err != nil {
		logger.Error("bad start address", "arg", pflag.Arg(1), "err", err)
		os.Exit(1)
	}

	prof := profile.Default()
	if *profilePath != "" {
		if prof, err = profile.Load(*profilePath); err != nil {
			logger.Error("bad profile", "err", err)
			os.Exit(1)
		}
	}
	if *tvSystem != "" {
		prof.TVSystem = *tvSystem
	}
	if *clockHz > 0 {
		prof.ClockHz = *clockHz
	}
	if *noClock {
		prof.ClockHz = 0
	}

	var pacer *clock.Chip
	if prof.ClockHz > 0 {
		if pacer, err = clock.Init(&clock.ChipDef{Frequency: prof.ClockHz}); err != nil {
			logger.Error("can't initialize clock", "err", err)
			os.Exit(1)
		}
	}

	mode := tia.TIA_MODE_NTSC
	if prof.TVSystem == "pal" {
		mode = tia.TIA_MODE_PAL
	}

	def := &bus.BusDef{
		MemorySize: prof.MemorySize,
		Pacer:      pacer,
	}
	if prof.Attach.TIA {
		if def.TIA, err = tia.Init(&tia.ChipDef{Mode: mode}); err != nil {
			logger.Error("can't initialize TIA", "err", err)
			os.Exit(1)
		}
	}
	if prof.Attach.ACIA {
		def.ACIA = acia.Init(&acia.ChipDef{Receiver: stdoutSerial{}})
	}
	if prof.Attach.VIA {
		def.VIA = via.Init(&via.ChipDef{Receiver: stdoutSerial{}})
	}

	b, err := bus.Init(def)
	if err != nil {
		logger.Error("can't initialize bus", "err", err)
		os.Exit(1)
	}
	if prof.ConsoleAddr != 0 {
		b.AddHandler(prof.ConsoleAddr, prof.ConsoleAddr, bus.NewConsole(os.Stdout))
	}
	if *trace {
		b.Trace = func(write bool, addr uint16, val uint8) {
			dir := "r"
			if write {
				dir = "w"
			}
			logger.Debug("bus", "dir", dir, "addr", fmt.Sprintf("%.4X", addr), "val", fmt.Sprintf("%.2X", val))
		}
	}

	if err := b.LoadFile(romPath, uint16(start)); err != nil {
		logger.Error("can't load ROM", "err", err)
		os.Exit(1)
	}

	c, err := cpu.Init(&cpu.ChipDef{Ram: b, Pacer: pacer})
	if err != nil {
		logger.Error("can't initialize cpu", "err", err)
		os.Exit(1)
	}
	c.PC = uint16(start)

	m := machine.New(c, b)
	mon := monitor.Init(&monitor.Def{
		Machine: m,
		In:      os.Stdin,
		Out:     os.Stdout,
		Logger:  logger,
	})
	fmt.Printf("Loaded %s at %.4X. Type help for commands.\n", romPath, start)
	mon.Run()

	if *wavOut != "" && b.TIA() != nil {
		rec := audio.NewRecorder(b.TIA())
		rec.CaptureSeconds(*wavSeconds)
		if err := rec.WriteWAV(*wavOut); err != nil {
			logger.Error("can't write WAV", "err", err)
			os.Exit(1)
		}
		logger.Info("wrote audio", "path", *wavOut, "samples", rec.Len())
	}
}
