// Package monitor implements the interactive machine monitor: a small
// line oriented command loop for stepping the CPU, inspecting memory and
// registers, feeding serial input and controlling the pacing clock. It
// reads commands from any io.Reader and writes to any io.Writer so the
// whole surface is testable without a terminal.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/charmbracelet/log"

	"github.com/jmchacon/sim65/clock"
	"github.com/jmchacon/sim65/cpu"
	"github.com/jmchacon/sim65/disassemble"
	"github.com/jmchacon/sim65/machine"
)

// Default instruction budget for a bare `run`.
const kRUN_DEFAULT = 1000000

// Monitor drives a machine from a command stream.
type Monitor struct {
	m      *machine.Machine
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
	done   bool
}

// Def defines a monitor.
type Def struct {
	// Machine is the system under control.
	Machine *machine.Machine
	// In supplies command lines.
	In io.Reader
	// Out receives command output.
	Out io.Writer
	// Logger receives host level diagnostics. May be nil for silence.
	Logger *log.Logger
}

// Init returns a monitor ready to Run.
func Init(def *Def) *Monitor {
	logger := def.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Monitor{
		m:      def.Machine,
		in:     bufio.NewScanner(def.In),
		out:    def.Out,
		logger: logger,
	}
}

// Run processes commands until quit or the input stream ends.
func (mon *Monitor) Run() {
	for !mon.done {
		fmt.Fprintf(mon.out, "sim65> ")
		if !mon.in.Scan() {
			return
		}
		mon.Dispatch(mon.in.Text())
	}
}

// Dispatch executes a single command line.
func (mon *Monitor) Dispatch(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "help":
		mon.help()
	case "quit", "q":
		mon.done = true
	case "reset":
		mon.m.Reset()
		fmt.Fprintf(mon.out, "Reset complete. PC=%.4X\n", mon.m.CPU.PC)
	case "step":
		mon.step(args)
	case "run":
		mon.run(args)
	case "mem", "dump":
		mon.mem(args)
	case "pc":
		if addr, ok := mon.parseAddr(args, 0); ok {
			mon.m.CPU.PC = addr
		}
	case "reg", "regs":
		mon.regs()
	case "irq":
		cycles := mon.m.CPU.IRQ()
		if cycles == 0 {
			fmt.Fprintf(mon.out, "IRQ masked (I=1)\n")
			break
		}
		fmt.Fprintf(mon.out, "IRQ taken. PC=%.4X\n", mon.m.CPU.PC)
	case "nmi":
		mon.m.CPU.NMI()
		fmt.Fprintf(mon.out, "NMI taken. PC=%.4X\n", mon.m.CPU.PC)
	case "stack":
		mon.stack(args)
	case "serial":
		mon.serial(line)
	case "clear", "cls":
		fmt.Fprintf(mon.out, "\033[2J\033[H")
	case "load":
		mon.load(args)
	case "disasm", "dasm":
		mon.disasm(args)
	case "clock":
		mon.clock(args)
	default:
		fmt.Fprintf(mon.out, "Unknown command: %s\n", cmd)
	}
}

func (mon *Monitor) help() {
	fmt.Fprint(mon.out, `Commands:
  help                  this text
  quit                  exit the monitor
  reset                 reset bus and CPU
  step [N]              execute N instructions (default 1)
  run [N]               run until trap/halt or N instructions
  mem <addr> [count]    hex dump memory
  pc <addr>             set the program counter
  reg                   show registers
  irq                   raise an IRQ
  nmi                   raise an NMI
  stack [N]             dump the top N stack bytes
  serial <string>       feed serial input
  clear                 clear the screen
  load <file> [addr]    load a binary image
  disasm <addr> [count] disassemble
  clock on|off          enable/disable pacing
  clock freq <hz>       set the pacing frequency
`)
}

// parseAddr pulls a hex address out of args[idx], accepting bare hex and
// $ or 0x prefixes.
func (mon *Monitor) parseAddr(args []string, idx int) (uint16, bool) {
	if len(args) <= idx {
		fmt.Fprintf(mon.out, "Missing address\n")
		return 0, false
	}
	s := strings.TrimPrefix(strings.TrimPrefix(args[idx], "$"), "0x")
	val, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		fmt.Fprintf(mon.out, "Bad address %q\n", args[idx])
		return 0, false
	}
	return uint16(val), true
}

func parseCount(args []string, idx, def int) int {
	if len(args) <= idx {
		return def
	}
	val, err := strconv.Atoi(args[idx])
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func (mon *Monitor) step(args []string) {
	n := parseCount(args, 0, 1)
	for i := 0; i < n; i++ {
		cycles := mon.m.Step()
		if mon.m.CPU.Halted() {
			fmt.Fprintf(mon.out, "CPU halted at PC=%.4X\n", mon.m.CPU.PC)
			return
		}
		if i == n-1 {
			str, _ := disassemble.Step(mon.m.CPU.PC, mon.m.Bus)
			fmt.Fprintf(mon.out, "%d cycles. Next: %s\n", cycles, str)
		}
	}
}

func (mon *Monitor) run(args []string) {
	n := parseCount(args, 0, kRUN_DEFAULT)
	pc, steps := mon.m.RunUntilTrap(n)
	state := "stopped"
	if mon.m.CPU.Halted() {
		state = "halted"
	}
	fmt.Fprintf(mon.out, "%s after %d instructions. PC=%.4X\n", state, steps, pc)
}

func (mon *Monitor) mem(args []string) {
	addr, ok := mon.parseAddr(args, 0)
	if !ok {
		fmt.Fprintf(mon.out, "Usage: mem <hex_address> [count]\n")
		return
	}
	count := parseCount(args, 1, 16)
	for i := 0; i < count; i++ {
		if i%16 == 0 {
			if i != 0 {
				fmt.Fprintf(mon.out, "\n")
			}
			fmt.Fprintf(mon.out, "%.4X:", addr+uint16(i))
		}
		fmt.Fprintf(mon.out, " %.2X", mon.m.Bus.Read(addr+uint16(i)))
	}
	fmt.Fprintf(mon.out, "\n")
}

func (mon *Monitor) regs() {
	c := mon.m.CPU
	fmt.Fprintf(mon.out, "PC=%.4X A=%.2X X=%.2X Y=%.2X S=%.2X P=%.2X [%s]\n",
		c.PC, c.A, c.X, c.Y, c.S, c.Status(), flagString(c))
}

func flagString(c *cpu.Chip) string {
	status := c.Status()
	names := "NV-BDIZC"
	out := []byte(names)
	for i := 0; i < 8; i++ {
		if status&(0x80>>uint(i)) == 0x00 {
			out[i] = '.'
		}
	}
	// Bits 5 and 4 aren't flags.
	out[2], out[3] = '-', '-'
	return string(out)
}

func (mon *Monitor) stack(args []string) {
	count := parseCount(args, 0, 8)
	s := mon.m.CPU.S
	for i := 0; i < count; i++ {
		addr := 0x0100 + uint16(s) + 1 + uint16(i)
		if addr > 0x01FF {
			break
		}
		fmt.Fprintf(mon.out, "%.4X: %.2X\n", addr, mon.m.Bus.Read(addr))
	}
}

// serial feeds everything after the command word into the ACIA (or the
// VIA inbound ring when no ACIA is attached).
func (mon *Monitor) serial(line string) {
	idx := strings.Index(line, " ")
	if idx < 0 {
		fmt.Fprintf(mon.out, "Usage: serial <string>\n")
		return
	}
	payload := []uint8(line[idx+1:])
	switch {
	case mon.m.Bus.ACIA() != nil:
		mon.m.Bus.ACIA().ProvideInput(payload)
	case mon.m.Bus.VIA() != nil:
		mon.m.Bus.VIA().SerialFeed(payload)
	default:
		fmt.Fprintf(mon.out, "No serial device attached\n")
		return
	}
	fmt.Fprintf(mon.out, "Fed %d bytes\n", len(payload))
}

func (mon *Monitor) load(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(mon.out, "Usage: load <file> [addr]\n")
		return
	}
	addr := uint16(0x0000)
	if len(args) > 1 {
		var ok bool
		if addr, ok = mon.parseAddr(args, 1); !ok {
			return
		}
	}
	if err := mon.m.Bus.LoadFile(args[0], addr); err != nil {
		mon.logger.Error("load failed", "err", err)
		fmt.Fprintf(mon.out, "Load failed: %v\n", err)
		return
	}
	fmt.Fprintf(mon.out, "Loaded %s at %.4X\n", args[0], addr)
}

func (mon *Monitor) disasm(args []string) {
	addr, ok := mon.parseAddr(args, 0)
	if !ok {
		fmt.Fprintf(mon.out, "Usage: disasm <addr> [count]\n")
		return
	}
	count := parseCount(args, 1, 10)
	for i := 0; i < count; i++ {
		str, length := disassemble.Step(addr, mon.m.Bus)
		fmt.Fprintf(mon.out, "%s\n", str)
		addr += uint16(length)
	}
}

func (mon *Monitor) clock(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(mon.out, "Usage: clock on|off | clock freq <hz>\n")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		if mon.m.CPU.Pacer() == nil {
			fmt.Fprintf(mon.out, "No frequency set. Use: clock freq <hz>\n")
			return
		}
		mon.m.CPU.Pacer().Reset()
		fmt.Fprintf(mon.out, "Clock on\n")
	case "off":
		mon.m.CPU.SetPacer(nil)
		mon.m.Bus.SetPacer(nil)
		fmt.Fprintf(mon.out, "Clock off\n")
	case "freq":
		if len(args) < 2 {
			fmt.Fprintf(mon.out, "Usage: clock freq <hz>\n")
			return
		}
		hz, err := strconv.ParseFloat(args[1], 64)
		if err != nil || hz <= 0 {
			fmt.Fprintf(mon.out, "Bad frequency %q\n", args[1])
			return
		}
		pacer, err := clock.Init(&clock.ChipDef{Frequency: hz})
		if err != nil {
			mon.logger.Error("clock init failed", "err", err)
			return
		}
		mon.m.CPU.SetPacer(pacer)
		mon.m.Bus.SetPacer(pacer)
		fmt.Fprintf(mon.out, "Clock at %.0f Hz\n", hz)
	default:
		fmt.Fprintf(mon.out, "Unknown clock command %q\n", args[0])
	}
}
