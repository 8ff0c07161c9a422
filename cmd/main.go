package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/pkg/profile"

	"github.com/pgattic/famicore/internal/cart"
	"github.com/pgattic/famicore/internal/cpu"
	"github.com/pgattic/famicore/internal/nes"
	"github.com/pgattic/famicore/internal/ui"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES image; empty runs a built-in demo program")
	maxCycles := flag.Int("steps", 0, "headless mode: stop after this many cycles, 0 runs until the program halts")
	trace := flag.Bool("trace", false, "headless mode: print every executed instruction")
	withUI := flag.Bool("ui", false, "open the debug monitor window")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var (
		crt *cart.Cartridge
		err error
	)
	if *romPath == "" {
		log.Print("no rom given, running the built-in demo program")
		crt, err = cart.FromBytes(demoImage())
	} else {
		crt, err = cart.FromFile(*romPath)
	}
	if err != nil {
		log.Fatalf("couldn't load the cartridge: %s", err)
	}
	header := crt.Header()
	log.Printf("cartridge: mapper %d, %d PRG banks, %s nametables, %s, %s timing",
		header.Mapper, header.PRGSize, header.Nametables, header.Console, header.Timing)

	console := nes.NewConsole()
	if err := console.LoadCart(crt); err != nil {
		log.Fatalf("couldn't reset the cpu: %s", err)
	}

	if *withUI {
		if err := ui.RunUI(ui.New(console)); err != nil {
			log.Fatalf("ui stopped: %s", err)
		}
		return
	}

	if err := run(console, *maxCycles, *trace); err != nil {
		log.Fatalf("execution stopped: %s", err)
	}
	if *romPath == "" {
		log.Printf("the value at $0000 is %d", console.Peek8(0x0000))
	}
}

// run drives the console one cycle at a time until the program halts,
// an opcode fails to decode, or the cycle limit is hit.
func run(console *nes.Console, maxCycles int, trace bool) error {
	var disasm map[uint16]string
	if trace {
		disasm = console.Disassemble()
	}

	for cycle := 0; maxCycles == 0 || cycle < maxCycles; cycle++ {
		if trace && console.AtInstructionBoundary() {
			log.Print(traceLine(console, disasm))
		}
		if err := console.Step(); err != nil {
			info := console.DebugInfo()
			if errors.Is(err, cpu.ErrBreak) {
				log.Printf("break after %d cycles: A=$%02X X=$%02X Y=$%02X P=%s",
					info.Cycles, info.A, info.X, info.Y, info.StatusString())
				return nil
			}
			return fmt.Errorf("at $%04X: %w", info.PC, err)
		}
	}
	return nil
}

// traceLine renders the instruction at the current PC. The cached
// listing covers only the PRG window; anywhere else falls back to the
// raw byte.
func traceLine(console *nes.Console, disasm map[uint16]string) string {
	pc := console.DebugInfo().PC
	if line, ok := disasm[pc]; ok {
		return line
	}
	return fmt.Sprintf("$%04X: ??? ($%02X)", pc, console.Peek8(pc))
}

// demoImage builds a minimal iNES image whose program stores 0x45 at
// $0000 and halts.
func demoImage() []byte {
	image := make([]byte, cart.HeaderSize+2*0x4000)
	copy(image, []byte{'N', 'E', 'S', 0x1A})
	image[4] = 2 // two 16 KiB PRG banks

	prg := image[cart.HeaderSize:]
	copy(prg, []byte{
		0xA9, 0x45, // LDA #$45
		0x85, 0x00, // STA $00
		0x00, // BRK
	})
	prg[0x7FFC] = 0x00
	prg[0x7FFD] = 0x80
	return image
}
