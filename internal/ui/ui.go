package ui

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/exp/maps"

	"github.com/pgattic/famicore/internal/cpu"
	"github.com/pgattic/famicore/internal/nes"
)

// P - pause
// R - one instruction and stop
// Tab - flip the memory view between page zero and the stack page

const (
	screenWidth  = 780
	screenHeight = 460

	hexViewOffsetX = 260

	// NTSC CPU clock 1.789773 MHz at 60 frames
	cyclesPerFrame = 29780

	disasmContext = 7
)

type UI struct {
	console *nes.Console
	disasm  map[uint16]string
	addrs   []uint16

	hexPage    uint16
	halted     bool
	haltReason string
}

func New(console *nes.Console) *UI {
	disasm := console.Disassemble()
	addrs := maps.Keys(disasm)
	slices.Sort(addrs)
	return &UI{
		console: console,
		disasm:  disasm,
		addrs:   addrs,
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.console.SetPaused(!ui.console.Paused())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ui.hexPage ^= 0x0100
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !ui.halted {
		if err := ui.console.StepInstruction(); err != nil {
			ui.halt(err)
		}
		ui.console.SetPaused(true)
	}

	if ui.console.Paused() || ui.halted {
		return nil
	}

	for i := 0; i < cyclesPerFrame; i++ {
		if err := ui.console.Step(); err != nil {
			ui.halt(err)
			break
		}
	}
	return nil
}

// halt freezes execution but keeps the window alive so the final CPU
// state can be inspected.
func (ui *UI) halt(err error) {
	ui.halted = true
	ui.haltReason = err.Error()
	if errors.Is(err, cpu.ErrBreak) {
		ui.haltReason = "break instruction"
	}
}

func (ui *UI) Draw(screen *ebiten.Image) {
	info := ui.console.DebugInfo()

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " CYC: %d\n", info.Cycles)
	fmt.Fprintf(&infoStr, " STATUS: %s\n", info.StatusString())
	fmt.Fprintf(&infoStr, " PC: $%04X\n", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", info.A, info.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", info.X, info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", info.Y, info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)
	switch {
	case ui.halted:
		fmt.Fprintf(&infoStr, " HALTED: %s\n", ui.haltReason)
	case ui.console.Paused():
		infoStr.WriteString(" PAUSED\n")
	default:
		infoStr.WriteString(" RUNNING\n")
	}
	infoStr.WriteString("\n")
	ui.writeDisasm(&infoStr, info.PC)

	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), 0, 0)
	ebitenutil.DebugPrintAt(screen, ui.hexView(), hexViewOffsetX, 0)
}

// writeDisasm prints the instructions around pc, marking pc itself.
func (ui *UI) writeDisasm(w *strings.Builder, pc uint16) {
	idx, _ := slices.BinarySearch(ui.addrs, pc)
	lo := max(0, idx-disasmContext)
	hi := min(len(ui.addrs), idx+disasmContext+1)
	for i := lo; i < hi; i++ {
		addr := ui.addrs[i]
		marker := " "
		if addr == pc {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%s\n", marker, ui.disasm[addr])
	}
}

func (ui *UI) hexView() string {
	var b strings.Builder
	fmt.Fprintf(&b, " MEMORY $%04X-$%04X\n\n", ui.hexPage, ui.hexPage+0xFF)
	for row := 0; row < 16; row++ {
		base := ui.hexPage + uint16(row*16)
		fmt.Fprintf(&b, " $%04X:", base)
		for col := 0; col < 16; col++ {
			fmt.Fprintf(&b, " %02X", ui.console.Peek8(base+uint16(col)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("famicore")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
