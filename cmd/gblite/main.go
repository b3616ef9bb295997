package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/thelolagemann/gblite/internal/cpu"
	"github.com/thelolagemann/gblite/internal/gameboy"
	"github.com/thelolagemann/gblite/internal/opcodes"
	"github.com/thelolagemann/gblite/pkg/display"
	_ "github.com/thelolagemann/gblite/pkg/display/headless"
	_ "github.com/thelolagemann/gblite/pkg/display/sdl"
	_ "github.com/thelolagemann/gblite/pkg/display/web"
	"github.com/thelolagemann/gblite/pkg/log"
	"github.com/thelolagemann/gblite/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The program image to load")
	opcodeFile := flag.String("opcodes", "", "A JSON opcode table replacing the built-in descriptors")
	displayDriver := flag.String("driver", "auto", "The display driver to use. Can be auto, "+strings.Join(display.DriverNames(), ", "))
	logLevel := flag.String("log-level", "info", "The log level (error, warn, info, debug)")
	trace := flag.Bool("trace", false, "Log every executed instruction (implies -log-level debug)")
	pc := flag.Uint("pc", 0x0000, "The address execution starts at")
	sp := flag.Uint("sp", 0x0000, "The initial stack pointer")
	maxSteps := flag.Uint64("max-steps", 0, "Stop after this many instructions (0 = no limit)")
	dumpOpcodes := flag.Bool("dump-opcodes", false, "Write the opcode table as JSON and exit")
	disasm := flag.Int("disasm", -1, "Disassemble this many instructions from -pc and exit (0 = to the end of the image)")

	display.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if *trace {
		*logLevel = "debug"
	}
	logger, err := log.NewWithLevel(*logLevel)
	if err != nil {
		log.New().Fatal(err)
	}

	if *pc > 0xFFFF || *sp > 0xFFFF {
		logger.Fatal("-pc and -sp must be 16-bit addresses")
	}

	// load the opcode table
	table := cpu.Descriptors()
	if *opcodeFile != "" {
		table, err = opcodes.LoadFile(*opcodeFile)
		if err != nil {
			logger.Fatal(err)
		}
		if err := cpu.CheckDescriptors(table); err != nil {
			logger.Fatal(err)
		}
		logger.Infof("loaded %d opcodes from %s", table.Len(), *opcodeFile)
	}

	if *dumpOpcodes {
		if err := table.WriteJSON(os.Stdout); err != nil {
			logger.Fatal(err)
		}
		return
	}

	if *romFile == "" && *disasm < 0 {
		*romFile, err = utils.AskForFile("Select a program image", ".", "gb", "bin", "zip", "7z", "gz", "br")
		if err != nil {
			logger.Warnf("no program image selected: %v", err)
		}
	}

	// a missing image runs from zeroed memory
	var rom []byte
	if *romFile != "" {
		rom, err = utils.LoadFile(*romFile)
		if err != nil {
			logger.Warnf("unable to load %s, using an empty image: %v", *romFile, err)
			rom = nil
		}
	}

	if *disasm >= 0 {
		for _, line := range table.Disassemble(rom, uint16(*pc), *disasm) {
			fmt.Println(line)
		}
		return
	}

	driver := display.GetDriver(*displayDriver)
	if driver == nil {
		logger.Fatal(fmt.Sprintf("invalid display driver %q, installed drivers: %s", *displayDriver, strings.Join(display.DriverNames(), ", ")))
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithDescriptors(table),
		gameboy.WithResetVector(uint16(*pc)),
		gameboy.WithStackPointer(uint16(*sp)),
		gameboy.WithMaxSteps(*maxSteps),
		gameboy.WithSurface(driver),
	}
	if *trace {
		opts = append(opts, gameboy.WithTrace())
	}

	gb := gameboy.NewGameBoy(rom, opts...)
	err = gb.Run()
	switch {
	case err == nil:
	case errors.Is(err, cpu.ErrHalted), errors.Is(err, cpu.ErrStopped):
		logger.Infof("emulation stopped after %d steps: %v", gb.Steps(), err)
	default:
		logger.Errorf("emulation failed after %d steps: %v", gb.Steps(), err)
		os.Exit(1)
	}
}
