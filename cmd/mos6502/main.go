// Package main implements the mos6502 command-line front end: load an
// iNES ROM, run it on the interpreter for a fixed cycle budget, optionally
// tracing every instruction.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mos6502/internal/cartridge"
	"mos6502/internal/config"
	"mos6502/internal/cpu"
	"mos6502/internal/trace"
	"mos6502/internal/version"
)

func main() {
	var (
		romFile    = flag.String("rom", "", "Path to an iNES ROM file")
		configFile = flag.String("config", "", "Path to a configuration file")
		cycles     = flag.Int64("cycles", 0, "Cycle budget (0 uses the config file's value)")
		traceMode  = flag.String("trace", "", "Override trace mode: none, text, interactive")
		showHelp   = flag.Bool("help", false, "Show help message")
		showVer    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		printUsage()
		os.Exit(0)
	}
	if *showVer {
		version.PrintBuildInfo()
		os.Exit(0)
	}

	configPath := *configFile
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg := config.NewConfig()
	if err := cfg.LoadFromFile(configPath); err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *romFile != "" {
		cfg.ROMPath = *romFile
	}
	if *cycles != 0 {
		cfg.CycleBudget = *cycles
	}
	if *traceMode != "" {
		cfg.Trace = *traceMode
	}

	if cfg.ROMPath == "" {
		log.Fatal("no ROM specified: pass -rom or set rom_path in the config file")
	}

	fmt.Printf("mos6502: loading %s\n", cfg.ROMPath)
	mapper, err := cartridge.LoadFile(cfg.ROMPath)
	if err != nil {
		log.Fatalf("load ROM: %v", err)
	}

	interp := cpu.NewInterpreter(mapper)
	if err := interp.Reset(); err != nil {
		log.Fatalf("reset: %v", err)
	}

	if err := run(interp, cfg); err != nil {
		log.Fatalf("run: %v", err)
	}

	fmt.Printf("mos6502: stopped after %d cycles\n", interp.Cycles())
}

func run(interp *cpu.Interpreter, cfg *config.Config) error {
	switch cfg.Trace {
	case "interactive":
		return trace.Interactive(interp)
	case "text":
		interp.Trace(trace.NewTextSink(os.Stdout))
	}

	budget := cfg.CycleBudget
	if budget <= 0 {
		budget = 1_000_000
	}
	_, err := interp.Run(budget)
	return err
}

func printUsage() {
	fmt.Println("mos6502 - MOS 6502 emulator core")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  mos6502 -rom <file> [options]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  mos6502 -rom game.nes")
	fmt.Println("  mos6502 -rom game.nes -cycles 5000000")
	fmt.Println("  mos6502 -rom game.nes -trace text")
	fmt.Println("  mos6502 -rom game.nes -trace interactive")
}
