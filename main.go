package main

import (
	"fmt"
	"os"

	"slede8/emu"
	"slede8/s8"
)

const version = "0.3.0"

func main() {
	cli := parseArgs(os.Args[1:])
	cfg := emu.LoadConfigOrDefault()

	switch cli.mode {
	case runMode:
		os.Exit(runMain(cli.Run, cfg))
	case debugMode:
		os.Exit(debugMain(cli.Debug, cfg))
	case disasmMode:
		os.Exit(disasmMain(cli.Disasm))
	case infosMode:
		prog, err := s8.Open(cli.Infos.ProgramPath)
		checkf(err, "failed to open program")
		prog.PrintInfos(os.Stdout)
	case versionMode:
		fmt.Println("slede8", version)
	}
}

// loadMachine builds a fresh CPU from a program file and an optional input
// file. Oversized programs are rejected here, before any execution begins.
func loadMachine(progPath, inputPath string) (*emu.CPU, error) {
	prog, err := s8.Open(progPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open program: %w", err)
	}

	var input []byte
	if inputPath != "" {
		if input, err = os.ReadFile(inputPath); err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
	}

	mem, err := emu.NewMemory(prog.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to load program: %w", err)
	}
	return emu.NewCPU(mem, emu.NewInput(input)), nil
}
