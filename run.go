package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"slede8/emu"
)

// runMain runs a program to completion and prints its hex-encoded output.
func runMain(args Run, cfg emu.Config) int {
	cpu, err := loadMachine(args.ProgramPath, args.InputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if args.Trace != nil {
		cpu.SetTrace(args.Trace)
		defer args.Trace.Close()
	}

	var out emu.Outcome
	if args.MaxCycles > 0 {
		out = cpu.RunUntil(func(c *emu.CPU) bool {
			return c.Cycles < args.MaxCycles
		})
	} else {
		out = cpu.Run()
	}

	if cfg.Run.ShowEndState {
		fmt.Fprintln(os.Stderr, "End state:")
		fmt.Fprintln(os.Stderr, cpu.StateString())
	}

	code := 0
	switch out.Status {
	case emu.Faulted:
		fmt.Fprintln(os.Stderr, out)
		code = 1
	case emu.Running:
		fmt.Fprintf(os.Stderr, "still running after %d cycles\n", cpu.Cycles)
	}

	fmt.Println(hex.EncodeToString(cpu.Output()))

	if args.State != nil {
		defer args.State.Close()
		if err := cpu.Snapshot().WriteJSON(args.State); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write state: %v\n", err)
			return 1
		}
	}
	return code
}
