package main

import (
	"fmt"
	"os"

	"slede8/emu"
	"slede8/s8"
)

// disasmMain prints the linear disassembly of the loaded program region.
func disasmMain(args Disasm) int {
	prog, err := s8.Open(args.ProgramPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	mem, err := emu.NewMemory(prog.Data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := emu.Fdisasm(os.Stdout, mem, 0, uint16(mem.ProgramLen()), args.Raw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
