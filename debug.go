package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"slede8/emu"
	"slede8/emu/debugger"
)

// debugMain runs the interactive debugger session on stdin/stdout.
func debugMain(args Debug, cfg emu.Config) int {
	cpu, err := loadMachine(args.ProgramPath, args.InputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	dbg := debugger.New(cpu)
	sess := debugger.NewSession(dbg, os.Stdout, cfg.Debugger)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		sess.Prompt = cfg.Debugger.Prompt
	}

	if err := sess.Run(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
