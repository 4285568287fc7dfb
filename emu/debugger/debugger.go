// Package debugger composes a SLEDE8 executor with a breakpoint set and an
// interactive command interpreter.
package debugger

import (
	"slede8/emu"
	"slede8/emu/log"
)

// A Debugger drives one CPU. Breakpoints only gate Continue; Step always
// executes exactly one instruction. After the program halts or faults the
// debugger stays usable for post-mortem inspection.
type Debugger struct {
	CPU *emu.CPU
	BPs Breakpoints
}

func New(cpu *emu.CPU) *Debugger {
	return &Debugger{CPU: cpu}
}

// Step executes exactly one instruction, regardless of breakpoints.
func (d *Debugger) Step() emu.Outcome {
	return d.CPU.Step()
}

// Continue resumes execution until the PC lands on an enabled breakpoint, or
// the CPU leaves the running state. Continuing from an address that itself
// carries a breakpoint executes that instruction first, so repeated continues
// make progress. atBreak reports whether the stop is due to a breakpoint.
func (d *Debugger) Continue() (out emu.Outcome, atBreak bool) {
	out = d.CPU.Outcome()
	if out.Status != emu.Running {
		return out, false
	}

	if out = d.CPU.Step(); out.Status != emu.Running {
		return out, false
	}

	out = d.CPU.RunUntil(func(c *emu.CPU) bool {
		return !d.BPs.EnabledAt(c.PC)
	})
	atBreak = out.Status == emu.Running && d.BPs.EnabledAt(d.CPU.PC)
	if atBreak {
		log.ModDbg.DebugZ("breakpoint hit").Hex16("addr", d.CPU.PC).End()
	}
	return out, atBreak
}

// Dump reads n bytes of memory at addr. Requests crossing the end of the
// address space are truncated to the in-bounds bytes; truncated reports that.
func (d *Debugger) Dump(addr uint16, n int) (buf []byte, truncated bool) {
	return d.CPU.Mem.ReadRange(addr, n)
}
