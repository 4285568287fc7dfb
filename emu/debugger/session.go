package debugger

import (
	"bufio"
	"fmt"
	"io"

	"slede8/emu"
)

// A Session is the interactive loop around a Debugger: read one command,
// dispatch, print the result, repeat until quit or end of input.
type Session struct {
	dbg *Debugger
	w   io.Writer
	cfg emu.DebuggerConfig

	// Prompt written before each read; empty when input is not a terminal.
	Prompt string
}

func NewSession(dbg *Debugger, w io.Writer, cfg emu.DebuggerConfig) *Session {
	return &Session{dbg: dbg, w: w, cfg: cfg}
}

// Run reads commands from r until the user quits or input ends.
func (s *Session) Run(r io.Reader) error {
	fmt.Fprintln(s.w, s.dbg.CPU.StateString())

	sc := bufio.NewScanner(r)
	for {
		if s.Prompt != "" {
			fmt.Fprint(s.w, s.Prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}

		cmd, err := Parse(sc.Text())
		if err != nil {
			fmt.Fprintln(s.w, err)
			continue
		}
		if quit := s.Dispatch(cmd); quit {
			return nil
		}
	}
}

// Dispatch executes one command against the debugger, printing its result.
// It returns true when the session should end.
func (s *Session) Dispatch(cmd Command) (quit bool) {
	cpu := s.dbg.CPU

	switch cmd.Kind {
	case CmdStep:
		out := s.dbg.Step()
		s.report(out, false)

	case CmdContinue:
		out, atBreak := s.dbg.Continue()
		s.report(out, atBreak)

	case CmdBreakAdd:
		s.dbg.BPs.Add(cmd.Addr)
		fmt.Fprintf(s.w, "breakpoint set at 0x%03x\n", cmd.Addr)

	case CmdBreakList:
		if s.dbg.BPs.Len() == 0 {
			fmt.Fprintln(s.w, "no breakpoints")
			break
		}
		for _, bp := range s.dbg.BPs.List() {
			state := "enabled"
			if !bp.Enabled {
				state = "disabled"
			}
			fmt.Fprintf(s.w, "  0x%03x  %s\n", bp.Addr, state)
		}

	case CmdBreakRemove:
		if !s.dbg.BPs.Remove(cmd.Addr) {
			fmt.Fprintf(s.w, "no breakpoint at 0x%03x\n", cmd.Addr)
		}

	case CmdBreakEnable, CmdBreakDisable:
		enable := cmd.Kind == CmdBreakEnable
		if !s.dbg.BPs.SetEnabled(cmd.Addr, enable) {
			fmt.Fprintf(s.w, "no breakpoint at 0x%03x\n", cmd.Addr)
		}

	case CmdDump:
		buf, truncated := s.dbg.Dump(cmd.Addr, cmd.N)
		s.writeDump(cmd.Addr, buf)
		if truncated {
			fmt.Fprintf(s.w, "(truncated at end of address space, %d bytes shown)\n", len(buf))
		}

	case CmdRegs:
		fmt.Fprintln(s.w, cpu.StateString())

	case CmdDisasm:
		addr := cpu.PC
		if cmd.HasAddr {
			addr = cmd.Addr
		}
		n := 0
		for a, ins := range emu.Sweep(cpu.Mem, addr, emu.MemSize) {
			if n++; n > cmd.N {
				break
			}
			fmt.Fprintf(s.w, "0x%03x: %s\n", a, ins)
		}

	case CmdHelp:
		fmt.Fprintln(s.w, helpText)

	case CmdQuit:
		return true
	}
	return false
}

func (s *Session) report(out emu.Outcome, atBreak bool) {
	switch {
	case atBreak:
		fmt.Fprintf(s.w, "breakpoint hit at 0x%03x\n", s.dbg.CPU.PC)
	case out.Status != emu.Running:
		fmt.Fprintln(s.w, out)
	}
	fmt.Fprintln(s.w, s.dbg.CPU.StateString())
}

func (s *Session) writeDump(addr uint16, buf []byte) {
	width := s.cfg.DumpWidth
	if width <= 0 {
		width = 8
	}
	for i, b := range buf {
		if i%width == 0 {
			if i > 0 {
				fmt.Fprintln(s.w)
			}
			fmt.Fprintf(s.w, "0x%03x: ", addr+uint16(i))
		}
		fmt.Fprintf(s.w, "%02x ", b)
	}
	if len(buf) > 0 {
		fmt.Fprintln(s.w)
	}
}
