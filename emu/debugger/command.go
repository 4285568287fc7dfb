package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

// CmdKind discriminates debugger commands.
type CmdKind uint8

const (
	CmdStep CmdKind = iota
	CmdContinue
	CmdBreakAdd
	CmdBreakList
	CmdBreakRemove
	CmdBreakEnable
	CmdBreakDisable
	CmdDump
	CmdRegs
	CmdDisasm
	CmdHelp
	CmdQuit
)

// A Command is one parsed debugger command. Keeping commands as explicit
// values decouples the session loop (and its tests) from token parsing.
type Command struct {
	Kind CmdKind
	Addr uint16
	N    int // dump length, disasm instruction count

	// HasAddr distinguishes "disasm" (from PC) from "disasm 0x100".
	HasAddr bool
}

const helpText = `commands:
  s, step              execute one instruction (breakpoints ignored)
  c, continue          run until a breakpoint, halt or fault
  b                    list breakpoints
  b <addr>             set breakpoint at addr, enabled
  b rm <addr>          remove breakpoint
  b on|off <addr>      enable/disable breakpoint
  m <addr> <len>       dump memory, hexadecimal
  d [addr] [n]         disassemble n instructions (default: 8, from pc)
  r, regs              show registers and machine state
  h, help              show this help
  q, quit              end the session

addresses and lengths are hexadecimal, 0x prefix optional.
an empty line repeats step.`

// Parse parses one line of user input into a Command.
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{Kind: CmdStep}, nil
	}

	cmd, args := tokens[0], tokens[1:]
	switch cmd {
	case "s", "step":
		return Command{Kind: CmdStep}, nil

	case "c", "continue", "cont":
		return Command{Kind: CmdContinue}, nil

	case "b", "break":
		return parseBreak(args)

	case "m", "mem", "x":
		if len(args) != 2 {
			return Command{}, fmt.Errorf("usage: m <addr> <len>")
		}
		addr, err := parseAddr(args[0])
		if err != nil {
			return Command{}, err
		}
		n, err := strconv.ParseUint(strings.TrimPrefix(args[1], "0x"), 16, 16)
		if err != nil {
			return Command{}, fmt.Errorf("bad length %q", args[1])
		}
		return Command{Kind: CmdDump, Addr: addr, N: int(n)}, nil

	case "d", "disasm":
		c := Command{Kind: CmdDisasm, N: 8}
		if len(args) > 0 {
			addr, err := parseAddr(args[0])
			if err != nil {
				return Command{}, err
			}
			c.Addr, c.HasAddr = addr, true
		}
		if len(args) > 1 {
			n, err := strconv.ParseUint(strings.TrimPrefix(args[1], "0x"), 16, 16)
			if err != nil {
				return Command{}, fmt.Errorf("bad count %q", args[1])
			}
			c.N = int(n)
		}
		return c, nil

	case "r", "regs":
		return Command{Kind: CmdRegs}, nil

	case "h", "help", "?":
		return Command{Kind: CmdHelp}, nil

	case "q", "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	}

	return Command{}, fmt.Errorf("unknown command %q (try help)", cmd)
}

func parseBreak(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{Kind: CmdBreakList}, nil
	}

	kind := CmdBreakAdd
	switch args[0] {
	case "rm", "remove":
		kind = CmdBreakRemove
		args = args[1:]
	case "on", "enable":
		kind = CmdBreakEnable
		args = args[1:]
	case "off", "disable":
		kind = CmdBreakDisable
		args = args[1:]
	}
	if len(args) != 1 {
		return Command{}, fmt.Errorf("usage: b [rm|on|off] <addr>")
	}

	addr, err := parseAddr(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, Addr: addr}, nil
}

func parseAddr(tok string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(tok, "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q", tok)
	}
	return uint16(v), nil
}
