package emu

import (
	"fmt"
	"io"
	"strings"

	"slede8/emu/log"
)

// CPU is the SLEDE8 executor. It exclusively owns the memory image, the input
// stream and the register file for the lifetime of one run; front-ends
// (plain run, debugger) each construct a fresh CPU.
type CPU struct {
	Mem *Memory
	In  *Input

	Regs   [16]uint8
	PC     uint16
	Flag   bool
	Cycles uint64

	callStack []uint16
	out       []byte
	outcome   Outcome

	// Non-nil when execution tracing is enabled.
	tracer io.Writer
}

// NewCPU creates a CPU at power-up state: zeroed registers, PC at the load
// origin, empty call stack.
func NewCPU(mem *Memory, in *Input) *CPU {
	return &CPU{Mem: mem, In: in}
}

// SetTrace enables the execution trace, one line per executed instruction.
func (c *CPU) SetTrace(w io.Writer) {
	c.tracer = w
}

// Output returns the bytes written by the program so far.
func (c *CPU) Output() []byte {
	return c.out
}

// Outcome returns the result of the last executed step.
func (c *CPU) Outcome() Outcome {
	return c.outcome
}

// CallDepth returns the current call stack depth.
func (c *CPU) CallDepth() int {
	return len(c.callStack)
}

func (c *CPU) fault(reason FaultReason, addr uint16) Outcome {
	c.outcome = Outcome{Status: Faulted, Fault: reason, Addr: addr}
	log.ModCPU.DebugZ("fault").Stringer("reason", reason).Hex16("addr", addr).End()
	return c.outcome
}

// Step executes exactly one instruction and returns the resulting outcome.
// Halted and Faulted are sticky: stepping a terminated CPU is a no-op.
func (c *CPU) Step() Outcome {
	if c.outcome.Status != Running {
		return c.outcome
	}

	pc := c.PC
	if int(pc) >= MemSize {
		return c.fault(FaultOutOfBounds, pc)
	}

	ins := Decode(c.Mem, pc)
	if !ins.Valid() {
		return c.fault(FaultInvalidOpcode, pc)
	}

	c.traceOp(pc, ins)
	c.PC = pc + uint16(ins.Len)
	c.Cycles++

	switch ins.Op {
	case OpStopp:
		c.outcome = Outcome{Status: Halted, Addr: pc}

	case OpSettImm:
		c.Regs[ins.RX] = ins.Imm
	case OpSett:
		c.Regs[ins.RX] = c.Regs[ins.RY]

	case OpFinn:
		c.Regs[0] = uint8(ins.Addr)
		c.Regs[1] = uint8(ins.Addr >> 8)
	case OpLast:
		c.Regs[ins.RX], _ = c.Mem.Read8(c.dataAddr())
	case OpLagr:
		c.Mem.Write8(c.dataAddr(), c.Regs[ins.RX])

	case OpOg:
		c.Regs[ins.RX] &= c.Regs[ins.RY]
	case OpEller:
		c.Regs[ins.RX] |= c.Regs[ins.RY]
	case OpXeller:
		c.Regs[ins.RX] ^= c.Regs[ins.RY]
	case OpVskift:
		c.Regs[ins.RX] <<= c.Regs[ins.RY]
	case OpHskift:
		c.Regs[ins.RX] >>= c.Regs[ins.RY]
	case OpPluss:
		c.Regs[ins.RX] += c.Regs[ins.RY]
	case OpMinus:
		c.Regs[ins.RX] -= c.Regs[ins.RY]

	case OpLes:
		b, ok := c.In.Next()
		if !ok {
			return c.fault(FaultInputExhausted, pc)
		}
		c.Regs[ins.RX] = b
	case OpSkriv:
		c.out = append(c.out, c.Regs[ins.RX])

	case OpLik:
		c.Flag = c.Regs[ins.RX] == c.Regs[ins.RY]
	case OpUlik:
		c.Flag = c.Regs[ins.RX] != c.Regs[ins.RY]
	case OpMe:
		c.Flag = c.Regs[ins.RX] < c.Regs[ins.RY]
	case OpMel:
		c.Flag = c.Regs[ins.RX] <= c.Regs[ins.RY]
	case OpSe:
		c.Flag = c.Regs[ins.RX] > c.Regs[ins.RY]
	case OpSel:
		c.Flag = c.Regs[ins.RX] >= c.Regs[ins.RY]

	case OpHopp:
		c.PC = ins.Addr
	case OpBhopp:
		if c.Flag {
			c.PC = ins.Addr
		}
	case OpTur:
		c.callStack = append(c.callStack, c.PC)
		c.PC = ins.Addr
	case OpRetur:
		if len(c.callStack) == 0 {
			return c.fault(FaultStackUnderflow, pc)
		}
		c.PC = c.callStack[len(c.callStack)-1]
		c.callStack = c.callStack[:len(c.callStack)-1]

	case OpNope:
	}

	return c.outcome
}

// dataAddr is the effective address used by LAST and LAGR, the r1:r0 pair
// masked to the 12-bit address space.
func (c *CPU) dataAddr() uint16 {
	return (uint16(c.Regs[1])<<8 | uint16(c.Regs[0])) & 0xfff
}

// RunUntil repeatedly steps while the CPU is running and cont allows
// continuation. cont is consulted between every single step so a stopping
// condition is never overshot. A nil cont runs to termination.
func (c *CPU) RunUntil(cont func(*CPU) bool) Outcome {
	for c.outcome.Status == Running {
		if cont != nil && !cont(c) {
			break
		}
		c.Step()
	}
	return c.outcome
}

// Run executes until the program halts or faults.
func (c *CPU) Run() Outcome {
	return c.RunUntil(nil)
}

func (c *CPU) traceOp(pc uint16, ins Instr) {
	if c.tracer == nil {
		return
	}
	fmt.Fprintf(c.tracer, "0x%03x: %-16s f:%d ", pc, ins, b2i(c.Flag))
	for _, r := range c.Regs {
		fmt.Fprintf(c.tracer, "%02x ", r)
	}
	fmt.Fprintf(c.tracer, "CYC:%d\n", c.Cycles)
}

// StateString renders the machine state the way the debugger and the end of
// run report show it: PC, flag and cycle counter, the register file on two
// lines, then the instruction at PC.
func (c *CPU) StateString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pc: 0x%03x flagg: %t sykler: %d\n", c.PC, c.Flag, c.Cycles)
	for r := range c.Regs {
		fmt.Fprintf(&sb, "r%-2d ", r)
	}
	sb.WriteByte('\n')
	for _, v := range c.Regs {
		fmt.Fprintf(&sb, "%02xh ", v)
	}
	sb.WriteByte('\n')
	if int(c.PC) < MemSize {
		fmt.Fprintf(&sb, "%s", Decode(c.Mem, c.PC))
	} else {
		fmt.Fprintf(&sb, "pc out of bounds")
	}
	return sb.String()
}

func b2i(b bool) byte {
	if b {
		return 1
	}
	return 0
}
