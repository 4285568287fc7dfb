package emu

import (
	"encoding/hex"
	"io"

	"github.com/go-faster/jx"
)

// A State is a point-in-time snapshot of the machine, detached from the CPU
// that produced it.
type State struct {
	PC     uint16
	Flag   bool
	Cycles uint64
	Regs   [16]uint8
	Stack  []uint16
	Output []byte

	Status Status
	Fault  FaultReason
}

// Snapshot captures the current machine state.
func (c *CPU) Snapshot() State {
	s := State{
		PC:     c.PC,
		Flag:   c.Flag,
		Cycles: c.Cycles,
		Regs:   c.Regs,
		Stack:  append([]uint16(nil), c.callStack...),
		Output: append([]byte(nil), c.out...),
		Status: c.outcome.Status,
		Fault:  c.outcome.Fault,
	}
	return s
}

// WriteJSON writes the snapshot to w as a single JSON object. The program
// output is hex-encoded, matching what the run front-end prints.
func (s State) WriteJSON(w io.Writer) error {
	var e jx.Encoder
	e.ObjStart()

	e.FieldStart("pc")
	e.Int(int(s.PC))
	e.FieldStart("flag")
	e.Bool(s.Flag)
	e.FieldStart("cycles")
	e.UInt64(s.Cycles)

	e.FieldStart("registers")
	e.ArrStart()
	for _, r := range s.Regs {
		e.Int(int(r))
	}
	e.ArrEnd()

	e.FieldStart("stack")
	e.ArrStart()
	for _, a := range s.Stack {
		e.Int(int(a))
	}
	e.ArrEnd()

	e.FieldStart("output")
	e.Str(hex.EncodeToString(s.Output))

	e.FieldStart("status")
	e.Str(s.Status.String())
	if s.Status == Faulted {
		e.FieldStart("fault")
		e.Str(s.Fault.String())
	}

	e.ObjEnd()

	_, err := w.Write(append(e.Bytes(), '\n'))
	return err
}
