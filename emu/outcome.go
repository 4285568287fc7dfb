package emu

import "fmt"

// Status is the execution state of a CPU.
type Status uint8

const (
	Running Status = iota
	Halted
	Faulted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// FaultReason qualifies a Faulted outcome.
type FaultReason uint8

const (
	FaultNone FaultReason = iota

	// FaultInvalidOpcode: the decoder could not recognize the encoding at PC.
	FaultInvalidOpcode

	// FaultOutOfBounds: an access (instruction fetch included) beyond the
	// address space.
	FaultOutOfBounds

	// FaultInputExhausted: LES executed with no input bytes left.
	FaultInputExhausted

	// FaultStackUnderflow: RETUR with an empty call stack.
	FaultStackUnderflow
)

func (r FaultReason) String() string {
	switch r {
	case FaultNone:
		return "none"
	case FaultInvalidOpcode:
		return "invalid opcode"
	case FaultOutOfBounds:
		return "out of bounds access"
	case FaultInputExhausted:
		return "input exhausted"
	case FaultStackUnderflow:
		return "call stack underflow"
	}
	return fmt.Sprintf("FaultReason(%d)", uint8(r))
}

// An Outcome is the result of one execution step. Halted and Faulted are
// terminal: once reached, further steps return the same outcome.
type Outcome struct {
	Status Status
	Fault  FaultReason // set when Status == Faulted
	Addr   uint16      // address of the faulting instruction
}

func (o Outcome) String() string {
	if o.Status == Faulted {
		return fmt.Sprintf("faulted at 0x%03x: %s", o.Addr, o.Fault)
	}
	return o.Status.String()
}
