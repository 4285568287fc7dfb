package emu

import (
	"fmt"
	"io"
	"iter"
)

// Sweep returns a linear disassembly of [from, to) as a lazy, restartable
// sequence of (address, instruction) pairs. The sweep has no gaps and no
// overlaps: each address is the previous one plus the previous instruction
// length. Since invalid decodes have length 1, the sweep terminates over any
// byte content, interspersed data included.
func Sweep(m *Memory, from, to uint16) iter.Seq2[uint16, Instr] {
	if int(to) > MemSize {
		to = MemSize
	}
	return func(yield func(uint16, Instr) bool) {
		for addr := from; addr < to; {
			ins := Decode(m, addr)
			if !yield(addr, ins) {
				return
			}
			addr += uint16(ins.Len)
		}
	}
}

// Fdisasm writes the disassembly of [from, to) to w, one line per decoded
// unit. With raw enabled each line also shows the instruction bytes, so the
// output can be reconciled against a hex dump byte for byte.
func Fdisasm(w io.Writer, m *Memory, from, to uint16, raw bool) error {
	for addr, ins := range Sweep(m, from, to) {
		var err error
		if raw {
			err = writeRawLine(w, m, addr, ins)
		} else {
			_, err = fmt.Fprintf(w, "0x%03x: %s\n", addr, ins)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeRawLine(w io.Writer, m *Memory, addr uint16, ins Instr) error {
	bytecol := ""
	for i := uint16(0); i < uint16(ins.Len); i++ {
		b, _ := m.Read8(addr + i)
		bytecol += fmt.Sprintf("%02x ", b)
	}
	_, err := fmt.Fprintf(w, "0x%03x: %-6s %s\n", addr, bytecol, ins)
	return err
}
