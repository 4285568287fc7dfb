package emu

import (
	"fmt"

	"slede8/emu/log"
)

// MemSize is the size of the SLEDE8 address space, in bytes. Programs are
// loaded at address 0 and the remainder of the image is zero-filled.
const MemSize = 4096

// Memory is the fixed-size address space a program executes in. Every access
// is validated against MemSize, there is no wraparound.
type Memory struct {
	buf     [MemSize]byte
	proglen int
}

// NewMemory creates a memory image holding prog at address 0. It fails if the
// program does not fit in the address space.
func NewMemory(prog []byte) (*Memory, error) {
	if len(prog) > MemSize {
		return nil, fmt.Errorf("program is %d bytes, exceeds address space (%d bytes)", len(prog), MemSize)
	}
	m := &Memory{proglen: len(prog)}
	copy(m.buf[:], prog)
	return m, nil
}

// ProgramLen returns the number of bytes occupied by the loaded program.
func (m *Memory) ProgramLen() int {
	return m.proglen
}

// Read8 returns the byte at addr, or false if addr is outside the address
// space.
func (m *Memory) Read8(addr uint16) (uint8, bool) {
	if int(addr) >= MemSize {
		log.ModMem.DebugZ("read out of bounds").Hex16("addr", addr).End()
		return 0, false
	}
	return m.buf[addr], true
}

// Write8 stores val at addr, or returns false if addr is outside the address
// space.
func (m *Memory) Write8(addr uint16, val uint8) bool {
	if int(addr) >= MemSize {
		log.ModMem.DebugZ("write out of bounds").Hex16("addr", addr).Hex8("val", val).End()
		return false
	}
	m.buf[addr] = val
	return true
}

// ReadRange returns a copy of the n bytes starting at addr. Ranges crossing
// the end of the address space are truncated to the in-bounds part, in which
// case truncated is true. It never reads past the image.
func (m *Memory) ReadRange(addr uint16, n int) (buf []byte, truncated bool) {
	if int(addr) >= MemSize || n <= 0 {
		return nil, n > 0
	}
	end := int(addr) + n
	if end > MemSize {
		end = MemSize
		truncated = true
	}
	buf = make([]byte, end-int(addr))
	copy(buf, m.buf[addr:end])
	return buf, truncated
}
