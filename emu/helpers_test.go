package emu

import (
	"encoding/binary"
	"testing"
)

// Instruction word builders, mirroring the SLEDE8 encoding. Low nibble is the
// opclass, fields above follow the ISA layout.

func wSTOPP() uint16 { return 0x0 }
func wSETTI(rx, imm uint8) uint16 { return 0x1 | uint16(rx)<<4 | uint16(imm)<<8 }
func wSETT(rx, ry uint8) uint16 { return 0x2 | uint16(rx)<<4 | uint16(ry)<<8 }
func wFINN(addr uint16) uint16 { return 0x3 | addr<<4 }
func wLAST(rx uint8) uint16 { return 0x4 | 0<<4 | uint16(rx)<<8 }
func wLAGR(rx uint8) uint16 { return 0x4 | 1<<4 | uint16(rx)<<8 }
func wALU(op, rx, ry uint8) uint16 {
	return 0x5 | uint16(op)<<4 | uint16(rx)<<8 | uint16(ry)<<12
}
func wLES(rx uint8) uint16 { return 0x6 | 0<<4 | uint16(rx)<<8 }
func wSKRIV(rx uint8) uint16 { return 0x6 | 1<<4 | uint16(rx)<<8 }
func wCMP(op, rx, ry uint8) uint16 {
	return 0x7 | uint16(op)<<4 | uint16(rx)<<8 | uint16(ry)<<12
}
func wHOPP(addr uint16) uint16 { return 0x8 | addr<<4 }
func wBHOPP(addr uint16) uint16 { return 0x9 | addr<<4 }
func wTUR(addr uint16) uint16 { return 0xa | addr<<4 }
func wRETUR() uint16 { return 0xb }
func wNOPE() uint16 { return 0xc }

const (
	aluOG = iota
	aluELLER
	aluXELLER
	aluVSKIFT
	aluHSKIFT
	aluPLUSS
	aluMINUS
)

const (
	cmpLIK = iota
	cmpULIK
	cmpME
	cmpMEL
	cmpSE
	cmpSEL
)

// asm lays out instruction words as a little-endian program image.
func asm(words ...uint16) []byte {
	buf := make([]byte, 2*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[2*i:], w)
	}
	return buf
}

func mustMemory(t *testing.T, prog []byte) *Memory {
	t.Helper()
	m, err := NewMemory(prog)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func newTestCPU(t *testing.T, prog []byte, input []byte) *CPU {
	t.Helper()
	return NewCPU(mustMemory(t, prog), NewInput(input))
}
