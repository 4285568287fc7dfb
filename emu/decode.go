package emu

import "fmt"

// Op identifies a SLEDE8 operation kind.
type Op uint8

const (
	OpInvalid Op = iota

	OpStopp
	OpSettImm
	OpSett
	OpFinn
	OpLast
	OpLagr
	OpOg
	OpEller
	OpXeller
	OpVskift
	OpHskift
	OpPluss
	OpMinus
	OpLes
	OpSkriv
	OpLik
	OpUlik
	OpMe
	OpMel
	OpSe
	OpSel
	OpHopp
	OpBhopp
	OpTur
	OpRetur
	OpNope
)

var opNames = [...]string{
	OpInvalid: "(invalid)",
	OpStopp:   "STOPP",
	OpSettImm: "SETT",
	OpSett:    "SETT",
	OpFinn:    "FINN",
	OpLast:    "LAST",
	OpLagr:    "LAGR",
	OpOg:      "OG",
	OpEller:   "ELLER",
	OpXeller:  "XELLER",
	OpVskift:  "VSKIFT",
	OpHskift:  "HSKIFT",
	OpPluss:   "PLUSS",
	OpMinus:   "MINUS",
	OpLes:     "LES",
	OpSkriv:   "SKRIV",
	OpLik:     "LIK",
	OpUlik:    "ULIK",
	OpMe:      "ME",
	OpMel:     "MEL",
	OpSe:      "SE",
	OpSel:     "SEL",
	OpHopp:    "HOPP",
	OpBhopp:   "BHOPP",
	OpTur:     "TUR",
	OpRetur:   "RETUR",
	OpNope:    "NOPE",
}

func (op Op) String() string {
	if int(op) >= len(opNames) {
		return "(invalid)"
	}
	return opNames[op]
}

// An Instr is the decoded form of the bytes at one address. Valid
// instructions are 2 bytes long. Unrecognized encodings decode to OpInvalid
// with a length of 1 so that a linear sweep always makes forward progress and
// re-aligns after non-code bytes.
type Instr struct {
	Op   Op
	RX   uint8  // first register operand
	RY   uint8  // second register operand
	Imm  uint8  // immediate value (SETT rX, imm)
	Addr uint16 // 12-bit address operand (FINN, HOPP, BHOPP, TUR)
	Raw  uint16 // raw instruction word; the raw byte for invalid decodes
	Len  uint8  // encoded length in bytes, 1 or 2
}

// Valid reports whether the instruction decoded to a recognized operation.
func (ins Instr) Valid() bool {
	return ins.Op != OpInvalid
}

func (ins Instr) String() string {
	switch ins.Op {
	case OpInvalid:
		return fmt.Sprintf("0x%02x (invalid)", byte(ins.Raw))
	case OpStopp, OpRetur, OpNope:
		return ins.Op.String()
	case OpSettImm:
		return fmt.Sprintf("%s r%d, %d", ins.Op, ins.RX, ins.Imm)
	case OpLast, OpLagr, OpLes, OpSkriv:
		return fmt.Sprintf("%s r%d", ins.Op, ins.RX)
	case OpFinn, OpHopp, OpBhopp, OpTur:
		return fmt.Sprintf("%s 0x%03x", ins.Op, ins.Addr)
	default:
		// register-register forms: SETT, ALU and compare operations.
		return fmt.Sprintf("%s r%d, r%d", ins.Op, ins.RX, ins.RY)
	}
}

var aluOps = [...]Op{OpOg, OpEller, OpXeller, OpVskift, OpHskift, OpPluss, OpMinus}
var cmpOps = [...]Op{OpLik, OpUlik, OpMe, OpMel, OpSe, OpSel}

// Decode decodes the instruction starting at addr. It is total: it never
// fails, unrecognized or truncated encodings yield an OpInvalid instruction
// covering a single byte. Decode is pure, it does not mutate the memory
// image, so it is shared between live execution and static disassembly.
func Decode(m *Memory, addr uint16) Instr {
	b0, ok := m.Read8(addr)
	if !ok {
		return Instr{Op: OpInvalid, Len: 1}
	}
	b1, ok := m.Read8(addr + 1)
	if !ok {
		// Word fetch would overrun the address space.
		return invalid(b0)
	}

	// Instruction words are little-endian.
	word := uint16(b1)<<8 | uint16(b0)

	opclass := word & 0xf
	operation := (word >> 4) & 0xf
	value := uint8(word >> 8)
	target := (word >> 4) & 0xfff
	arg1 := uint8(word>>8) & 0xf
	arg2 := uint8(word >> 12)

	ins := Instr{Raw: word, Len: 2}
	switch opclass {
	case 0x0:
		ins.Op = OpStopp
	case 0x1:
		ins.Op, ins.RX, ins.Imm = OpSettImm, uint8(operation), value
	case 0x2:
		ins.Op, ins.RX, ins.RY = OpSett, uint8(operation), arg1
	case 0x3:
		ins.Op, ins.Addr = OpFinn, target
	case 0x4:
		switch operation {
		case 0:
			ins.Op, ins.RX = OpLast, arg1
		case 1:
			ins.Op, ins.RX = OpLagr, arg1
		default:
			return invalid(b0)
		}
	case 0x5:
		if int(operation) >= len(aluOps) {
			return invalid(b0)
		}
		ins.Op, ins.RX, ins.RY = aluOps[operation], arg1, arg2
	case 0x6:
		switch operation {
		case 0:
			ins.Op, ins.RX = OpLes, arg1
		case 1:
			ins.Op, ins.RX = OpSkriv, arg1
		default:
			return invalid(b0)
		}
	case 0x7:
		if int(operation) >= len(cmpOps) {
			return invalid(b0)
		}
		ins.Op, ins.RX, ins.RY = cmpOps[operation], arg1, arg2
	case 0x8:
		ins.Op, ins.Addr = OpHopp, target
	case 0x9:
		ins.Op, ins.Addr = OpBhopp, target
	case 0xa:
		ins.Op, ins.Addr = OpTur, target
	case 0xb:
		ins.Op = OpRetur
	case 0xc:
		ins.Op = OpNope
	default:
		return invalid(b0)
	}
	return ins
}

func invalid(b uint8) Instr {
	return Instr{Op: OpInvalid, Raw: uint16(b), Len: 1}
}
