package emu

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestSnapshotDetached(t *testing.T) {
	cpu := newTestCPU(t, asm(wSETTI(1, 7), wSKRIV(1), wSTOPP()), nil)
	cpu.Step()
	snap := cpu.Snapshot()
	cpu.Run()

	if snap.PC != 0x002 || snap.Cycles != 1 {
		t.Fatalf("snapshot pc, cycles = 0x%03x, %d", snap.PC, snap.Cycles)
	}
	if len(snap.Output) != 0 {
		t.Fatalf("snapshot taken before SKRIV has output %v", snap.Output)
	}
}

func TestStateWriteJSON(t *testing.T) {
	cpu := newTestCPU(t, asm(wSETTI(1, 0xab), wSKRIV(1), wSTOPP()), nil)
	cpu.Run()

	var buf bytes.Buffer
	if err := cpu.Snapshot().WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}

	var got struct {
		PC        int    `json:"pc"`
		Flag      bool   `json:"flag"`
		Cycles    uint64 `json:"cycles"`
		Registers []int  `json:"registers"`
		Stack     []int  `json:"stack"`
		Output    string `json:"output"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if got.PC != 0x006 || got.Cycles != 3 || got.Status != "halted" {
		t.Fatalf("pc, cycles, status = %#x, %d, %q", got.PC, got.Cycles, got.Status)
	}
	if got.Output != "ab" {
		t.Fatalf("output = %q, want %q", got.Output, "ab")
	}
	if len(got.Registers) != 16 || got.Registers[1] != 0xab {
		t.Fatalf("registers = %v", got.Registers)
	}
	if len(got.Stack) != 0 {
		t.Fatalf("stack = %v, want empty", got.Stack)
	}
}
