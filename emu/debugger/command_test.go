package debugger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"s", Command{Kind: CmdStep}},
		{"step", Command{Kind: CmdStep}},
		{"", Command{Kind: CmdStep}},
		{"   ", Command{Kind: CmdStep}},
		{"c", Command{Kind: CmdContinue}},
		{"continue", Command{Kind: CmdContinue}},
		{"b", Command{Kind: CmdBreakList}},
		{"b 1a", Command{Kind: CmdBreakAdd, Addr: 0x1a}},
		{"b 0x1a", Command{Kind: CmdBreakAdd, Addr: 0x1a}},
		{"break 100", Command{Kind: CmdBreakAdd, Addr: 0x100}},
		{"b rm 1a", Command{Kind: CmdBreakRemove, Addr: 0x1a}},
		{"b on 1a", Command{Kind: CmdBreakEnable, Addr: 0x1a}},
		{"b off 1a", Command{Kind: CmdBreakDisable, Addr: 0x1a}},
		{"m 100 20", Command{Kind: CmdDump, Addr: 0x100, N: 0x20}},
		{"x 0 8", Command{Kind: CmdDump, Addr: 0, N: 8}},
		{"d", Command{Kind: CmdDisasm, N: 8}},
		{"d 40", Command{Kind: CmdDisasm, Addr: 0x40, N: 8, HasAddr: true}},
		{"d 40 10", Command{Kind: CmdDisasm, Addr: 0x40, N: 0x10, HasAddr: true}},
		{"r", Command{Kind: CmdRegs}},
		{"regs", Command{Kind: CmdRegs}},
		{"h", Command{Kind: CmdHelp}},
		{"?", Command{Kind: CmdHelp}},
		{"q", Command{Kind: CmdQuit}},
		{"quit", Command{Kind: CmdQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) differs (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	lines := []string{
		"frobnicate",
		"b zz",
		"b rm",
		"b on",
		"m 100",
		"m zz 10",
		"m 100 zz",
		"d zz",
		"m 10000 1", // 0x10000 does not fit in 16 bits
	}

	for _, line := range lines {
		if _, err := Parse(line); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", line)
		}
	}
}
