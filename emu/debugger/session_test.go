package debugger

import (
	"bytes"
	"strings"
	"testing"

	"slede8/emu"
)

func newTestSession(t *testing.T, prog []byte) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	dbg := newTestDebugger(t, prog)
	return NewSession(dbg, &buf, emu.DebuggerConfig{DumpWidth: 8}), &buf
}

func TestSessionScript(t *testing.T) {
	// SETT r1, 42 / NOPE / STOPP with a breakpoint on the NOPE.
	prog := []byte{0x11, 0x2a, 0x0c, 0x00, 0x00, 0x00}
	sess, buf := newTestSession(t, prog)

	script := strings.Join([]string{
		"b 2",
		"c", // stops at 0x002
		"r",
		"c", // runs to STOPP
		"q",
	}, "\n")

	if err := sess.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"breakpoint set at 0x002",
		"breakpoint hit at 0x002",
		"halted",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("session output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionEndOfInput(t *testing.T) {
	sess, _ := newTestSession(t, []byte{0x00, 0x00})
	if err := sess.Run(strings.NewReader("s\n")); err != nil {
		t.Fatal(err)
	}
}

func TestDispatchDumpTruncated(t *testing.T) {
	sess, buf := newTestSession(t, []byte{0x00, 0x00})

	sess.Dispatch(Command{Kind: CmdDump, Addr: emu.MemSize - 4, N: 16})
	out := buf.String()
	if !strings.Contains(out, "truncated at end of address space") {
		t.Fatalf("missing truncation notice:\n%s", out)
	}
	if !strings.Contains(out, "4 bytes shown") {
		t.Fatalf("wrong truncation size:\n%s", out)
	}
}

func TestDispatchDumpRows(t *testing.T) {
	prog := make([]byte, 20)
	for i := range prog {
		prog[i] = byte(i)
	}
	sess, buf := newTestSession(t, prog)

	sess.Dispatch(Command{Kind: CmdDump, Addr: 0, N: 20})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("dump rows = %d, want 3 (8 bytes per row):\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "0x008: ") {
		t.Fatalf("second row = %q", lines[1])
	}
}

func TestDispatchDisasm(t *testing.T) {
	// SETT r1, 42 / STOPP
	sess, buf := newTestSession(t, []byte{0x11, 0x2a, 0x00, 0x00})

	sess.Dispatch(Command{Kind: CmdDisasm, N: 2})
	out := buf.String()
	if !strings.Contains(out, "0x000: SETT r1, 42") || !strings.Contains(out, "0x002: STOPP") {
		t.Fatalf("disasm output:\n%s", out)
	}
}

func TestDispatchBreakpointCommands(t *testing.T) {
	sess, buf := newTestSession(t, []byte{0x00, 0x00})

	sess.Dispatch(Command{Kind: CmdBreakAdd, Addr: 0x10})
	sess.Dispatch(Command{Kind: CmdBreakDisable, Addr: 0x10})
	sess.Dispatch(Command{Kind: CmdBreakList})

	out := buf.String()
	if !strings.Contains(out, "0x010  disabled") {
		t.Fatalf("breakpoint list:\n%s", out)
	}

	buf.Reset()
	sess.Dispatch(Command{Kind: CmdBreakRemove, Addr: 0x99})
	if !strings.Contains(buf.String(), "no breakpoint at 0x099") {
		t.Fatalf("remove of missing breakpoint:\n%s", buf.String())
	}
}

func TestDispatchQuit(t *testing.T) {
	sess, _ := newTestSession(t, []byte{0x00, 0x00})
	if quit := sess.Dispatch(Command{Kind: CmdQuit}); !quit {
		t.Fatal("quit command did not end the session")
	}
	if quit := sess.Dispatch(Command{Kind: CmdRegs}); quit {
		t.Fatal("regs command ended the session")
	}
}
