package s8

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadFromSigned(t *testing.T) {
	code := []byte{0x11, 0x2a, 0x00, 0x00}
	file := append([]byte(Magic), code...)

	var prog Program
	n, err := prog.ReadFrom(bytes.NewReader(file))
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(file)) {
		t.Fatalf("n = %d, want %d", n, len(file))
	}
	if !prog.Signed() {
		t.Fatal("signature not detected")
	}
	if !bytes.Equal(prog.Data, code) {
		t.Fatalf("Data = %v, want %v", prog.Data, code)
	}
}

func TestReadFromRaw(t *testing.T) {
	code := []byte{0x11, 0x2a, 0x00, 0x00}

	var prog Program
	if _, err := prog.ReadFrom(bytes.NewReader(code)); err != nil {
		t.Fatal(err)
	}
	if prog.Signed() {
		t.Fatal("signature detected on raw image")
	}
	if !bytes.Equal(prog.Data, code) {
		t.Fatalf("Data = %v, want %v", prog.Data, code)
	}
}

func TestReadFromEmpty(t *testing.T) {
	var prog Program
	if _, err := prog.ReadFrom(bytes.NewReader(nil)); err != nil {
		t.Fatal(err)
	}
	if len(prog.Data) != 0 {
		t.Fatalf("Data = %v, want empty", prog.Data)
	}
}

func TestPrintInfos(t *testing.T) {
	file := append([]byte(Magic), 0x11, 0x2a, 0x0c)

	var prog Program
	if _, err := prog.ReadFrom(bytes.NewReader(file)); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	prog.PrintInfos(&sb)
	out := sb.String()
	for _, want := range []string{"signature: true", "size:      3 bytes", "trailing byte"} {
		if !strings.Contains(out, want) {
			t.Errorf("infos missing %q:\n%s", want, out)
		}
	}
}
