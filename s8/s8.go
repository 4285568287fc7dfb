// Package s8 implements a reader for SLEDE8 binary program files, used for
// the distribution of SLEDE8 programs and puzzle inputs.
package s8

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Magic is the 7-byte signature carried by assembled SLEDE8 files.
const Magic = ".SLEDE8"

// A Program is the byte image of a SLEDE8 executable, with the file signature
// stripped. Headerless raw images are accepted as well since the executable
// format carries no metadata besides the signature.
type Program struct {
	Data []byte

	signed bool // file carried the .SLEDE8 signature
}

// Open loads a program from file.
func Open(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	prog := new(Program)
	if _, err := prog.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return prog, nil
}

// ReadFrom implements the io.ReaderFrom interface.
func (prog *Program) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	prog.Data = buf
	if bytes.HasPrefix(buf, []byte(Magic)) {
		prog.Data = buf[len(Magic):]
		prog.signed = true
	}
	return int64(len(buf)), nil
}

// Signed reports whether the file carried the .SLEDE8 signature.
func (prog *Program) Signed() bool {
	return prog.signed
}

func (prog *Program) PrintInfos(w io.Writer) {
	fmt.Fprintf(w, "signature: %v\n", prog.signed)
	fmt.Fprintf(w, "size:      %d bytes\n", len(prog.Data))
	fmt.Fprintf(w, "words:     %d", len(prog.Data)/2)
	if len(prog.Data)%2 != 0 {
		fmt.Fprintf(w, " (+1 trailing byte)")
	}
	fmt.Fprintln(w)
}
