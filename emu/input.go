package emu

// Input is the byte stream fed to the executing program. The sequence is
// immutable, only the read cursor advances, one byte per LES instruction.
type Input struct {
	data []byte
	pos  int
}

func NewInput(data []byte) *Input {
	return &Input{data: data}
}

// Next returns the next unread byte and advances the cursor. It returns false
// once the stream is exhausted; the caller decides what exhaustion means.
func (in *Input) Next() (uint8, bool) {
	if in.pos >= len(in.data) {
		return 0, false
	}
	b := in.data[in.pos]
	in.pos++
	return b, true
}

// Pos returns the index of the next unread byte.
func (in *Input) Pos() int {
	return in.pos
}

// Remaining returns the number of unread bytes.
func (in *Input) Remaining() int {
	return len(in.data) - in.pos
}
