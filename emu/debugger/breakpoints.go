package debugger

import (
	"cmp"
	"slices"
)

// A Breakpoint is a user-designated address at which continue stops before
// executing. The address does not have to hold a valid instruction; a
// breakpoint on a non-reached byte simply never triggers.
type Breakpoint struct {
	Addr    uint16
	Enabled bool
}

// Breakpoints is a set of addresses, each independently enabled or disabled.
// It persists for the whole debugging session, across program termination.
type Breakpoints struct {
	m map[uint16]bool
}

// Add inserts a breakpoint at addr, enabled. Re-adding an existing breakpoint
// re-enables it.
func (b *Breakpoints) Add(addr uint16) {
	if b.m == nil {
		b.m = make(map[uint16]bool)
	}
	b.m[addr] = true
}

// Remove deletes the breakpoint at addr, reporting whether it existed.
func (b *Breakpoints) Remove(addr uint16) bool {
	_, ok := b.m[addr]
	delete(b.m, addr)
	return ok
}

// SetEnabled enables or disables the breakpoint at addr, reporting whether it
// exists.
func (b *Breakpoints) SetEnabled(addr uint16, enabled bool) bool {
	if _, ok := b.m[addr]; !ok {
		return false
	}
	b.m[addr] = enabled
	return true
}

// EnabledAt reports whether there is an enabled breakpoint at addr.
func (b *Breakpoints) EnabledAt(addr uint16) bool {
	return b.m[addr]
}

// List returns all breakpoints, sorted by address.
func (b *Breakpoints) List() []Breakpoint {
	bps := make([]Breakpoint, 0, len(b.m))
	for addr, enabled := range b.m {
		bps = append(bps, Breakpoint{Addr: addr, Enabled: enabled})
	}
	slices.SortFunc(bps, func(a, b Breakpoint) int {
		return cmp.Compare(a.Addr, b.Addr)
	})
	return bps
}

func (b *Breakpoints) Len() int {
	return len(b.m)
}
