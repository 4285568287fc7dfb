package log

type ModuleMask uint64
type Module uint

const (
	ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF
)

// Predefine a few "common" module constants. The idea is to have a few
// "standard" modules that can be used for easy logging, but it's always
// possible to define additional modules through NewModule()
const (
	ModEmu Module = iota + 1
	ModCPU
	ModMem
	ModDbg

	endStandardMods
)

var modCount = endStandardMods

var modDebugMask ModuleMask = 0

var modNames = []string{
	"<error>", "emu", "cpu", "mem", "dbg",
}

func NewModule(name string) Module {
	mod := modCount
	modCount++
	modNames = append(modNames, name)
	return mod
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if s == name {
			return Module(idx), true
		}
	}
	return Module(0xFFFFFFFF), false
}

// ModuleNames returns the names of all registered modules.
func ModuleNames() []string {
	return modNames[1:]
}

func EnableDebugModules(mask ModuleMask) {
	modDebugMask |= mask
}

func DisableDebugModules(mask ModuleMask) {
	modDebugMask &^= mask
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Enabled(level Level) bool {
	if disabled {
		return false
	}
	return level <= WarnLevel || modDebugMask&mod.Mask() != 0
}

// printf-like family

func (mod Module) Debugf(format string, args ...any) {
	if mod.Enabled(DebugLevel) {
		mod.entry().Debugf(format, args...)
	}
}

func (mod Module) Infof(format string, args ...any) {
	if mod.Enabled(InfoLevel) {
		mod.entry().Infof(format, args...)
	}
}

func (mod Module) Warnf(format string, args ...any) {
	if mod.Enabled(WarnLevel) {
		mod.entry().Warnf(format, args...)
	}
}

func (mod Module) Errorf(format string, args ...any) {
	if mod.Enabled(ErrorLevel) {
		mod.entry().Errorf(format, args...)
	}
}

func (mod Module) Fatalf(format string, args ...any) {
	if mod.Enabled(FatalLevel) {
		mod.entry().Fatalf(format, args...)
	}
}

// Structured, typed-field functions

func (mod Module) logz(lvl Level, msg string) *EntryZ {
	if mod.Enabled(lvl) {
		return &EntryZ{mod: mod, lvl: lvl, msg: msg}
	}
	return nil
}

func (mod Module) DebugZ(msg string) *EntryZ { return mod.logz(DebugLevel, msg) }
func (mod Module) InfoZ(msg string) *EntryZ  { return mod.logz(InfoLevel, msg) }
func (mod Module) WarnZ(msg string) *EntryZ  { return mod.logz(WarnLevel, msg) }
func (mod Module) ErrorZ(msg string) *EntryZ { return mod.logz(ErrorLevel, msg) }
func (mod Module) FatalZ(msg string) *EntryZ { return mod.logz(FatalLevel, msg) }
