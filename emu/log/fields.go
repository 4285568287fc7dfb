package log

import (
	"fmt"

	"gopkg.in/Sirupsen/logrus.v0"
)

// EntryZ accumulates typed fields for one log message. A nil EntryZ (log line
// filtered out by level or module mask) accepts the whole builder chain and
// drops everything, so call sites pay nothing when disabled.
type EntryZ struct {
	mod    Module
	lvl    Level
	msg    string
	fields logrus.Fields
}

func (e *EntryZ) field(key string, val any) *EntryZ {
	if e == nil {
		return nil
	}
	if e.fields == nil {
		e.fields = make(logrus.Fields, 8)
	}
	e.fields[key] = val
	return e
}

func (e *EntryZ) String(key, val string) *EntryZ {
	return e.field(key, val)
}

func (e *EntryZ) Stringer(key string, val fmt.Stringer) *EntryZ {
	if e == nil {
		return nil
	}
	return e.field(key, val.String())
}

func (e *EntryZ) Bool(key string, val bool) *EntryZ {
	return e.field(key, val)
}

func (e *EntryZ) Int(key string, val int) *EntryZ {
	return e.field(key, val)
}

func (e *EntryZ) Uint64(key string, val uint64) *EntryZ {
	return e.field(key, val)
}

func (e *EntryZ) Hex8(key string, val uint8) *EntryZ {
	return e.field(key, fmt.Sprintf("%02x", val))
}

func (e *EntryZ) Hex16(key string, val uint16) *EntryZ {
	return e.field(key, fmt.Sprintf("%04x", val))
}

func (e *EntryZ) Error(key string, err error) *EntryZ {
	if e == nil {
		return nil
	}
	if err == nil {
		return e.field(key, "<nil>")
	}
	return e.field(key, err.Error())
}

// End emits the entry. Every builder chain must end with it.
func (e *EntryZ) End() {
	if e == nil {
		return
	}
	final := e.mod.entry().WithFields(e.fields)
	switch e.lvl {
	case DebugLevel:
		final.Debug(e.msg)
	case InfoLevel:
		final.Info(e.msg)
	case WarnLevel:
		final.Warn(e.msg)
	case ErrorLevel:
		final.Error(e.msg)
	case FatalLevel:
		final.Fatal(e.msg)
	case PanicLevel:
		final.Panic(e.msg)
	}
}
