package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

type Level int

// Levels mirror logrus severity, most severe first.
const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

var disabled = false

// Disable turns off all logging, whatever the level or module. Used in tests
// and benchmarks.
func Disable() {
	disabled = true
}

func (mod Module) entry() *logrus.Entry {
	return logrus.StandardLogger().WithField("_mod", modNames[mod])
}

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}
