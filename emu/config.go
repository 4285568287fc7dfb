package emu

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"slede8/emu/log"
)

type Config struct {
	Run      RunConfig      `toml:"run"`
	Debugger DebuggerConfig `toml:"debugger"`
}

type RunConfig struct {
	// Print the final machine state to stderr after a run.
	ShowEndState bool `toml:"show_end_state"`
}

type DebuggerConfig struct {
	Prompt    string `toml:"prompt"`
	DumpWidth int    `toml:"dump_width"` // bytes per memory dump row
}

func DefaultConfig() Config {
	return Config{
		Run: RunConfig{ShowEndState: true},
		Debugger: DebuggerConfig{
			Prompt:    "> ",
			DumpWidth: 8,
		},
	}
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("slede8")
	if err := configdir.MakePath(dir); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the slede8 config
// directory, or provides a default one.
func LoadConfigOrDefault() Config {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(filepath.Join(ConfigDir, cfgFilename), &cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.Debugger.DumpWidth <= 0 {
		cfg.Debugger.DumpWidth = 8
	}
	return cfg
}

// SaveConfig into the slede8 config directory.
func SaveConfig(cfg Config) error {
	f, err := os.Create(filepath.Join(ConfigDir, cfgFilename))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
