// Package config loads the TOML-backed configuration cmd/rv32run reads
// at startup: which optional extensions a hart is built with, its run
// parameters, and the reference host memory's size and load address. The
// hart package's own compile-time-equivalent surface remains hart.Option
// values passed to hart.New; this package exists so a user can pick an
// extension profile without recompiling anything, per SPEC_FULL.md §6.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full set of settings this repository has — scoped down
// from the teacher's debugger/display/trace/GUI sections, which have no
// analogue here since those frontends are out of scope.
type Config struct {
	Extensions struct {
		M        bool `toml:"m"`
		A        bool `toml:"a"`
		F        bool `toml:"f"`
		Zicsr    bool `toml:"zicsr"`
		Zifencei bool `toml:"zifencei"`
	} `toml:"extensions"`

	Run struct {
		MaxCycles uint64 `toml:"max_cycles"`
		DefaultSP uint32 `toml:"default_sp"`
		JIT       bool   `toml:"jit"`
	} `toml:"run"`

	Memory struct {
		SizeBytes uint32 `toml:"size_bytes"`
		LoadAddr  uint32 `toml:"load_addr"`
	} `toml:"memory"`
}

// DefaultConfig returns a configuration with every supported extension
// enabled, the interpreter backend (not JIT), a 1,000,000-cycle default
// budget, and a 16MiB flat address space with the program loaded at its
// base.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Extensions.M = true
	cfg.Extensions.A = true
	cfg.Extensions.F = true
	cfg.Extensions.Zicsr = true
	cfg.Extensions.Zifencei = true

	cfg.Run.MaxCycles = 1000000
	cfg.Run.DefaultSP = 0x0FFFFFF0
	cfg.Run.JIT = false

	cfg.Memory.SizeBytes = 16 * 1024 * 1024
	cfg.Memory.LoadAddr = 0x00000000

	return cfg
}

const (
	configDirName  = "rv32run"
	configFileName = "config.toml"
	configPathEnv  = "RV32RUN_CONFIG"
)

// GetConfigPath resolves the file this repository's cmd/rv32run reads its
// configuration from. $RV32RUN_CONFIG, if set, names the file directly —
// this is a single-binary batch tool invoked from scripts and CI at least
// as often as from a shell, so an explicit override takes priority over
// any directory convention. Otherwise it follows the XDG base directory
// convention ($XDG_CONFIG_HOME, falling back to $HOME/.config), which is
// what Go CLI tools on Unix-like hosts typically follow; there is no
// Windows AppData branch, since this tool has no Windows release target.
func GetConfigPath() string {
	if p := os.Getenv(configPathEnv); p != "" {
		return p
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return configFileName
		}
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, configDirName, configFileName)
}

// Load reads configuration from GetConfigPath().
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads configuration from path, returning the defaults unchanged
// when no file exists there — a missing config is normal for a tool that
// runs fine off its built-in defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path) // #nosec G304 -- path is the tool's own resolved config location or an explicit override
	switch {
	case os.IsNotExist(err):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c to GetConfigPath(), creating its parent directory as
// needed.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo renders c as TOML in memory and writes it to path in one shot, so
// a failed encode never leaves a truncated file behind.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("config: creating directory for %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("config: encoding %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0640); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
