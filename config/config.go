package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds CLI ambience for w16asm. None of it affects assembly
// semantics — assembler.Assemble never reads it — it only shapes how
// the command-line collaborator names outputs. The CLI reads
// Output.EmitSymbolsByDefault and Output.DefaultSymbolExt; the Report
// section is loaded and saved but not read by the CLI.
type Config struct {
	// Output settings
	Output struct {
		DefaultBinaryExt     string `toml:"default_binary_ext"`
		DefaultSymbolExt     string `toml:"default_symbol_ext"`
		EmitSymbolsByDefault bool   `toml:"emit_symbols_by_default"`
	} `toml:"output"`

	// Report settings
	Report struct {
		DumpWidth    int  `toml:"dump_width"`
		ColorOutput  bool `toml:"color_output"`
		NumberFormat string `toml:"number_format"` // hex, dec
	} `toml:"report"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Output.DefaultBinaryExt = ".bin"
	cfg.Output.DefaultSymbolExt = ".csv"
	cfg.Output.EmitSymbolsByDefault = false

	cfg.Report.DumpWidth = 16
	cfg.Report.ColorOutput = true
	cfg.Report.NumberFormat = "hex"

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "w16asm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "w16asm.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "w16asm")

	default:
		return "w16asm.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "w16asm.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file
// is not an error — it yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
