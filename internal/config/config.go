package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "tada"

	// ConfigFile is the TOML file read from the config dir.
	ConfigFile = "config.toml"

	// LogFileName is the TUI operator log inside the config dir.
	LogFileName = "tada.log"

	// PrefsFileName holds the persisted theme flag.
	PrefsFileName = "prefs.toml"

	DefaultBaseURL   = "http://localhost:8000"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds settings shared by every subcommand.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	BaseURL   string        `toml:"base_url"`
	Timeout   time.Duration `toml:"timeout"`
	LogLevel  string        `toml:"log_level"`
	LogFormat string        `toml:"log_format"`
	LogFile   string        `toml:"log_file"`
	PrefsFile string        `toml:"prefs_file"`
	NoColor   bool          `toml:"no_color"`
}

// Overrides carries root flag values; zero values mean "not set".
type Overrides struct {
	Dir      string
	BaseURL  string
	Timeout  string
	LogLevel string
	NoColor  bool
}

// Load builds a Config from defaults, file, environment and flags.
func Load(ov Overrides) (*Config, error) {
	cfg := &Config{Dir: resolveDir(ov.Dir)}
	setDefaults(cfg)

	path := cfg.FilePath()
	if _, err := os.Stat(path); err == nil {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := applyOverrides(cfg, ov); err != nil {
		return nil, err
	}
	finalize(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultDir returns ~/.tada, or "tada" when home is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, "."+AppName)
}

// FilePath returns the path of the TOML config file.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// Validate checks values that would only fail later, at request time.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: want http(s)://host[:port]", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout)
	}
	return nil
}

func resolveDir(flagDir string) string {
	dir := flagDir
	if dir == "" {
		dir = os.Getenv("TADA_CONFIG_DIR")
	}
	if dir == "" {
		return DefaultDir()
	}
	return expandHome(dir)
}

func setDefaults(cfg *Config) {
	cfg.BaseURL = DefaultBaseURL
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// loadFile decodes TOML over cfg; unknown keys are an error.
func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TADA_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TADA_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TADA_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TADA_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TADA_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TADA_PREFS_FILE"); v != "" {
		cfg.PrefsFile = v
	}
	if v := os.Getenv("TADA_NO_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TADA_NO_COLOR: %w", err)
		}
		cfg.NoColor = b
	}
	return nil
}

func applyOverrides(cfg *Config, ov Overrides) error {
	if ov.BaseURL != "" {
		cfg.BaseURL = ov.BaseURL
	}
	if ov.Timeout != "" {
		d, err := time.ParseDuration(ov.Timeout)
		if err != nil {
			return fmt.Errorf("-timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if ov.LogLevel != "" {
		cfg.LogLevel = ov.LogLevel
	}
	if ov.NoColor {
		cfg.NoColor = true
	}
	return nil
}

func finalize(cfg *Config) {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.Dir, LogFileName)
	}
	if cfg.PrefsFile == "" {
		cfg.PrefsFile = filepath.Join(cfg.Dir, PrefsFileName)
	}
	cfg.LogFile = expandHome(cfg.LogFile)
	cfg.PrefsFile = expandHome(cfg.PrefsFile)
}

// expandHome expands a leading ~/.
func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}
	return p
}
