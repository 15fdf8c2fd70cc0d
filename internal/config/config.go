package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration. It never carries phrase material.
type Config struct {
	Wordlist WordlistConfig
	UI       UIConfig
	Log      LogConfig
	Keys     KeysConfig
}

// WordlistConfig locates the 2048-word table.
type WordlistConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language      string
	DefaultLength int  `mapstructure:"default_length"`
	// MaskWords hides the preview word, the recovered list and the final
	// phrase until revealed.
	MaskWords bool `mapstructure:"mask_words"`
}

// LogConfig holds diagnostics settings. An empty File disables logging.
type LogConfig struct {
	Level string
	File  string
}

// KeysConfig points at an optional keybinding override file.
type KeysConfig struct {
	File string
}

// Dir returns the seedwalk config directory under the user config dir.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "seedwalk"), nil
}

// Path returns the config file in use: SEEDWALK_CONFIG when set, otherwise
// config.toml under Dir.
func Path() (string, error) {
	if p := os.Getenv("SEEDWALK_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads configuration from file and env. Env var overrides use prefix SEEDWALK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("wordlist.path", "english.txt")
	v.SetDefault("ui.language", "zh")
	v.SetDefault("ui.default_length", 0)
	v.SetDefault("ui.mask_words", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("keys.file", "")

	v.SetConfigType("toml")

	cfgPath, err := Path()
	if err != nil {
		return Config{}, err
	}
	v.SetConfigFile(cfgPath)

	v.SetEnvPrefix("SEEDWALK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(cfgPath); statErr == nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

func normalize(c Config) Config {
	switch c.UI.DefaultLength {
	case 0, 12, 18, 24:
	default:
		c.UI.DefaultLength = 0
	}
	c.UI.Language = strings.ToLower(strings.TrimSpace(c.UI.Language))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Wordlist.Path = strings.TrimSpace(c.Wordlist.Path)
	return c
}

// Save writes the provided config to disk, creating the config directory if needed.
// This is used by the TUI to remember the chosen language.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("wordlist.path", cfg.Wordlist.Path)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.default_length", cfg.UI.DefaultLength)
	v.Set("ui.mask_words", cfg.UI.MaskWords)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("keys.file", cfg.Keys.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
