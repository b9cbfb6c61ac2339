package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dori/todoscreen/internal/debuglog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "TODOSCREEN"

// Config holds application configuration
type Config struct {
	UI    UIConfig
	Debug DebugConfig
}

// UIConfig holds presentation settings
type UIConfig struct {
	Title       string
	Theme       string
	Placeholder string
	CharLimit   int `mapstructure:"char_limit"`
}

// DebugConfig controls the debug log file
type DebugConfig struct {
	Enabled bool
	LogPath string `mapstructure:"log_path"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		UI: UIConfig{
			Title:       "Todo List",
			Theme:       "nord",
			Placeholder: "Add new...",
			CharLimit:   256,
		},
		Debug: DebugConfig{
			LogPath: debuglog.DefaultPath(),
		},
	}
}

// DefaultPath returns the config file looked up when no path is given
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".todoscreen", "config.toml")
	}
	return filepath.Join(dir, "todoscreen", "config.toml")
}

// Load reads configuration from file and env. An explicit path wins over
// TODOSCREEN_CONFIG, which wins over DefaultPath. Only a missing file at
// DefaultPath is fine; a named file must exist and parse.
func Load(path string) (Config, error) {
	def := Default()
	v := viper.New()

	v.SetDefault("ui.title", def.UI.Title)
	v.SetDefault("ui.theme", def.UI.Theme)
	v.SetDefault("ui.placeholder", def.UI.Placeholder)
	v.SetDefault("ui.char_limit", def.UI.CharLimit)
	v.SetDefault("debug.enabled", def.Debug.Enabled)
	v.SetDefault("debug.log_path", def.Debug.LogPath)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// TODOSCREEN_DEBUG=1 is the short form of TODOSCREEN_DEBUG_ENABLED
	if err := v.BindEnv("debug.enabled", EnvPrefix+"_DEBUG_ENABLED", debuglog.EnvVar); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	optional := path == ""
	if optional {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if !missing || !optional {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.CharLimit < 0 {
		c.UI.CharLimit = 0
	}
	return c, nil
}
