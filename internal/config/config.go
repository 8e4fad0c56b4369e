package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/its-jojoo/sharebutton/internal/core"
)

const (
	DefaultFileName = "sharebutton"
	DefaultFilePath = "/etc/sharebutton"

	DefaultPort       = 3000
	DefaultName       = "My Personal List"
	DefaultIcon       = "https://via.placeholder.com/64/6200EE/FFFFFF?text=Share"
	DefaultPublicHost = "localhost"

	StoreMemory = "memory"
	StoreSQLite = "sqlite"

	SharePath = "/api/share"
)

type Config struct {
	Port       int    `mapstructure:"port"`
	Debug      bool   `mapstructure:"-"` // read leniently in Load
	Name       string `mapstructure:"name"`
	Icon       string `mapstructure:"icon"`
	PublicHost string `mapstructure:"publicHost"` // host clients use to reach us; the server itself binds 0.0.0.0
	Store      string `mapstructure:"store"`
}

// envBindings maps config keys to the environment variables that set them.
// FLASK_DEBUG is honored so existing setups of the example server keep
// working.
var envBindings = map[string][]string{
	"port":       {"PORT"},
	"debug":      {"DEBUG", "FLASK_DEBUG"},
	"name":       {"SHARE_NAME"},
	"icon":       {"SHARE_ICON"},
	"publicHost": {"PUBLIC_HOST"},
	"store":      {"SHARE_STORE"},
}

// New returns a viper instance with defaults and env bindings set, ready for
// flags to be bound on top.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("debug", false)
	v.SetDefault("name", DefaultName)
	v.SetDefault("icon", DefaultIcon)
	v.SetDefault("publicHost", DefaultPublicHost)
	v.SetDefault("store", StoreMemory)

	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	v.AddConfigPath(DefaultFilePath)
	v.AddConfigPath(".")
	v.SetConfigName(DefaultFileName)

	return v
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped; existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load %s", f)
		}
	}
	return nil
}

// Load reads the optional config file (explicit path or the default search
// locations) and decodes everything into a validated Config.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	// Only recognizable true values (1, t, true) switch debug on; anything
	// else, e.g. DEBUG=yes, leaves it off instead of failing startup.
	cfg.Debug = v.GetBool("debug")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.Errorf("port %d out of range 1-65535", c.Port)
	}
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		return errors.Errorf("unknown store %q, want %s or %s", c.Store, StoreMemory, StoreSQLite)
	}
	if c.PublicHost == "" {
		c.PublicHost = DefaultPublicHost
	}
	return nil
}

// ListenAddr binds all interfaces on the configured port.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// ShareTarget is what the configuration endpoint hands to clients.
func (c *Config) ShareTarget() core.ShareTarget {
	return core.ShareTarget{
		Name:     c.Name,
		Icon:     c.Icon,
		Endpoint: fmt.Sprintf("http://%s:%d%s", c.PublicHost, c.Port, SharePath),
	}
}
