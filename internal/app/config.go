package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os/user"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"habitat/internal/domain"
	"habitat/pkg/validation"
)

// Config holds the application configuration.
type Config struct {
	Engine struct {
		Host       string `mapstructure:"host"`        // empty: DOCKER_HOST or the local socket
		APIVersion string `mapstructure:"api_version"` // empty: negotiate
	} `mapstructure:"engine"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Container struct {
		Name  string `mapstructure:"name"`
		Shell string `mapstructure:"shell"`
	} `mapstructure:"container"`

	Provision struct {
		DockerSocket string        `mapstructure:"docker_socket"`
		Display      string        `mapstructure:"display"`
		StopTimeout  time.Duration `mapstructure:"stop_timeout"`
	} `mapstructure:"provision"`

	Build struct {
		CompressContext bool   `mapstructure:"compress_context"`
		User            string `mapstructure:"user"`
		Password        string `mapstructure:"password"`
	} `mapstructure:"build"`
}

var logFormats = map[string]bool{"console": true, "json": true}

// Validate checks the values viper cannot type-check.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil || c.Logging.Level == "" {
		return fmt.Errorf("%w: unknown log level %q", domain.ErrInvalidConfig, c.Logging.Level)
	}
	if !logFormats[c.Logging.Format] {
		return fmt.Errorf("%w: unknown log format %q (want console or json)", domain.ErrInvalidConfig, c.Logging.Format)
	}
	if c.Provision.StopTimeout <= 0 {
		return fmt.Errorf("%w: provision.stop_timeout must be positive, got %s", domain.ErrInvalidConfig, c.Provision.StopTimeout)
	}
	if err := validation.ValidateContainerName(c.Container.Name); err != nil {
		return fmt.Errorf("%w: container.name: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

// DefaultConfig returns the configuration built from defaults alone.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

// initConfig loads configuration from file, .env and environment.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Build.User = validation.NormalizeUser(cfg.Build.User)

	if err := cfg.Validate(); err != nil {
		return nil, Config{}, err
	}

	return v, cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.host", "")
	v.SetDefault("engine.api_version", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("container.name", "habitat")
	v.SetDefault("container.shell", "fish")
	v.SetDefault("provision.docker_socket", domain.DefaultDockerSocket)
	v.SetDefault("provision.display", domain.DefaultDisplay)
	v.SetDefault("provision.stop_timeout", "30s")
	v.SetDefault("build.compress_context", false)
	v.SetDefault("build.user", currentUser())
	v.SetDefault("build.password", "")
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	setDefaults(v)

	// Values already in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read .env: %w", err)
	}

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("HABITAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The build args double as environment defaults.
	if err := v.BindEnv("build.user", "HABITAT_BUILD_USER", domain.BuildArgUser); err != nil {
		return fmt.Errorf("failed to bind build.user: %w", err)
	}
	if err := v.BindEnv("build.password", "HABITAT_BUILD_PASSWORD", domain.BuildArgPassword); err != nil {
		return fmt.Errorf("failed to bind build.password: %w", err)
	}

	return nil
}

func currentUser() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return validation.NormalizeUser(u.Username)
}
