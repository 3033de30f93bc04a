package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"shopgrid/internal/eventbus"
)

// CurrentVersion is the config schema version written by this build
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version"`
	CatalogPath  string     `toml:"catalog_path"`   // empty means the embedded catalog
	ImageBaseURL string     `toml:"image_base_url"` // prefix for relative image references
	LogFile      string     `toml:"log_file"`
	UISettings   UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Columns          int    `toml:"columns"`
	ShowDescriptions bool   `toml:"show_descriptions"`
	CurrencySymbol   string `toml:"currency_symbol"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	log      *zap.Logger
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "shopgrid", "config.toml")
}

// NewConfigService creates a config service reading and writing path.
// An empty path selects DefaultPath.
func NewConfigService(path string, logger *zap.Logger) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &configService{
		log:      logger.Named("config"),
		filePath: path,
	}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cs.log.Info("no config file, using defaults", zap.String("path", cs.filePath))
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	cs.log.Info("loaded config", zap.String("path", cs.filePath))
	return cfg, nil
}

// Save saves the configuration to the service's path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.log.Info("saved config", zap.String("path", cs.filePath))
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Apply copies UI preferences carried by a ConfigChangedEvent into cfg
func (c *Config) Apply(event eventbus.ConfigChangedEvent) {
	if event.Columns > 0 {
		c.UISettings.Columns = event.Columns
	}
	c.UISettings.ShowDescriptions = event.ShowDescriptions
	c.normalize()
}

func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.UISettings.Columns < MinColumns {
		c.UISettings.Columns = MinColumns
	}
	if c.UISettings.Columns > MaxColumns {
		c.UISettings.Columns = MaxColumns
	}
	if c.UISettings.CurrencySymbol == "" {
		c.UISettings.CurrencySymbol = "$"
	}
	if c.LogFile == "" {
		c.LogFile = "shopgrid.log"
	}
}

// Grid width bounds
const (
	MinColumns = 1
	MaxColumns = 6
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		LogFile: "shopgrid.log",
		UISettings: UISettings{
			Columns:          3,
			ShowDescriptions: true,
			CurrencySymbol:   "$",
		},
	}
}
