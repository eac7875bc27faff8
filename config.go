package ledger

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// MaxKindBits is the widest kind signature a table tracks.
	MaxKindBits = 64

	maxSystemIDs = math.MaxUint8 + 1
)

// Config holds global configuration for the ledger package
var Config config = config{logger: zap.NewNop()}

type config struct {
	logger *zap.Logger
}

// SetLogger routes table diagnostics to l. A nil logger silences them.
func (c *config) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l.Named("ledger")
}

// Logger returns the logger set with SetLogger.
func (c *config) Logger() *zap.Logger {
	return c.logger
}

// TableConfig fixes every capacity of a table before it is constructed.
type TableConfig struct {
	MaxEntities       int `toml:"max_entities" yaml:"max_entities"`
	MaxComponentKinds int `toml:"max_component_kinds" yaml:"max_component_kinds"`
	MaxSystems        int `toml:"max_systems" yaml:"max_systems"`

	// ActivateOnRegister activates a system when it is added to the table,
	// overriding whatever state it was constructed in.
	ActivateOnRegister bool `toml:"activate_on_register" yaml:"activate_on_register"`
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MaxEntities:        128,
		MaxComponentKinds:  8,
		MaxSystems:         8,
		ActivateOnRegister: true,
	}
}

func (c TableConfig) Validate() error {
	switch {
	case c.MaxEntities <= 0:
		return ConfigError{"max_entities", c.MaxEntities, "must be positive"}
	case c.MaxEntities > int(NoEntity):
		return ConfigError{"max_entities", c.MaxEntities, fmt.Sprintf("must not exceed %d", NoEntity)}
	case c.MaxComponentKinds <= 0:
		return ConfigError{"max_component_kinds", c.MaxComponentKinds, "must be positive"}
	case c.MaxComponentKinds > MaxKindBits:
		return ConfigError{"max_component_kinds", c.MaxComponentKinds, fmt.Sprintf("must not exceed %d", MaxKindBits)}
	case c.MaxSystems <= 0:
		return ConfigError{"max_systems", c.MaxSystems, "must be positive"}
	case c.MaxSystems > maxSystemIDs:
		return ConfigError{"max_systems", c.MaxSystems, fmt.Sprintf("must not exceed %d", maxSystemIDs)}
	}
	return nil
}

// LoadConfig reads a table configuration from a .toml, .yaml or .yml file.
// Keys missing from the file keep their DefaultTableConfig value.
func LoadConfig(path string) (TableConfig, error) {
	cfg := DefaultTableConfig()
	if err := DecodeFile(path, &cfg); err != nil {
		return TableConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TableConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeFile decodes a TOML or YAML file into v, chosen by extension.
func DecodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	return nil
}
