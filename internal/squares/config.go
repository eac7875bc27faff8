package squares

import (
	"fmt"
	"time"

	"github.com/TheBitDrifter/ledger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	minKinds   = int(KindAnimation) + 1
	minSystems = int(SysAnimation) + 1
)

type Config struct {
	Table     ledger.TableConfig `toml:"table" yaml:"table"`
	Logging   LoggingConfig      `toml:"logging" yaml:"logging"`
	FrameTime time.Duration      `toml:"frame_time" yaml:"frame_time"`
	Sound     bool               `toml:"sound" yaml:"sound"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // the terminal belongs to the renderer
}

func DefaultConfig() Config {
	return Config{
		Table: ledger.TableConfig{
			MaxEntities:        128,
			MaxComponentKinds:  8,
			MaxSystems:         6,
			ActivateOnRegister: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "coloredsquares.log",
		},
		FrameTime: 16 * time.Millisecond,
	}
}

// LoadConfig reads path over DefaultConfig. An empty path yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := ledger.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Table.Validate(); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if c.Table.MaxComponentKinds < minKinds {
		return ledger.ConfigError{Field: "max_component_kinds", Value: c.Table.MaxComponentKinds, Reason: fmt.Sprintf("game needs %d", minKinds)}
	}
	if c.Table.MaxSystems < minSystems {
		return ledger.ConfigError{Field: "max_systems", Value: c.Table.MaxSystems, Reason: fmt.Sprintf("game needs %d", minSystems)}
	}
	if c.FrameTime <= 0 {
		return fmt.Errorf("frame_time %s must be positive", c.FrameTime)
	}
	return nil
}

func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
