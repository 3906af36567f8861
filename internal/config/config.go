// Package config loads crimemap configuration and initialises logging.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Map     MapConfig     `yaml:"map" mapstructure:"map"`
	Predict PredictConfig `yaml:"predict" mapstructure:"predict"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
}

// LogConfig configures logging. File, when set, replaces stderr as the output.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// MapConfig configures the map view.
type MapConfig struct {
	Asset          string   `yaml:"asset" mapstructure:"asset"`
	Dataset        string   `yaml:"dataset" mapstructure:"dataset"`
	LabelAttribute []string `yaml:"label_attribute" mapstructure:"label_attribute"`
	TooltipOffset  int      `yaml:"tooltip_offset" mapstructure:"tooltip_offset"`
	StrictHover    bool     `yaml:"strict_hover" mapstructure:"strict_hover"`
}

// PredictConfig configures the prediction client.
type PredictConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ServerConfig configures predictd.
type ServerConfig struct {
	Port int    `yaml:"port" mapstructure:"port"`
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

// New returns a viper instance with crimemap's file, environment and default settings.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CRIMEMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("map.asset", "")
	v.SetDefault("map.dataset", "")
	v.SetDefault("map.label_attribute", []string{"name", "title"})
	v.SetDefault("map.tooltip_offset", 4)
	v.SetDefault("map.strict_hover", false)
	v.SetDefault("predict.base_url", "http://localhost:5000")
	v.SetDefault("predict.timeout_secs", 10)
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.seed", 0)
	return v
}

// Load reads .env, the optional config.yaml and the environment into a Config.
func Load(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load(".env")

	if v == nil {
		v = New()
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if cfg.Map.TooltipOffset < 0 {
		return nil, eris.Errorf("config: map.tooltip_offset must be >= 0, got %d", cfg.Map.TooltipOffset)
	}
	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
