package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/ninja-strike/internal/commitment"
	"github.com/rocketscienceinc/ninja-strike/internal/machine"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis   `yaml:"redis"`
	Machine  Machine `yaml:"machine"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Machine struct {
	ID          string `yaml:"id" env:"MACHINE_ID" env-default:"ninja-strike"`
	GenesisPath string `yaml:"genesis-path" env:"MACHINE_GENESIS_PATH" env-default:"genesis-state.json"`
	Variant     string `yaml:"variant" env:"MACHINE_VARIANT" env-default:"ninja-strike"`

	// Overrides of the variant preset; zero values keep the preset.
	WinThreshold  uint64 `yaml:"win-threshold" env:"MACHINE_WIN_THRESHOLD"`
	PruneInterval uint64 `yaml:"prune-interval" env:"MACHINE_PRUNE_INTERVAL"`
	Closer        string `yaml:"closer" env:"MACHINE_CLOSER"`
	TiePolicy     string `yaml:"tie-policy" env:"MACHINE_TIE_POLICY"`
	Commitment    string `yaml:"commitment" env:"MACHINE_COMMITMENT"`

	PruneEvery time.Duration `yaml:"prune-every" env:"MACHINE_PRUNE_EVERY" env-default:"1m"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GetVariant - the configured preset with overrides applied.
func (that *Machine) GetVariant() (machine.Variant, error) {
	variant, err := machine.VariantByName(that.Variant)
	if err != nil {
		return machine.Variant{}, err
	}

	if that.WinThreshold != 0 {
		variant.WinThreshold = that.WinThreshold
	}

	if that.PruneInterval != 0 {
		variant.PruneInterval = that.PruneInterval
	}

	if that.Closer != "" {
		variant.Closer = that.Closer
	}

	if that.TiePolicy != "" {
		variant.Tie = machine.TiePolicy(that.TiePolicy)
	}

	if that.Commitment != "" {
		scheme, err := commitment.ParseScheme(that.Commitment)
		if err != nil {
			return machine.Variant{}, err
		}
		variant.Commitment = scheme
	}

	return variant, nil
}
