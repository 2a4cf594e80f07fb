package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/ttpr0/go-mosp/cache"
	"github.com/ttpr0/go-mosp/mosp"
	"github.com/ttpr0/go-mosp/routing"
	. "github.com/ttpr0/go-mosp/util"
	"github.com/ttpr0/go-mosp/weighting"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

type Config struct {
	Server   ServerOptions                 `yaml:"server"`
	Cache    cache.Options                 `yaml:"cache"`
	GraphDir string                        `yaml:"graph-dir" validate:"required"`
	// rebuild stored profile graphs on startup
	Rebuild  bool                          `yaml:"rebuild"`
	Profiles Dict[string, *ProfileOptions] `yaml:"profiles" validate:"required,min=1,dive,required"`
}

type ServerOptions struct {
	Addr string `yaml:"addr" toml:"addr"`
	// requests per second, 0 disables rate limiting
	RateLimit float64       `yaml:"rate-limit" toml:"rate-limit" validate:"gte=0"`
	Burst     int           `yaml:"burst" toml:"burst" validate:"gte=0"`
	Timeout   time.Duration `yaml:"timeout" toml:"timeout" validate:"gte=0"`
}

// Reads a yaml (.yml, .yaml) or toml (.toml) config file.
func ReadConfig(file string) (Config, error) {
	slog.Info("Reading config file " + file)
	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var config Config
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".yml", ".yaml":
		config, err = _DecodeYAML(data)
	case ".toml":
		config, err = _DecodeTOML(data)
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := ValidateConfig(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func DefaultConfig() Config {
	return Config{
		Server: ServerOptions{
			Addr:    ":5002",
			Timeout: 60 * time.Second,
		},
		Cache: cache.Options{
			Type:       "memory",
			TTL:        15 * time.Minute,
			MaxEntries: 10000,
		},
		GraphDir: "./graphs",
		Profiles: NewDict[string, *ProfileOptions](4),
	}
}

func _DecodeYAML(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func _DecodeTOML(data []byte) (Config, error) {
	defaults := DefaultConfig()
	raw := struct {
		Server   ServerOptions             `toml:"server"`
		Cache    cache.Options             `toml:"cache"`
		GraphDir string                    `toml:"graph-dir"`
		Rebuild  bool                      `toml:"rebuild"`
		Profiles map[string]toml.Primitive `toml:"profiles"`
	}{
		Server:   defaults.Server,
		Cache:    defaults.Cache,
		GraphDir: defaults.GraphDir,
	}
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Config{}, err
	}
	config := Config{
		Server:   raw.Server,
		Cache:    raw.Cache,
		GraphDir: raw.GraphDir,
		Rebuild:  raw.Rebuild,
		Profiles: NewDict[string, *ProfileOptions](len(raw.Profiles)),
	}
	for name, prim := range raw.Profiles {
		options := DefaultProfileOptions()
		if err := meta.PrimitiveDecode(prim, &options); err != nil {
			return Config{}, fmt.Errorf("profile %v: %w", name, err)
		}
		config.Profiles[name] = &options
	}
	return config, nil
}

var config_validate = validator.New()

func ValidateConfig(config *Config) error {
	if err := config_validate.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

//**********************************************************
// profile options
//**********************************************************

type ProfileOptions struct {
	// osm file (.pbf, .osm, .xml) or json graph (.json)
	Source  string `yaml:"source" toml:"source" validate:"required"`
	Decoder string `yaml:"decoder" toml:"decoder" validate:"omitempty,oneof=running driving"`
	// optional csv file of node elevations ("id;ele")
	Elevation         string `yaml:"elevation" toml:"elevation"`
	KeepAllComponents bool   `yaml:"keep-all-components" toml:"keep-all-components"`

	Weighting     weighting.WeightingOptions `yaml:"weighting" toml:"weighting"`
	Normalize     bool                       `yaml:"normalize" toml:"normalize"`
	Pruning       mosp.Pruning               `yaml:"pruning" toml:"pruning"`
	MaxIterations int                        `yaml:"max-iterations" toml:"max-iterations" validate:"gte=0"`

	Alternatives routing.AlternativeOptions `yaml:"alternatives" toml:"alternatives"`
}

func DefaultProfileOptions() ProfileOptions {
	return ProfileOptions{
		Decoder:      "running",
		Weighting:    weighting.DefaultOptions(),
		Normalize:    true,
		Pruning:      mosp.PruneFrontier,
		Alternatives: routing.DefaultAlternativeOptions(),
	}
}

// Decodes on top of the defaults, so omitted keys keep their default value.
func (self *ProfileOptions) UnmarshalYAML(value *yaml.Node) error {
	type _ProfileOptions ProfileOptions
	options := _ProfileOptions(DefaultProfileOptions())
	if err := value.Decode(&options); err != nil {
		return err
	}
	*self = ProfileOptions(options)
	return nil
}

// Source is a json graph instead of osm data.
func (self *ProfileOptions) IsGraphSource() bool {
	return strings.ToLower(filepath.Ext(self.Source)) == ".json"
}
