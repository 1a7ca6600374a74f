// Package config loads zml configuration: a layered merge of embedded
// defaults, the user's config file, and ZML_* environment variables.
// Configuration declares markup aliases and palette seeds; Apply
// registers them into a markup context.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	zerrors "github.com/arthur-debert/zenith/pkg/errors"
	"github.com/arthur-debert/zenith/pkg/markup"
	"github.com/arthur-debert/zenith/pkg/palette"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Render holds output settings
type Render struct {
	// Color is the capability override: auto, never, 16, 256 or truecolor
	Color string `koanf:"color"`
}

// Palette declares a palette to derive and alias at startup
type Palette struct {
	Seed     string `koanf:"seed"`
	Strategy string `koanf:"strategy"`
}

// Config is the fully merged zml configuration
type Config struct {
	Render   Render             `koanf:"render"`
	Aliases  map[string]string  `koanf:"aliases"`
	Palettes map[string]Palette `koanf:"palettes"`
}

// DefaultConfigContent returns the embedded defaults, for `config init`
// style commands that write a starting point for the user to edit.
func DefaultConfigContent() string {
	return string(defaultConfig)
}

// UserConfigPath returns the path the user config is read from: the
// first of config.toml / config.yaml / config.yml under the zml XDG
// config directory that exists, or the empty string.
func UserConfigPath() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(xdg.ConfigHome, "zml", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yaml.Parser()
	}
	return toml.Parser()
}

// Load merges configuration in precedence order: embedded defaults,
// then the config file (the given path, or the XDG location when path
// is empty), then ZML_* environment variables. A missing user config
// is not an error; a present but malformed one is.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, zerrors.Wrap(err, zerrors.ErrConfigLoad, "loading built-in defaults")
	}

	if path == "" {
		path = UserConfigPath()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, zerrors.Wrapf(err, zerrors.ErrConfigParse, "loading config from %s", path)
		}
	}

	// ZML_RENDER_COLOR=never -> render.color
	err := k.Load(env.Provider("ZML_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "ZML_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, zerrors.Wrap(err, zerrors.ErrConfigLoad, "loading environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, zerrors.Wrap(err, zerrors.ErrConfigParse, "unmarshaling configuration")
	}

	return &cfg, nil
}

// strategyByName maps a config strategy name to a paletting function
func strategyByName(name string) (palette.Strategy, error) {
	switch strings.ToLower(name) {
	case "", "triadic":
		return palette.Triadic, nil
	case "analogous":
		return palette.Analogous, nil
	case "tetradic":
		return palette.Tetradic, nil
	default:
		return nil, zerrors.Newf(zerrors.ErrConfigParse,
			"unknown palette strategy %q; expected triadic, analogous or tetradic", name)
	}
}

// Apply registers the configuration's aliases and palettes into a markup
// context. Palettes are applied in name order, then plain aliases, so an
// explicit alias can override a generated palette name. The palette
// named "default" is registered without a namespace; any other palette's
// names are prefixed with "<name>.".
func (c *Config) Apply(ctx *markup.Context) error {
	if ctx == nil {
		ctx = markup.Default()
	}

	names := make([]string, 0, len(c.Palettes))
	for name := range c.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		decl := c.Palettes[name]

		strategy, err := strategyByName(decl.Strategy)
		if err != nil {
			return err
		}

		p, err := palette.FromHex(decl.Seed, strategy)
		if err != nil {
			return zerrors.Wrapf(err, zerrors.ErrConfigParse, "palette %q has a bad seed", name)
		}

		if name != "default" {
			p.Namespace = name + "."
		}
		p.Alias(ctx)
	}

	for name, expansion := range c.Aliases {
		ctx.Alias(name, expansion)
	}

	return nil
}
