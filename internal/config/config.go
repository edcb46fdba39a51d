package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Presets file: {"fields": {"phone": {"inputMask": "+1(###) ###-####", ...}, ...}}
// The encoding follows the file extension: .json, .yaml/.yml or .toml.
type Config struct {
	Fields map[string]Preset `json:"fields" yaml:"fields" toml:"fields"`
}

// Preset is the configuration of one masked field.
type Preset struct {
	InputMask     string `json:"inputMask,omitempty" yaml:"inputMask,omitempty" toml:"inputMask,omitempty"`
	Placeholder   string `json:"placeholder,omitempty" yaml:"placeholder,omitempty" toml:"placeholder,omitempty"` // first rune is used; "#" when empty
	StaticMask    string `json:"staticMask,omitempty" yaml:"staticMask,omitempty" toml:"staticMask,omitempty"`
	StaticEnabled bool   `json:"staticEnabled,omitempty" yaml:"staticEnabled,omitempty" toml:"staticEnabled,omitempty"`
	InputDisabled bool   `json:"inputDisabled,omitempty" yaml:"inputDisabled,omitempty" toml:"inputDisabled,omitempty"`
}

// PlaceholderRune returns the first rune of Placeholder, or '#'.
func (p Preset) PlaceholderRune() rune {
	for _, r := range p.Placeholder {
		return r
	}
	return '#'
}

// Default returns the built-in presets.
func Default() *Config {
	return &Config{Fields: map[string]Preset{
		"phone": {InputMask: "+1(###) ###-####", StaticMask: "+1(***) ***-[6][7][8][9]"},
		"card":  {InputMask: "#### #### #### ####", StaticMask: "**** **** **** [12-15]"},
		"date":  {InputMask: "##/##/####", StaticMask: "[0-1]/**/[4-7]"},
		"ssn":   {InputMask: "###-##-####", StaticMask: "***-**-[5-8]"},
		"plain": {},
	}}
}

type format int

const (
	formatJSON format = iota
	formatYAML
	formatTOML
)

func formatOf(path string) (format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported presets file extension %q", ext)
	}
}

func Load(path string) (*Config, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var c Config
	switch f {
	case formatJSON:
		err = json.Unmarshal(data, &c)
	case formatYAML:
		err = yaml.Unmarshal(data, &c)
	case formatTOML:
		err = toml.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", filepath.Base(path), err)
	}
	if len(c.Fields) == 0 {
		return nil, fmt.Errorf("presets file has no fields")
	}
	return &c, nil
}

func Names(c *Config) []string {
	names := make([]string, 0, len(c.Fields))
	for k := range c.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named preset.
func Lookup(c *Config, name string) (Preset, error) {
	p, ok := c.Fields[name]
	if !ok {
		return Preset{}, fmt.Errorf("no preset named %q (have: %s)", name, strings.Join(Names(c), ", "))
	}
	return p, nil
}

// Presets are plain values, so copying the map is a full copy.
func Clone(c *Config) *Config {
	out := &Config{Fields: make(map[string]Preset, len(c.Fields))}
	for k, v := range c.Fields {
		out.Fields[k] = v
	}
	return out
}

func Save(path string, c *Config) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch f {
	case formatJSON:
		data, err = json.MarshalIndent(c, "", "  ")
	case formatYAML:
		data, err = yaml.Marshal(c)
	case formatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(c)
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
