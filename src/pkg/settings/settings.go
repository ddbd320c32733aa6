// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package settings reads and writes the persisted user settings of kyle
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/darhebkf/kyle/src/pkg/formats"
	"github.com/spf13/viper"
)

// Setting keys
const (
	KeyDefaultFormat   = "default_format"
	KeyAutoUpgrade     = "auto_upgrade"
	KeyLogLevel        = "log_level"
	KeyDiscoveryIgnore = "discovery.ignore"
)

// key describes one setting
type key struct {
	def     any
	allowed []string
	// list values are stored as an array and given as a comma separated string
	list bool
}

var keys = map[string]key{
	KeyDefaultFormat:   {def: formats.TOML.Name(), allowed: []string{"yaml", "toml"}},
	KeyAutoUpgrade:     {def: false, allowed: []string{"true", "false"}},
	KeyLogLevel:        {def: "info", allowed: []string{"warn", "info", "debug", "trace"}},
	KeyDiscoveryIgnore: {def: []string{}, list: true},
}

// Keys returns the known setting keys in sorted order.
func Keys() []string {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Settings holds the user settings read from the settings file and the environment
type Settings struct {
	v    *viper.Viper
	path string
}

// Load reads the settings file at path. A missing file yields the defaults; environment
// variables prefixed with envPrefix override the file.
func Load(path, envPrefix string) (*Settings, error) {
	v := viper.New()
	for name, k := range keys {
		v.SetDefault(name, k.def)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	s := &Settings{v: v, path: path}
	if err := readFile(v, path); err != nil {
		return s, err
	}
	return s, nil
}

func readFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Path returns the location of the settings file.
func (s *Settings) Path() string {
	return s.path
}

// DefaultFormat is used for Kylefiles with neither an extension nor a header.
func (s *Settings) DefaultFormat() formats.Format {
	if f, ok := formats.FromName(s.v.GetString(KeyDefaultFormat)); ok {
		return f
	}
	return formats.TOML
}

// AutoUpgrade reports whether automatic upgrades are enabled.
func (s *Settings) AutoUpgrade() bool {
	return s.v.GetBool(KeyAutoUpgrade)
}

// LogLevel returns the configured log level name.
func (s *Settings) LogLevel() string {
	return s.v.GetString(KeyLogLevel)
}

// DiscoveryIgnore returns the extra ignore patterns for namespace discovery.
// A plain string, as set through the environment, is split on commas like `config set` input.
func (s *Settings) DiscoveryIgnore() []string {
	if raw, ok := s.v.Get(KeyDiscoveryIgnore).(string); ok {
		return splitList(raw)
	}

	var patterns []string
	for _, p := range s.v.GetStringSlice(KeyDiscoveryIgnore) {
		patterns = append(patterns, splitList(p)...)
	}
	return patterns
}

// Get returns the value of key as text.
func (s *Settings) Get(name string) (string, error) {
	k, ok := keys[name]
	if !ok {
		return "", &UnknownKeyError{Key: name}
	}
	if k.list {
		return strings.Join(s.DiscoveryIgnore(), ","), nil
	}
	return s.v.GetString(name), nil
}

// List returns every setting as (key, value) pairs sorted by key.
func (s *Settings) List() [][2]string {
	pairs := make([][2]string, 0, len(keys))
	for _, name := range Keys() {
		value, _ := s.Get(name)
		pairs = append(pairs, [2]string{name, value})
	}
	return pairs
}

// Set validates value and writes it to the settings file, creating the file if needed.
// Values from the environment are not written.
func (s *Settings) Set(name, value string) error {
	parsed, err := parse(name, value)
	if err != nil {
		return err
	}

	file := viper.New()
	if err := readFile(file, s.path); err != nil {
		return fmt.Errorf("unable to read %s: %w", s.path, err)
	}
	file.Set(name, parsed)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := file.WriteConfigAs(s.path); err != nil {
		return err
	}

	s.v.Set(name, parsed)
	return nil
}

func parse(name, value string) (any, error) {
	k, ok := keys[name]
	if !ok {
		return nil, &UnknownKeyError{Key: name}
	}

	if k.list {
		return splitList(value), nil
	}

	for _, allowed := range k.allowed {
		if value == allowed {
			if _, isBool := k.def.(bool); isBool {
				return strconv.ParseBool(value)
			}
			return value, nil
		}
	}
	return nil, &InvalidValueError{Key: name, Value: value, Allowed: k.allowed}
}

// UnknownKeyError is returned for a setting that does not exist
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown config key: %s", e.Key)
}

// InvalidValueError is returned for a value outside the allowed set of a setting
type InvalidValueError struct {
	Key     string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value '%s' for %s (allowed: %s)", e.Value, e.Key, strings.Join(e.Allowed, ", "))
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
