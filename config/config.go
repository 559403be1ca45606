//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/timburks/proofed/logic"
)

// Config holds application configuration.
type Config struct {
	Style     string `mapstructure:"style"`     // plain or pretty
	LogFile   string `mapstructure:"log_file"`  // where the log is written
	Operators string `mapstructure:"operators"` // optional YAML operator table
}

// Load reads configuration from a file and the environment. If path is
// empty, ~/.config/proofed/config.yaml is read if present. Any format viper
// recognizes by extension (yaml, toml, json) may be given as path.
// Env var overrides use prefix PROOFED_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("style", logic.Plain.String())
	v.SetDefault("log_file", filepath.Join(os.Getenv("HOME"), ".proofedlog"))
	v.SetDefault("operators", "")

	// an explicit file is decoded by its extension
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "proofed"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PROOFED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := logic.ParseStyle(c.Style); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// GetStyle returns the configured rendering style.
func (c Config) GetStyle() logic.Style {
	s, err := logic.ParseStyle(c.Style)
	if err != nil {
		return logic.Plain
	}
	return s
}

// Table builds the operator table, from the operators file if one is
// configured and from the default spec otherwise.
func (c Config) Table() (*logic.Table, error) {
	if c.Operators == "" {
		return logic.DefaultTable(), nil
	}
	spec, err := ReadOperators(c.Operators)
	if err != nil {
		return nil, err
	}
	return logic.NewTable(spec)
}
