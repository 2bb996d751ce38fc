// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type LogConfig struct {
	Level string `yaml:"level"`
}

type RenderConfig struct {
	Style string `yaml:"style"` // ascii or color
}

// Scenario is a fixed sequence of inserts followed by deletes.
type Scenario struct {
	Name   string `yaml:"name"`
	Insert []int  `yaml:"insert"`
	Delete []int  `yaml:"delete"`
}

type DemoConfig struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

type StressConfig struct {
	Operations    int   `yaml:"operations"`
	MaxKey        int   `yaml:"max_key"`
	Seed          int64 `yaml:"seed"`
	ValidateEvery int   `yaml:"validate_every"`
}

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
	Demo   DemoConfig   `yaml:"demo"`
	Stress StressConfig `yaml:"stress"`
}

const (
	RenderStyleASCII = "ascii"
	RenderStyleColor = "color"
)

func defaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Render: RenderConfig{
			Style: RenderStyleASCII,
		},
		Demo: DemoConfig{
			Scenarios: []Scenario{
				{
					Name:   "original",
					Insert: []int{33, 13, 52, 9, 21, 61, 8, 11},
					Delete: []int{13},
				},
				{
					Name:   "rotations",
					Insert: []int{2, 1, 7, 4, 5, 3, 8},
					Delete: []int{3},
				},
			},
		},
		Stress: StressConfig{
			Operations:    10000,
			MaxKey:        512,
			Seed:          1,
			ValidateEvery: 1,
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the configuration at path, or at ~/.avltree.yaml when path
// is empty. A missing file yields the defaults. Keys absent from the file keep
// their default values. On a malformed file the defaults are returned along
// with the error.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			return &config, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return &config, errors.Wrapf(err, "failed to read config %s", path)
	}

	loaded := defaultConfig()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return &config, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := loaded.validate(); err != nil {
		return &config, errors.Wrapf(err, "invalid config %s", path)
	}

	return &loaded, nil
}

func (c *Config) validate() error {
	switch c.Render.Style {
	case RenderStyleASCII, RenderStyleColor:
	default:
		return errors.Errorf("unknown render style %q", c.Render.Style)
	}
	if c.Stress.Operations < 0 {
		return errors.Errorf("stress.operations must not be negative, got %d", c.Stress.Operations)
	}
	if c.Stress.MaxKey <= 0 {
		return errors.Errorf("stress.max_key must be positive, got %d", c.Stress.MaxKey)
	}
	for i, s := range c.Demo.Scenarios {
		if s.Name == "" {
			return errors.Errorf("demo scenario #%d has no name", i+1)
		}
	}
	return nil
}

func (c *Config) scenario(name string) (Scenario, bool) {
	for _, s := range c.Demo.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func createDefaultConfigFile(path string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func displaySettings(w io.Writer, path string) error {
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			return errors.Wrap(err, "failed to get config path")
		}
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	fmt.Fprintf(w, "🔧 AVL Tree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}
	fmt.Fprintf(w, "📊 Current settings:\n\n%s\n", data)

	return nil
}
