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

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkit.yaml"

type QueryConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	// Expected false positive rate of the find prefilter
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type PointsConfig struct {
	Input        string `yaml:"input"`
	Output       string `yaml:"output"`
	ReportEvery  int    `yaml:"report_every"`
	ShowProgress bool   `yaml:"show_progress"`
}

type RenderConfig struct {
	Width int `yaml:"width"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Query  QueryConfig  `yaml:"query"`
	Points PointsConfig `yaml:"points"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

var defaultConfig = Config{
	Query: QueryConfig{
		Input:             "avl.in",
		Output:            "avl.out",
		FalsePositiveRate: 0.01,
	},
	Points: PointsConfig{
		Input:       "data.in",
		Output:      "data.out",
		ReportEvery: 60_000,
	},
	Render: RenderConfig{
		Width: 80,
	},
	Log: LogConfig{
		Level: "info",
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the YAML config at path, or at ~/.avlkit.yaml when path
// is empty. A missing file yields the defaults. On a read or parse error the
// defaults are returned together with the error so callers may carry on.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return &config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	config.normalize()

	return &config, nil
}

// normalize replaces out-of-range values with defaults.
func (c *Config) normalize() {
	if c.Points.ReportEvery <= 0 {
		c.Points.ReportEvery = defaultConfig.Points.ReportEvery
	}
	if c.Render.Width <= 0 {
		c.Render.Width = defaultConfig.Render.Width
	}
	if c.Query.FalsePositiveRate <= 0 || c.Query.FalsePositiveRate >= 1 {
		c.Query.FalsePositiveRate = defaultConfig.Query.FalsePositiveRate
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultConfig.Log.Level
	}
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// displaySettings prints the effective configuration, creating the default
// file first when none exists.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 avlkit configuration\n")
	fmt.Fprintf(w, "═══════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
