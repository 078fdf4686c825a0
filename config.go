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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkeys.yaml"

type RenderConfig struct {
	CellWidth int  `yaml:"cell_width"`
	Color     bool `yaml:"color"`
}

type InputConfig struct {
	Prompt       string `yaml:"prompt"`
	ExpectedKeys uint   `yaml:"expected_keys"` // sizes the duplicate filter
}

type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

type Config struct {
	Render RenderConfig `yaml:"render"`
	Input  InputConfig  `yaml:"input"`
	Log    LogConfig    `yaml:"log"`
}

var defaultConfig = Config{
	Render: RenderConfig{
		CellWidth: defaultCellWidth,
		Color:     true,
	},
	Input: InputConfig{
		Prompt:       "> ",
		ExpectedKeys: 10000,
	},
}

// LoadConfig reads ~/.avlkeys.yaml. Any problem with the file yields the
// defaults; the error is only reported to the caller for logging.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cfg = defaultConfig
		return &cfg, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	cfg.normalize()
	return &cfg, nil
}

// normalize replaces values the renderer and session cannot work with.
func (c *Config) normalize() {
	if c.Render.CellWidth < 1 {
		c.Render.CellWidth = defaultCellWidth
	}
	if c.Input.ExpectedKeys == 0 {
		c.Input.ExpectedKeys = defaultConfig.Input.ExpectedKeys
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("%s❌ %v. Showing defaults.%s\n\n", Error, err, Reset)
	}

	fmt.Printf("🔧 avlkeys Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s%s%s\n", Info, configPath, Reset)
	} else {
		fmt.Printf("📍 Config file: %s%s%s (newly created)\n", Info, configPath, Reset)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sRendering:%s\n", Green, Reset)
	fmt.Printf("  • %scell_width%s: %d\n", Green, Reset, config.Render.CellWidth)
	fmt.Printf("    Columns reserved for each key in the tree layout\n")
	fmt.Printf("  • %scolor%s: %t\n", Green, Reset, config.Render.Color)
	fmt.Printf("    Colour keys by balance signal\n\n")

	fmt.Printf("⌨️  %sInput:%s\n", Green, Reset)
	fmt.Printf("  • %sprompt%s: %q\n", Green, Reset, config.Input.Prompt)
	fmt.Printf("  • %sexpected_keys%s: %d\n\n", Green, Reset, config.Input.ExpectedKeys)

	fmt.Printf("📜 %sLogging:%s\n", Green, Reset)
	fmt.Printf("  • %sverbose%s: %t\n\n", Green, Reset, config.Log.Verbose)

	if config.Render.CellWidth < 4 {
		fmt.Printf("%s💡 Keys wider than %d characters will shift the layout. Raise render.cell_width in %s%s\n", Warning, config.Render.CellWidth, configPath, Reset)
	}
}
