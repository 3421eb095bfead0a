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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")
	data := []byte("points:\n  report_every: 5\n  show_progress: true\nlog:\n  level: debug\nrender:\n  width: -3\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, config.Points.ReportEvery)
	assert.True(t, config.Points.ShowProgress)
	assert.Equal(t, "debug", config.Log.Level)
	// untouched and invalid values fall back to defaults
	assert.Equal(t, defaultConfig.Points.Input, config.Points.Input)
	assert.Equal(t, defaultConfig.Query, config.Query)
	assert.Equal(t, defaultConfig.Render.Width, config.Render.Width)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("points: [unclosed"), 0644))

	config, err := LoadConfig(path)
	assert.Error(t, err)
	require.NotNil(t, config)
	assert.Equal(t, defaultConfig, *config)
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path))
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "newly created")
	assert.Contains(t, out.String(), "report_every: 60000")

	out.Reset()
	require.NoError(t, displaySettings(&out, path))
	assert.NotContains(t, out.String(), "newly created")
}
