// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "havoctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HAVOCTL_CFG_FILE", path)
	Config = Type{}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "aws:\n  region: eu-central-1\n  profile: chaos\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)

	region, err := GetString("aws.region")
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", region)

	profile, err := GetString("aws.profile")
	require.NoError(t, err)
	assert.Equal(t, "chaos", profile)
}

func TestGetStringDefault(t *testing.T) {
	writeConfig(t, "aws:\n  region: us-west-2\n")

	endpoint, err := GetString("aws.endpoint", "")
	require.NoError(t, err)
	assert.Equal(t, "", endpoint)

	_, err = GetString("aws.endpoint")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	writeConfig(t, "poll:\n  interval: 250\n")

	interval, err := GetInt("poll.interval")
	require.NoError(t, err)
	assert.Equal(t, 250, interval)

	fallback, err := GetInt("poll.timeout", 300)
	require.NoError(t, err)
	assert.Equal(t, 300, fallback)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("HAVOCTL_CFG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
}
