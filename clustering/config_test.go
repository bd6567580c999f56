// SPDX-License-Identifier: MIT

package clustering_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangles/clustering"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := clustering.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, clustering.DefaultConfig(), cfg)
}

func TestParseConfig_Overlay(t *testing.T) {
	cfg, err := clustering.ParseConfig([]byte("agreement: 5\nprune_depth: 0\nlog_format: json\n"))
	require.NoError(t, err)

	want := clustering.DefaultConfig()
	want.Agreement = 5
	want.PruneDepth = 0
	want.LogFormat = "json"
	assert.Equal(t, want, cfg)
}

func TestParseConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero agreement":    "agreement: 0\n",
		"negative clusters": "max_clusters: -1\n",
		"zero parallelism":  "parallelism: 0\n",
		"unknown level":     "log_level: trace\n",
		"unknown format":    "log_format: xml\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := clustering.ParseConfig([]byte(data))
			assert.ErrorIs(t, err, clustering.ErrInvalidConfig)
		})
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := clustering.ParseConfig([]byte("agreement: [1"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, clustering.ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tangles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agreement: 3\nmax_clusters: 0\n"), 0o600))

	cfg, err := clustering.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Agreement)
	assert.Equal(t, 0, cfg.MaxClusters)

	_, err = clustering.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
