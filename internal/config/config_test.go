package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Missing(t *testing.T) {
	assert := assert.New(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
	assert.Equal(SortConfig{Key: "name"}, cfg.Sort)
}

func TestLoad_TOML(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, "config.toml", `
[sort]
key = "size"
reverse = true
dirs_first = true

[view]
icons = true
ignore = ["node_modules", "*.o"]

[interactive]
expand_level = 2
editor = "nvim -p"
search = "fuzzy"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(path, cfg.Path)
	assert.Equal(SortConfig{Key: "size", Reverse: true, DirsFirst: true}, cfg.Sort)
	assert.True(cfg.View.Icons)
	assert.Equal("auto", cfg.View.Color)
	assert.Equal([]string{"node_modules", "*.o"}, cfg.View.Ignore)
	assert.Equal(2, cfg.Interactive.ExpandLevel)
	assert.Equal("nvim -p", cfg.Interactive.Editor)
	assert.Equal("fuzzy", cfg.Interactive.Search)
	assert.Equal("debug", cfg.Log.Level)
}

func TestLoad_JSONWithComments(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, "config.json", `{
  // sort newest first
  "sort": {"key": "modified", "reverse": true},
  "view": {"size": true, "git_status": true,},
}`)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal("modified", cfg.Sort.Key)
	assert.True(cfg.Sort.Reverse)
	assert.True(cfg.View.Size)
	assert.True(cfg.View.GitStatus)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"bad.toml":     "[sort\n",
		"unknown.toml": "[sort]\nordre = \"size\"\n",
		"key.toml":     "[sort]\nkey = \"colour\"\n",
		"color.toml":   "[view]\ncolor = \"sometimes\"\n",
		"search.toml":  "[interactive]\nsearch = \"regex\"\n",
		"level.toml":   "[interactive]\nexpand_level = -1\n",
		"log.toml":     "[log]\nlevel = \"loud\"\n",
		"bad.json":     `{"sort": {"key": 1}}`,
		"extra.json":   `{"theme": "dark"}`,
	}
	for name, content := range cases {
		path := writeFile(t, name, content)
		_, err := Load(path)
		if assert.Error(t, err, name) {
			assert.Contains(t, err.Error(), path, name)
		}
	}
}

func TestLoadDefault_Env(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, "custom.toml", "[sort]\nnatural = true\n")
	t.Setenv(EnvPath, path)

	cfg, err := LoadDefault()
	assert.NoError(err)
	assert.True(cfg.Sort.Natural)

	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "missing.toml"))
	_, err = LoadDefault()
	assert.Error(err)
}

func TestLoadDefault_UserConfigDir(t *testing.T) {
	assert := assert.New(t)
	home := t.TempDir()
	t.Setenv(EnvPath, "")
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	cfg, err := LoadDefault()
	assert.NoError(err)
	assert.Empty(cfg.Path)

	paths := DefaultPaths()
	if !assert.Len(paths, 2) {
		return
	}
	assert.NoError(os.MkdirAll(filepath.Dir(paths[1]), 0755))
	assert.NoError(os.WriteFile(paths[1], []byte(`{"view": {"all": true}}`), 0644))

	cfg, err = LoadDefault()
	assert.NoError(err)
	assert.True(cfg.View.All)
	assert.Equal(paths[1], cfg.Path)
}
