// Package config loads the optional user configuration file.
//
// The file is TOML, or JSON with comments and trailing commas when its
// extension is .json. Every field has a default, so a missing file is the
// same as an empty one.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hayeah/lstr/fzf"
	"github.com/hayeah/lstr/internal/logging"
	"github.com/hayeah/lstr/render"
	"github.com/hayeah/lstr/tree"
	"github.com/tailscale/hujson"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "LSTR_CONFIG"

type Config struct {
	Sort        SortConfig        `toml:"sort" json:"sort"`
	View        ViewConfig        `toml:"view" json:"view"`
	Interactive InteractiveConfig `toml:"interactive" json:"interactive"`
	Log         LogConfig         `toml:"log" json:"log"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-" json:"-"`
}

type SortConfig struct {
	Key           string `toml:"key" json:"key"`
	Reverse       bool   `toml:"reverse" json:"reverse"`
	DirsFirst     bool   `toml:"dirs_first" json:"dirs_first"`
	CaseSensitive bool   `toml:"case_sensitive" json:"case_sensitive"`
	Natural       bool   `toml:"natural" json:"natural"`
	DotfilesFirst bool   `toml:"dotfiles_first" json:"dotfiles_first"`
}

type ViewConfig struct {
	Color       string   `toml:"color" json:"color"`
	Icons       bool     `toml:"icons" json:"icons"`
	Size        bool     `toml:"size" json:"size"`
	Permissions bool     `toml:"permissions" json:"permissions"`
	GitStatus   bool     `toml:"git_status" json:"git_status"`
	All         bool     `toml:"all" json:"all"`
	Gitignore   bool     `toml:"gitignore" json:"gitignore"`
	Ignore      []string `toml:"ignore" json:"ignore"`
}

type InteractiveConfig struct {
	ExpandLevel int    `toml:"expand_level" json:"expand_level"`
	Editor      string `toml:"editor" json:"editor"`
	// Search is substring, extended or fuzzy.
	Search string `toml:"search" json:"search"`
}

type LogConfig struct {
	Level string `toml:"level" json:"level"`
	File  string `toml:"file" json:"file"`
}

func Default() *Config {
	return &Config{
		Sort:        SortConfig{Key: tree.SortName.String()},
		View:        ViewConfig{Color: string(render.ColorAuto)},
		Interactive: InteractiveConfig{Search: string(fzf.ModeSubstring)},
		Log:         LogConfig{Level: "warn"},
	}
}

// Load reads the config at path over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc", ".hujson":
		err = decodeJSON(data, cfg)
	default:
		err = decodeTOML(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Path = path
	return cfg, nil
}

// LoadDefault loads $LSTR_CONFIG, or config.toml then config.json under the
// user config directory.
func LoadDefault() (*Config, error) {
	if p := os.Getenv(EnvPath); p != "" {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvPath, err)
		}
		return Load(p)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the candidate config files in lookup order.
func DefaultPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(dir, "lstr", "config.toml"),
		filepath.Join(dir, "lstr", "config.json"),
	}
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeJSON(data []byte, cfg *Config) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := tree.ParseSortKey(c.Sort.Key); err != nil {
		return fmt.Errorf("sort.key: %w", err)
	}
	if _, err := render.ParseColorMode(c.View.Color); err != nil {
		return fmt.Errorf("view.color: %w", err)
	}
	if _, err := fzf.New(fzf.Mode(c.Interactive.Search)); err != nil {
		return fmt.Errorf("interactive.search: %w", err)
	}
	if c.Interactive.ExpandLevel < 0 {
		return fmt.Errorf("interactive.expand_level: must not be negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

