// Package config handles the persistent user configuration for blanqr.
//
// The configuration is a small INI-style file at %APPDATA%\Blanqr\config.ini
// (or the platform-equivalent directory returned by os.UserConfigDir)
// holding a single setting:
//
//	hotkey = Ctrl+Shift+B
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mj1618/blanqr/internal/model"
)

const (
	appDir   = "Blanqr"
	fileName = "config.ini"

	keyHotkey = "hotkey"
)

// pathOverride, when non-empty, replaces the default config file path.
// Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across runs.
type Config struct {
	Hotkey model.Hotkey
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Hotkey: model.DefaultHotkey}
}

// Path returns the absolute path to the config file.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Dir returns the directory holding the config file. The log file lives
// there too.
func Dir() (string, error) {
	p, err := Path()
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// Load reads the config file. A missing file yields the defaults with
// existed=false; that is how the first run is detected. Unreadable values
// fall back to their defaults without an error.
func Load() (cfg *Config, existed bool, err error) {
	path, err := Path()
	if err != nil {
		return Default(), false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), false, nil
		}
		return Default(), false, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(string(data)), true, nil
}

// Parse reads "key = value" lines. Blank lines, # comments, unknown keys and
// invalid values are ignored. Unknown tokens inside a binding are skipped.
func Parse(content string) *Config {
	cfg := Default()
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case keyHotkey:
			if hk, err := model.ParseHotkeyLenient(value); err == nil {
				cfg.Hotkey = hk
			}
		}
	}
	return cfg
}

// String renders the file content Save writes.
func (c *Config) String() string {
	return fmt.Sprintf("%s = %s\n", keyHotkey, c.Hotkey)
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(c.String()), 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
