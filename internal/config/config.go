// Package config persists user settings between runs.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// appName names the config directory under ~/.config
	appName = "mxtools"

	// settingsFileName is the name of the settings file
	settingsFileName = "settings.yaml"

	// DefaultIconSize selects the hicolor size directory probed for icons
	DefaultIconSize = 48

	// DefaultSearchDir holds the descriptor files
	DefaultSearchDir = "/usr/share/applications"

	// DefaultTerminal wraps commands that need a terminal
	DefaultTerminal = "x-terminal-emulator"

	lockTimeout = 2 * time.Second
)

// Environment variables that override saved settings
const (
	EnvSearchDir = "MXTOOLS_SEARCH_DIR"
	EnvTerminal  = "MXTOOLS_TERMINAL"
	EnvIconSize  = "MXTOOLS_ICON_SIZE"
)

// Settings holds the persisted user settings
type Settings struct {
	Geometry  []byte `yaml:"geometry,omitempty"` // Opaque window geometry blob
	IconSize  int    `yaml:"icon_size"`
	SearchDir string `yaml:"search_dir"`
	Terminal  string `yaml:"terminal"`
	FirstRun  bool   `yaml:"-"` // No settings file was found
}

// Default returns the default settings
func Default() *Settings {
	return &Settings{
		IconSize:  DefaultIconSize,
		SearchDir: DefaultSearchDir,
		Terminal:  DefaultTerminal,
		FirstRun:  true,
	}
}

// ConfigDir returns the directory containing mxtools config files
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", appName)
}

// Path returns the settings file path inside dir
func Path(dir string) string {
	return filepath.Join(dir, settingsFileName)
}

// Load reads the settings file in dir. A missing file yields defaults with
// FirstRun set; zero fields are filled from defaults.
func Load(dir string) (*Settings, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	s.FirstRun = false
	s.fillDefaults()
	return s, nil
}

func (s *Settings) fillDefaults() {
	if s.IconSize <= 0 {
		s.IconSize = DefaultIconSize
	}
	if s.SearchDir == "" {
		s.SearchDir = DefaultSearchDir
	}
	if s.Terminal == "" {
		s.Terminal = DefaultTerminal
	}
}

// ApplyEnv overrides settings from dir/.env and the process environment.
// Process variables win over the .env file.
func (s *Settings) ApplyEnv(dir string) error {
	vars, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read .env: %w", err)
	}
	if vars == nil {
		vars = map[string]string{}
	}
	for _, key := range []string{EnvSearchDir, EnvTerminal, EnvIconSize} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	if v := vars[EnvSearchDir]; v != "" {
		s.SearchDir = v
	}
	if v := vars[EnvTerminal]; v != "" {
		s.Terminal = v
	}
	if v := vars[EnvIconSize]; v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid %s %q", EnvIconSize, v)
		}
		s.IconSize = size
	}
	return nil
}

// Save writes the settings to dir while holding dir/settings.lock
func (s *Settings) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	unlock, err := acquireLock(filepath.Join(dir, "settings.lock"), lockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp := Path(dir) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, Path(dir)); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}

// SetGeometry stores the window size as an opaque blob
func (s *Settings) SetGeometry(width, height int) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], uint32(width))
	binary.BigEndian.PutUint32(buf[4:8], uint32(height))
	s.Geometry = buf
}

// Size decodes the stored window size
func (s *Settings) Size() (width, height int, ok bool) {
	if len(s.Geometry) != 8 {
		return 0, 0, false
	}
	width = int(binary.BigEndian.Uint32(s.Geometry[0:4]))
	height = int(binary.BigEndian.Uint32(s.Geometry[4:8]))
	return width, height, width > 0 && height > 0
}

// acquireLock polls for an exclusive lock until timeout
func acquireLock(path string, timeout time.Duration) (func(), error) {
	l := flock.New(path)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire settings lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("settings are locked by another process (lock: %s)", path)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
