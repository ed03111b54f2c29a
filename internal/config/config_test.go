package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"
)

func TestDefault(t *testing.T) {
	s := Default()

	if s.IconSize != DefaultIconSize {
		t.Errorf("Expected icon size %d, got %d", DefaultIconSize, s.IconSize)
	}
	if s.SearchDir != "/usr/share/applications" {
		t.Errorf("Expected default search dir, got %s", s.SearchDir)
	}
	if s.Terminal != "x-terminal-emulator" {
		t.Errorf("Expected default terminal, got %s", s.Terminal)
	}
	if !s.FirstRun {
		t.Error("FirstRun should be true by default")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if !filepath.IsAbs(dir) {
		t.Error("ConfigDir should return absolute path")
	}
	if filepath.Base(dir) != "mxtools" {
		t.Errorf("Expected config dir 'mxtools', got %s", filepath.Base(dir))
	}
	if filepath.Base(Path(dir)) != "settings.yaml" {
		t.Errorf("Expected settings file 'settings.yaml', got %s", filepath.Base(Path(dir)))
	}
}

func TestLoad_Missing(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !s.FirstRun {
		t.Error("Missing file should be reported as first run")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := Default()
	s.Geometry = []byte{0x01, 0xd9, 0xd0, 0xcb, 0x00}
	s.IconSize = 32
	s.Terminal = "xfce4-terminal"

	if err := s.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.FirstRun {
		t.Error("FirstRun should be false after save")
	}
	if !bytes.Equal(loaded.Geometry, s.Geometry) {
		t.Errorf("Expected geometry %v, got %v", s.Geometry, loaded.Geometry)
	}
	if loaded.IconSize != 32 || loaded.Terminal != "xfce4-terminal" {
		t.Errorf("Unexpected settings %+v", loaded)
	}
	if loaded.SearchDir != DefaultSearchDir {
		t.Errorf("Expected default search dir, got %s", loaded.SearchDir)
	}
}

func TestLoad_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(Path(dir), []byte("icon_size: 0\n"), 0644)

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.IconSize != DefaultIconSize || s.Terminal != DefaultTerminal {
		t.Errorf("Expected defaults to be filled, got %+v", s)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(Path(dir), []byte("icon_size: [\n"), 0644)

	if _, err := Load(dir); err == nil {
		t.Error("Expected error for malformed settings")
	}
}

func TestApplyEnv_DotEnv(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ".env"), []byte("MXTOOLS_SEARCH_DIR=/tmp/apps\nMXTOOLS_ICON_SIZE=64\n"), 0644)

	s := Default()
	if err := s.ApplyEnv(dir); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if s.SearchDir != "/tmp/apps" {
		t.Errorf("Expected /tmp/apps, got %s", s.SearchDir)
	}
	if s.IconSize != 64 {
		t.Errorf("Expected 64, got %d", s.IconSize)
	}
}

func TestApplyEnv_ProcessWins(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ".env"), []byte("MXTOOLS_TERMINAL=xterm\n"), 0644)
	t.Setenv(EnvTerminal, "kitty")

	s := Default()
	if err := s.ApplyEnv(dir); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if s.Terminal != "kitty" {
		t.Errorf("Expected kitty, got %s", s.Terminal)
	}
}

func TestApplyEnv_NoFile(t *testing.T) {
	s := Default()
	if err := s.ApplyEnv(t.TempDir()); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if s.SearchDir != DefaultSearchDir {
		t.Errorf("Expected default search dir, got %s", s.SearchDir)
	}
}

func TestApplyEnv_BadIconSize(t *testing.T) {
	t.Setenv(EnvIconSize, "huge")
	s := Default()
	err := s.ApplyEnv(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), EnvIconSize) {
		t.Errorf("Expected icon size error, got %v", err)
	}
}

func TestAcquireLock_Busy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.lock")
	held := flock.New(path)
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("Failed to take lock: %v", err)
	}
	defer held.Unlock()

	if _, err := acquireLock(path, 50*time.Millisecond); err == nil {
		t.Error("Expected lock timeout")
	}
}

func TestGeometry(t *testing.T) {
	s := Default()
	if _, _, ok := s.Size(); ok {
		t.Error("Default settings should have no geometry")
	}

	s.SetGeometry(132, 43)
	w, h, ok := s.Size()
	if !ok || w != 132 || h != 43 {
		t.Errorf("Expected 132x43, got %dx%d (%v)", w, h, ok)
	}

	s.Geometry = []byte{1, 2, 3}
	if _, _, ok := s.Size(); ok {
		t.Error("Foreign geometry blobs should be ignored")
	}
}
