// Package systemtest provides in-memory Runner and FileSystem fakes.
package systemtest

import (
	"context"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"
)

// Runner answers commands from a table and records every call
type Runner struct {
	mu      sync.Mutex
	Outputs map[string]string                // Exact command -> output
	Handler func(cmd string) (string, error) // Used when Outputs has no entry
	RunFunc func(ctx context.Context, cmd string) error
	Calls   []string
}

// NewRunner creates a fake runner with no canned outputs
func NewRunner() *Runner {
	return &Runner{Outputs: map[string]string{}}
}

func (r *Runner) record(cmd string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, cmd)
}

func (r *Runner) Output(_ context.Context, cmd string) (string, error) {
	r.record(cmd)
	if out, ok := r.Outputs[cmd]; ok {
		return out, nil
	}
	if r.Handler != nil {
		return r.Handler(cmd)
	}
	return "", nil
}

func (r *Runner) Run(ctx context.Context, cmd string) error {
	r.record(cmd)
	if r.RunFunc != nil {
		return r.RunFunc(ctx, cmd)
	}
	return nil
}

// Called reports whether any recorded command contains substr
func (r *Runner) Called(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Calls {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

// FS is an in-memory filesystem keyed by absolute path
type FS struct {
	Files map[string]string
	Dirs  map[string]bool
}

// NewFS creates an empty fake filesystem
func NewFS() *FS {
	return &FS{Files: map[string]string{}, Dirs: map[string]bool{}}
}

// AddFile stores content at name and registers its parent directories
func (f *FS) AddFile(name, content string) {
	f.Files[name] = content
	for dir := path.Dir(name); dir != "/" && dir != "."; dir = path.Dir(dir) {
		f.Dirs[dir] = true
	}
}

// AddDir registers an empty directory
func (f *FS) AddDir(name string) {
	f.Dirs[strings.TrimSuffix(name, "/")] = true
}

func (f *FS) ReadFile(name string) ([]byte, error) {
	content, ok := f.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

func (f *FS) Stat(name string) (fs.FileInfo, error) {
	if content, ok := f.Files[name]; ok {
		return fileInfo{name: path.Base(name), size: int64(len(content))}, nil
	}
	if f.Dirs[strings.TrimSuffix(name, "/")] {
		return fileInfo{name: path.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

type fileInfo struct {
	name string
	size int64
	dir  bool
}

func (i fileInfo) Name() string       { return i.name }
func (i fileInfo) Size() int64        { return i.size }
func (i fileInfo) ModTime() time.Time { return time.Time{} }
func (i fileInfo) IsDir() bool        { return i.dir }
func (i fileInfo) Sys() any           { return nil }

func (i fileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
