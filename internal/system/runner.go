// Package system wraps the shell and filesystem behind small interfaces so
// the indexer and the icon resolver can be driven by fakes in tests.
package system

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"
)

// Shell is the interpreter used for every command
const Shell = "/bin/sh"

// Runner runs shell command lines
type Runner interface {
	// Output runs cmd, waits for it and returns trimmed combined output
	Output(ctx context.Context, cmd string) (string, error)

	// Run runs cmd with the caller's stdio and waits for it to exit
	Run(ctx context.Context, cmd string) error
}

// FileSystem is the read side of the filesystem used by the scanners
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
}

// Exists reports whether name can be stat'ed
func Exists(fsys FileSystem, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// OSFileSystem reads the real filesystem
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// ShellRunner runs commands through /bin/sh -c
type ShellRunner struct{}

// NewShellRunner creates a runner backed by the system shell
func NewShellRunner() *ShellRunner {
	return &ShellRunner{}
}

// Command builds the exec.Cmd for a command line without starting it
func Command(ctx context.Context, cmd string) *exec.Cmd {
	return exec.CommandContext(ctx, Shell, "-c", cmd)
}

func (r *ShellRunner) Output(ctx context.Context, cmd string) (string, error) {
	var buf bytes.Buffer
	c := Command(ctx, cmd)
	c.Stdout = &buf
	c.Stderr = &buf
	err := c.Run()
	out := strings.TrimSpace(buf.String())
	// Pipelines such as "grep | sort" report failure when nothing matched;
	// callers only care about the output.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, nil
	}
	return out, err
}

func (r *ShellRunner) Run(ctx context.Context, cmd string) error {
	c := Command(ctx, cmd)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// Lines splits command output into non-empty lines
func Lines(out string) []string {
	if strings.TrimSpace(out) == "" {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Quote wraps s in single quotes for the shell
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
