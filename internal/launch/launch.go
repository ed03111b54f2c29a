// Package launch runs the command behind a tool button.
package launch

import (
	"context"
	"errors"
	"os/exec"

	"charm.land/log/v2"
	tea "github.com/charmbracelet/bubbletea"

	"mxtools/internal/logging"
	"mxtools/internal/models"
	"mxtools/internal/system"
	"mxtools/internal/terminal"
)

// FinishedMsg is sent to the UI when a launched command exits
type FinishedMsg struct {
	Record models.Record
	Err    error
}

// Launcher turns records into command lines and runs them
type Launcher struct {
	runner   system.Runner
	terminal terminal.Terminal
	logger   *log.Logger
}

// New creates a launcher. A nil runner uses the system shell.
func New(runner system.Runner, term terminal.Terminal, logger *log.Logger) *Launcher {
	if runner == nil {
		runner = system.NewShellRunner()
	}
	if term.Name == "" {
		term = terminal.Lookup(terminal.Default)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Launcher{runner: runner, terminal: term, logger: logger}
}

// CommandLine returns the shell command for rec
func (l *Launcher) CommandLine(rec models.Record) string {
	if rec.Terminal {
		return l.terminal.Wrap(rec.Exec)
	}
	return rec.Exec
}

// Run executes rec with the caller's stdio and waits for it. The exit
// status is only logged.
func (l *Launcher) Run(ctx context.Context, rec models.Record) {
	cmd := l.CommandLine(rec)
	l.logger.Debug("launching", "name", rec.Name, "cmd", cmd)
	l.logStatus(rec, l.runner.Run(ctx, cmd))
}

// Exec returns a command that releases the terminal, runs rec and
// restores the UI once it exits
func (l *Launcher) Exec(rec models.Record) tea.Cmd {
	cmd := l.CommandLine(rec)
	l.logger.Debug("launching", "name", rec.Name, "cmd", cmd)
	return tea.ExecProcess(system.Command(context.Background(), cmd), func(err error) tea.Msg {
		l.logStatus(rec, err)
		return FinishedMsg{Record: rec, Err: err}
	})
}

func (l *Launcher) logStatus(rec models.Record, err error) {
	if err == nil {
		l.logger.Debug("command finished", "name", rec.Name)
		return
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		l.logger.Debug("command exited", "name", rec.Name, "status", exitErr.ExitCode())
		return
	}
	l.logger.Debug("command failed", "name", rec.Name, "err", err)
}
