package launch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"mxtools/internal/logging"
	"mxtools/internal/models"
	"mxtools/internal/system/systemtest"
	"mxtools/internal/terminal"
)

func TestCommandLine(t *testing.T) {
	l := New(systemtest.NewRunner(), terminal.Terminal{}, nil)

	plain := models.Record{Exec: "mx-boot-options"}
	if got := l.CommandLine(plain); got != "mx-boot-options" {
		t.Errorf("Expected bare exec, got %q", got)
	}

	term := models.Record{Exec: "sudo apt update", Terminal: true}
	if got := l.CommandLine(term); got != "x-terminal-emulator -e sudo apt update" {
		t.Errorf("Expected terminal wrapped exec, got %q", got)
	}
}

func TestCommandLine_CustomTerminal(t *testing.T) {
	l := New(systemtest.NewRunner(), terminal.Lookup("xfce4-terminal"), nil)
	got := l.CommandLine(models.Record{Exec: "htop", Terminal: true})
	if got != "xfce4-terminal -x htop" {
		t.Errorf("Unexpected command %q", got)
	}
}

func TestRun_UsesRunner(t *testing.T) {
	runner := systemtest.NewRunner()
	l := New(runner, terminal.Terminal{}, nil)

	l.Run(context.Background(), models.Record{Name: "Conky", Exec: "conky-manager"})
	if len(runner.Calls) != 1 || runner.Calls[0] != "conky-manager" {
		t.Errorf("Expected single runner call, got %v", runner.Calls)
	}
}

func TestRun_FailureOnlyLogged(t *testing.T) {
	var buf bytes.Buffer
	runner := systemtest.NewRunner()
	runner.RunFunc = func(context.Context, string) error {
		return errors.New("boom")
	}
	l := New(runner, terminal.Terminal{}, logging.New(&buf, true))

	l.Run(context.Background(), models.Record{Name: "Broken", Exec: "false"})
	if !strings.Contains(buf.String(), "command failed") {
		t.Errorf("Expected failure at debug level, got %q", buf.String())
	}
}

func TestExec_ReturnsCommand(t *testing.T) {
	l := New(systemtest.NewRunner(), terminal.Terminal{}, nil)
	if cmd := l.Exec(models.Record{Exec: "true"}); cmd == nil {
		t.Error("Expected a tea command")
	}
}
