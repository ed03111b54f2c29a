// Package terminal finds a terminal emulator to wrap commands that declare
// Terminal=true.
package terminal

import (
	"fmt"
	"os/exec"
)

// Default is the Debian alternatives entry, tried before anything else
const Default = "x-terminal-emulator"

// Terminal is an emulator and the flag that makes it run a command
type Terminal struct {
	Name     string
	ExecFlag string
}

// Wrap returns the shell command running command inside the terminal
func (t Terminal) Wrap(command string) string {
	return fmt.Sprintf("%s %s %s", t.Name, t.ExecFlag, command)
}

// known lists supported emulators in fallback order
var known = []Terminal{
	{Name: "xfce4-terminal", ExecFlag: "-x"},
	{Name: "lxterminal", ExecFlag: "-e"},
	{Name: "mate-terminal", ExecFlag: "-x"},
	{Name: "xterm", ExecFlag: "-e"},
	{Name: "uxterm", ExecFlag: "-e"},
	{Name: "urxvt", ExecFlag: "-e"},
	{Name: "konsole", ExecFlag: "-e"},
	{Name: "terminator", ExecFlag: "-x"},
	{Name: "gnome-terminal", ExecFlag: "--"},
	{Name: "ptyxis", ExecFlag: "--"},
	{Name: "tilix", ExecFlag: "-e"},
	{Name: "qterminal", ExecFlag: "-e"},
	{Name: "alacritty", ExecFlag: "-e"},
	{Name: "kitty", ExecFlag: "--"},
}

// LookPathFunc reports the location of a command, like exec.LookPath
type LookPathFunc func(string) (string, error)

// Lookup returns the known terminal called name. Unknown names get -e.
func Lookup(name string) Terminal {
	if name == Default {
		return Terminal{Name: Default, ExecFlag: "-e"}
	}
	for _, t := range known {
		if t.Name == name {
			return t
		}
	}
	return Terminal{Name: name, ExecFlag: "-e"}
}

// Detect picks a terminal. A preferred name other than "" or "auto" is
// used if installed; otherwise x-terminal-emulator, then the known list.
func Detect(preferred string, lookPath LookPathFunc) (Terminal, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	if preferred != "" && preferred != "auto" {
		if _, err := lookPath(preferred); err == nil {
			return Lookup(preferred), nil
		}
	}

	if _, err := lookPath(Default); err == nil {
		return Lookup(Default), nil
	}

	for _, t := range known {
		if _, err := lookPath(t.Name); err == nil {
			return t, nil
		}
	}

	return Lookup(Default), fmt.Errorf("no supported terminal found")
}

