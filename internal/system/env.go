package system

import (
	"context"
	"os"
	"strings"
)

// Environment describes the session the launcher runs in
type Environment struct {
	RootFSType     string // e.g. ext4, overlay
	CurrentDesktop string // XDG_CURRENT_DESKTOP
	SessionDesktop string // XDG_SESSION_DESKTOP
}

// rootFSCmd prints the filesystem type of /
const rootFSCmd = "df -T / |tail -n1 |awk '{print $2}'"

// liveFSTypes are the union filesystems a live medium boots into
var liveFSTypes = map[string]bool{
	"aufs":    true,
	"overlay": true,
}

// Probe inspects the current environment
func Probe(ctx context.Context, r Runner) Environment {
	fsType, _ := r.Output(ctx, rootFSCmd)
	// A failing df leaves its error text in the output
	if strings.ContainsAny(fsType, " \t\n") {
		fsType = ""
	}
	return Environment{
		RootFSType:     fsType,
		CurrentDesktop: os.Getenv("XDG_CURRENT_DESKTOP"),
		SessionDesktop: os.Getenv("XDG_SESSION_DESKTOP"),
	}
}

// Live reports whether the root filesystem is a live session union mount
func (e Environment) Live() bool {
	return liveFSTypes[e.RootFSType]
}
