package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version information - injected at build time via ldflags
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = ""
)

// versionString renders the text printed by --version.
func versionString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dropdown-demo version %s", Version)
	if Build != "unknown" && Build != "" {
		fmt.Fprintf(&b, " (build: %s)", Build)
	}
	if BuildTime != "" {
		fmt.Fprintf(&b, " [%s]", BuildTime)
	}
	fmt.Fprintf(&b, "\nGo version: %s\nOS/Arch: %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" && len(setting.Value) > 7 {
					fmt.Fprintf(&b, "Commit: %s\n", setting.Value[:7])
					break
				}
			}
		}
	}
	return b.String()
}
