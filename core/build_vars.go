/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// GitCommit holds the latest git commit hash for this build, set with -ldflags.
var GitCommit string

// GitVersion holds the tagged version belonging to the git commit, set with -ldflags.
var GitVersion string

// GitBranch holds the branch from where the binary is built, set with -ldflags.
var GitBranch = "development"

// Version returns the git tag of the build. Binaries built with go install don't have one,
// for those the module version is used. Otherwise it falls back to the branch.
func Version() string {
	if GitVersion != "" && GitVersion != "undefined" {
		return GitVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return GitBranch
}

// OSArch returns the OS and architecture the binary was built for, e.g. linux/amd64.
func OSArch() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}

// BuildInfo returns the version, commit, Go version and platform of the binary, one per line.
func BuildInfo() string {
	b := strings.Builder{}
	_, _ = fmt.Fprintf(&b, "Version: %s\n", Version())
	_, _ = fmt.Fprintf(&b, "Git commit: %s\n", GitCommit)
	_, _ = fmt.Fprintf(&b, "Go version: %s\n", runtime.Version())
	_, _ = fmt.Fprintf(&b, "OS/Arch: %s\n", OSArch())
	return b.String()
}
