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
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	t.Run("git tag", func(t *testing.T) {
		defer func(old string) { GitVersion = old }(GitVersion)
		GitVersion = "v1.2.3"

		assert.Equal(t, "v1.2.3", Version())
	})
	t.Run("undefined git tag falls back", func(t *testing.T) {
		defer func(old string) { GitVersion = old }(GitVersion)
		GitVersion = "undefined"

		assert.NotEqual(t, "undefined", Version())
		assert.NotEmpty(t, Version())
	})
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()

	lines := strings.Split(strings.TrimSuffix(info, "\n"), "\n")
	assert.Equal(t, []string{
		"Version: " + Version(),
		"Git commit: " + GitCommit,
		"Go version: " + runtime.Version(),
		"OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH,
	}, lines)
}
