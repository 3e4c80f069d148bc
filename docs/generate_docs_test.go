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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_generateDocs(t *testing.T) {
	pagesDirectory := t.TempDir()

	err := generateDocs(pagesDirectory)

	require.NoError(t, err)
	t.Run("config options", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(pagesDirectory, "configuration", "options.rst"))
		require.NoError(t, err)
		options := string(data)
		assert.Contains(t, options, "verbosity")
		assert.Contains(t, options, "**LOTL**")
		assert.Contains(t, options, "lotl.verifyonstartup")
		assert.Less(t, strings.Index(options, "verbosity"), strings.Index(options, "**LOTL**"))
	})
	t.Run("CLI commands", func(t *testing.T) {
		index, err := os.ReadFile(filepath.Join(pagesDirectory, "cli", "index.rst"))
		require.NoError(t, err)
		assert.Contains(t, string(index), ".. include:: commands/eutl_lotl_certificates.rst")

		certificatesDoc, err := os.ReadFile(filepath.Join(pagesDirectory, "cli", "commands", "eutl_lotl_certificates.rst"))
		require.NoError(t, err)
		assert.Contains(t, string(certificatesDoc), "**Synopsis**")
		assert.Contains(t, string(certificatesDoc), "--format")
		assert.NotContains(t, string(certificatesDoc), "SEE ALSO")
	})
	t.Run("stale command docs are removed", func(t *testing.T) {
		stale := filepath.Join(pagesDirectory, "cli", "commands", "eutl_fetch.rst")
		require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

		require.NoError(t, generateDocs(pagesDirectory))

		assert.NoFileExists(t, stale)
	})
}

func Test_extractFlagsForEngine(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("verbosity", "info", "")
	flagSet.Bool("lotl.verifyonstartup", true, "")
	flagSet.Bool("lotlx.other", true, "")

	result := extractFlagsForEngine(flagSet, "lotl")

	assert.NotNil(t, result.Lookup("lotl.verifyonstartup"))
	assert.Nil(t, result.Lookup("lotlx.other"))
	assert.Nil(t, result.Lookup("verbosity"))
	assert.True(t, flagSet.Lookup("lotl.verifyonstartup").Hidden)
	assert.False(t, flagSet.Lookup("verbosity").Hidden)
}

func Test_rewriteCommandHelp(t *testing.T) {
	input := `.. _eutl_lotl:

eutl lotl
---------

Synopsis
~~~~~~~~

Trusted list commands

Options
~~~~~~~

::

  -h, --help   help for lotl

SEE ALSO
~~~~~~~~

* :ref:` + "`eutl <eutl>`" + `
`

	result := rewriteCommandHelp(input)

	assert.Contains(t, result, "**Synopsis**")
	assert.Contains(t, result, "**Options**")
	assert.NotContains(t, result, "SEE ALSO")
	assert.NotContains(t, result, ":ref:")
}
