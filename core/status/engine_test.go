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

package status

import (
	"bytes"
	"testing"

	"github.com/nuts-foundation/eu-trustedlists/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusEngine_Diagnostics(t *testing.T) {
	system := core.NewSystem()
	system.RegisterEngine(NewStatusEngine(system))
	system.RegisterEngine(&core.TestEngine{})

	ds := NewStatusEngine(system).(*status).Diagnostics()

	require.Len(t, ds, 4)
	assert.Equal(t, "registered_engines", ds[0].Name())
	assert.Equal(t, "Status,testengine", ds[0].String())
	assert.Equal(t, "software_version", ds[1].Name())
	assert.Equal(t, core.Version(), ds[1].String())
	assert.Equal(t, "git_commit", ds[2].Name())
	assert.Equal(t, "os_arch", ds[3].Name())
	assert.Equal(t, core.OSArch(), ds[3].String())
}

func TestCmd(t *testing.T) {
	system := core.NewSystem()
	system.RegisterEngine(NewStatusEngine(system))
	buf := new(bytes.Buffer)
	cmd := Cmd(system)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Status\n")
	assert.Contains(t, buf.String(), "\tregistered_engines: Status\n")
	assert.Contains(t, buf.String(), "\tsoftware_version: "+core.Version())
}
