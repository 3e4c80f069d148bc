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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewSystem(t *testing.T) {
	system := NewSystem()
	assert.NotNil(t, system)
	assert.NotNil(t, system.Config)
	assert.Empty(t, system.engines)
}

func TestSystem_Configure(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := NewMockConfigurable(ctrl)
		r.EXPECT().Configure(gomock.Any())
		engine := &TestEngine{}

		system := NewSystem()
		system.RegisterEngine(engine)
		system.RegisterEngine(r)

		assert.NoError(t, system.Configure())
		assert.True(t, engine.configured)
	})
	t.Run("error - stops at first failing engine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := NewMockConfigurable(ctrl)

		system := NewSystem()
		system.RegisterEngine(&TestEngine{ConfigureError: true})
		system.RegisterEngine(r)

		assert.EqualError(t, system.Configure(), "failure")
	})
}

func TestSystem_Diagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewMockDiagnosable(ctrl)
	r.EXPECT().Diagnostics().Return([]DiagnosticResult{GenericDiagnosticResult{Title: "Anchors", Outcome: 8}})

	system := NewSystem()
	system.RegisterEngine(&TestEngine{})
	system.RegisterEngine(r)

	results := system.Diagnostics()

	require.Len(t, results, 1)
	assert.Equal(t, "Anchors", results[0].Name())
	assert.Equal(t, "8", results[0].String())
}

func TestSystem_Load(t *testing.T) {
	defer resetLogging()
	engine := &TestEngine{TestConfig: testDefaultConfig()}
	system := NewSystem()
	system.RegisterEngine(engine)

	err := system.Load(testFlags(t, "--testengine.key", "value"))

	require.NoError(t, err)
	assert.Equal(t, "value", engine.TestConfig.Key)
	assert.Equal(t, []string{"default", "default"}, engine.TestConfig.List)
}

func TestSystem_VisitEnginesE(t *testing.T) {
	system := NewSystem()
	system.RegisterEngine(&TestEngine{})
	system.RegisterEngine(&TestEngine{})

	visited := 0
	err := system.VisitEnginesE(func(engine Engine) error {
		visited++
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, visited)
}
