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
	"fmt"
	"strings"

	"github.com/nuts-foundation/eu-trustedlists/core"
)

const moduleName = "Status"

type status struct {
	system *core.System
}

// NewStatusEngine creates a new Engine for viewing all engines
func NewStatusEngine(system *core.System) core.Engine {
	return &status{
		system: system,
	}
}

func (s *status) Name() string {
	return moduleName
}

// diagnosticsSummaryAsText lists the diagnostics of every engine, grouped by engine name.
func (s *status) diagnosticsSummaryAsText() string {
	var lines []string
	s.system.VisitEngines(func(engine core.Engine) {
		if m, ok := engine.(core.ViewableDiagnostics); ok {
			lines = append(lines, m.Name())
			diagnostics := m.Diagnostics()
			for _, d := range diagnostics {
				lines = append(lines, fmt.Sprintf("\t%s: %s", d.Name(), d.String()))
			}
		}
	})
	return strings.Join(lines, "\n")
}

// Diagnostics returns list of DiagnosticResult for the StatusEngine.
// The results are a list of all registered engines
func (s *status) Diagnostics() []core.DiagnosticResult {
	return []core.DiagnosticResult{
		core.GenericDiagnosticResult{Title: "registered_engines", Outcome: strings.Join(s.listAllEngines(), ",")},
		core.GenericDiagnosticResult{Title: "software_version", Outcome: core.Version()},
		core.GenericDiagnosticResult{Title: "git_commit", Outcome: core.GitCommit},
		core.GenericDiagnosticResult{Title: "os_arch", Outcome: core.OSArch()},
	}
}

func (s *status) listAllEngines() []string {
	var names []string
	s.system.VisitEngines(func(engine core.Engine) {
		if m, ok := engine.(core.Named); ok {
			names = append(names, m.Name())
		}
	})
	return names
}
