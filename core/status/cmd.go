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

	"github.com/nuts-foundation/eu-trustedlists/core"
	"github.com/spf13/cobra"
)

// Cmd returns the command that prints the diagnostics of all engines in the system.
func Cmd(system *core.System) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Shows the diagnostics of all engines.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := status{system: system}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), s.diagnosticsSummaryAsText())
			return err
		},
	}
}
