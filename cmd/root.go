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

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/nuts-foundation/eu-trustedlists/core"
	"github.com/nuts-foundation/eu-trustedlists/core/status"
	"github.com/nuts-foundation/eu-trustedlists/lotl"
	lotlCmd "github.com/nuts-foundation/eu-trustedlists/lotl/cmd"
	"github.com/spf13/cobra"
)

var stdOutWriter io.Writer = os.Stdout

func createRootCommand(system *core.System) *cobra.Command {
	return &cobra.Command{
		Use:           "eutl",
		Short:         "Provides the location and trust anchors of the European Union List of Trusted Lists.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load all config and configure engines before running any command
			if err := system.Load(cmd.Flags()); err != nil {
				return err
			}
			return system.Configure()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}
}

func createPrintConfigCommand(system *core.System) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Prints the current config",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("Current system config")
			cmd.Println(system.Config.PrintConfig())
		},
	}
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(core.BuildInfo())
		},
	}
}

// CreateCommand creates the command with all subcommands to run the system.
func CreateCommand(system *core.System) *cobra.Command {
	command := createRootCommand(system)
	command.SetOut(stdOutWriter)
	addSubCommands(system, command)
	addFlagSets(command)
	return command
}

// CreateSystem creates the system and registers all default engines.
func CreateSystem() *core.System {
	system := core.NewSystem()
	system.RegisterEngine(status.NewStatusEngine(system))
	system.RegisterEngine(lotl.NewEngine())
	return system
}

// Execute runs the root command with the arguments from os.Args.
func Execute(ctx context.Context, system *core.System) error {
	command := CreateCommand(system)
	return command.ExecuteContext(ctx)
}

func addSubCommands(system *core.System, root *cobra.Command) {
	system.VisitEngines(func(engine core.Engine) {
		if instance, ok := engine.(*lotl.LOTL); ok {
			root.AddCommand(lotlCmd.Cmd(instance))
		}
	})
	root.AddCommand(status.Cmd(system))
	root.AddCommand(createPrintConfigCommand(system))
	root.AddCommand(createVersionCommand())
}

func addFlagSets(cmd *cobra.Command) {
	cmd.PersistentFlags().AddFlagSet(core.FlagSet())
	cmd.PersistentFlags().AddFlagSet(lotlCmd.FlagSet())
}
