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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nuts-foundation/eu-trustedlists/cmd"
	"github.com/nuts-foundation/eu-trustedlists/core"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"
)

const defaultPagesDirectory = "docs/pages"

func generateDocs(pagesDirectory string) error {
	system := cmd.CreateSystem()
	if err := generateConfigOptions(system, filepath.Join(pagesDirectory, "configuration", "options.rst")); err != nil {
		return err
	}
	return generateCLICommands(system, filepath.Join(pagesDirectory, "cli"))
}

func generateCLICommands(system *core.System, cliDirectory string) error {
	cmdsDirectory := filepath.Join(cliDirectory, "commands")
	// Clean up first, removed commands should not linger in the docs
	if err := os.RemoveAll(cmdsDirectory); err != nil {
		return err
	}
	if err := os.MkdirAll(cmdsDirectory, os.ModePerm); err != nil {
		return err
	}
	linkHandler := func(name, ref string) string {
		return fmt.Sprintf(":ref:`%s <%s>`", name, ref)
	}
	prepender := func(string) string { return "" }
	if err := doc.GenReSTTreeCustom(cmd.CreateCommand(system), cmdsDirectory, prepender, linkHandler); err != nil {
		return err
	}

	fileNames, err := listDirectory(cmdsDirectory)
	if err != nil {
		return err
	}
	index := strings.Builder{}
	index.WriteString(`.. _eutl-cli-command-reference:

EU Trusted Lists CLI Command Reference
**************************************

`)
	for _, fileName := range fileNames {
		index.WriteString(fmt.Sprintf(".. include:: commands/%s\n", fileName))
		index.WriteString("\n\n------------\n\n")

		absolutePath := filepath.Join(cmdsDirectory, fileName)
		cmdHelp, err := os.ReadFile(absolutePath)
		if err != nil {
			return err
		}
		if err := os.WriteFile(absolutePath, []byte(rewriteCommandHelp(string(cmdHelp))), 0644); err != nil {
			return err
		}
	}
	return os.WriteFile(filepath.Join(cliDirectory, "index.rst"), []byte(index.String()), 0644)
}

// rewriteCommandHelp strips the "SEE ALSO" section and turns subsections into bold captions,
// so the files can be included in a single page.
func rewriteCommandHelp(cmdHelp string) string {
	const sectionToRemove = `
Options inherited from parent commands
~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~

::
`
	cmdHelp = strings.ReplaceAll(cmdHelp, sectionToRemove, "")
	if seeAlsoIndex := strings.Index(cmdHelp, "SEE ALSO"); seeAlsoIndex >= 0 {
		cmdHelp = cmdHelp[:seeAlsoIndex]
	}
	cmdHelp = strings.TrimSpace(cmdHelp)
	cmdHelp = strings.ReplaceAll(cmdHelp, "Synopsis\n~~~~~~~~\n", "**Synopsis**")
	cmdHelp = strings.ReplaceAll(cmdHelp, "Options\n~~~~~~~\n", "**Options**")
	return cmdHelp
}

func generateConfigOptions(system *core.System, fileName string) error {
	flags := make(map[string]*pflag.FlagSet)
	globalFlags := cmd.CreateCommand(system).PersistentFlags()
	// Index the flags by engine, whatever remains is global
	system.VisitEngines(func(engine core.Engine) {
		if m, ok := engine.(core.Injectable); ok {
			flagsForEngine := extractFlagsForEngine(globalFlags, strings.ToLower(m.Name()))
			if flagsForEngine.HasAvailableFlags() {
				flags[m.Name()] = flagsForEngine
			}
		}
	})
	flags[""] = globalFlags

	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return err
	}
	optionsFile, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer optionsFile.Close()
	printRstTable(vals("Key", "Default", "Description"), partitionedConfigOptions(flags), optionsFile)
	return optionsFile.Sync()
}

// extractFlagsForEngine moves the flags under the engine's config key to a new flag set.
// The moved flags are hidden in the input flag set.
func extractFlagsForEngine(flagSet *pflag.FlagSet, configKey string) *pflag.FlagSet {
	result := pflag.NewFlagSet(configKey, pflag.ContinueOnError)
	flagSet.VisitAll(func(current *pflag.Flag) {
		if strings.HasPrefix(current.Name, configKey+".") {
			flagCopy := *current
			current.Hidden = true
			result.AddFlag(&flagCopy)
		}
	})
	return result
}

func partitionedConfigOptions(flags map[string]*pflag.FlagSet) [][]rstValue {
	sortedKeys := make([]string, 0, len(flags))
	for key := range flags {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Strings(sortedKeys)

	values := make([][]rstValue, 0)
	for _, key := range sortedKeys {
		if key != "" {
			values = append(values, []rstValue{{
				value: key,
				bold:  true,
			}})
		}
		values = append(values, flagsToSortedValues(flags[key])...)
	}
	return values
}

func flagsToSortedValues(flags *pflag.FlagSet) [][]rstValue {
	values := make([][]rstValue, 0)
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		values = append(values, vals(f.Name, f.DefValue, f.Usage))
	})
	// Global properties (the ones without dots) go on top
	sort.Slice(values, func(i, j int) bool {
		s1 := values[i][0].value
		s2 := values[j][0].value
		s1Nested := strings.Contains(s1, ".")
		s2Nested := strings.Contains(s2, ".")
		if s1Nested != s2Nested {
			return s2Nested
		}
		return s1 < s2
	})
	return values
}

func listDirectory(targetDirectory string) ([]string, error) {
	entries, err := os.ReadDir(targetDirectory)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
