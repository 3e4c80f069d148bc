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
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var yearRegex = regexp.MustCompilePOSIX("Copyright \\(C\\) ([0-9]{4})(\\.?) Nuts community")

func copyrightNotice(year int) string {
	return fmt.Sprintf(`/*
 * Copyright (C) %d Nuts community
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

`, year)
}

// fixCopyright adds the license notice to Go source files that lack one and updates the year of existing notices.
// Mocks, generated code and directories starting with an underscore are skipped.
func fixCopyright(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err != nil {
		return fmt.Errorf("incorrect directory: %w", err)
	}
	year := time.Now().Year()
	yearReplacement := fmt.Sprintf("Copyright (C) %d Nuts community", year)

	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != dir && strings.HasPrefix(entry.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(entry.Name(), ".go") || strings.Contains(entry.Name(), "mock") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		source := string(data)
		if strings.Contains(source, "DO NOT EDIT") {
			return nil
		}

		var fixed string
		if strings.Contains(source, "Copyright (C)") && strings.Contains(source, "Nuts community") {
			fixed = yearRegex.ReplaceAllString(source, yearReplacement)
			if fixed == source {
				return nil
			}
		} else {
			fixed = copyrightNotice(year) + source
		}
		println("Fixing copyright notice on", path)
		info, err := entry.Info()
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(fixed), info.Mode())
	})
}
