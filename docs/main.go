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
)

func main() {
	if len(os.Args) != 2 {
		panic(fmt.Sprintf("Missing/too many args: %v", os.Args))
	}

	var err error
	switch param := os.Args[1]; param {
	case "docs":
		err = generateDocs(defaultPagesDirectory)
	case "copyright":
		err = fixCopyright("./")
	default:
		err = fmt.Errorf("unknown command %s", param)
	}
	if err != nil {
		panic(err)
	}
}
