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
	"errors"
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"
)

// ParsePublicURL parses a URL that must be reachable on the public internet, e.g. the location of a trusted list.
// The URL must be absolute, use one of the allowed schemes (any scheme if none are given) and have a host name
// that is neither an IP address nor reserved for testing or private use (RFC 2606, RFC 6761, RFC 6762).
func ParsePublicURL(input string, allowedSchemes ...string) (*url.URL, error) {
	if !strings.Contains(input, "://") {
		return nil, errors.New("URL missing scheme")
	}
	parsed, err := url.Parse(input)
	if err != nil {
		return nil, err
	}
	if len(allowedSchemes) > 0 && !slices.Contains(allowedSchemes, parsed.Scheme) {
		return nil, fmt.Errorf("scheme must be %s, got '%s'", strings.Join(allowedSchemes, " or "), parsed.Scheme)
	}
	if net.ParseIP(parsed.Hostname()) != nil {
		return nil, errors.New("host is an IP address")
	}
	if isReserved(parsed.Hostname()) {
		return nil, errors.New("host is reserved")
	}
	return parsed, nil
}

// isReserved reports whether the host is empty, or ends in a reserved top-level or second-level domain.
func isReserved(host string) bool {
	labels := strings.Split(strings.TrimSuffix(strings.ToLower(host), "."), ".")
	if slices.Contains(reservedTopLevelDomains, labels[len(labels)-1]) {
		return true
	}
	return len(labels) > 1 && slices.Contains(reservedDomains, strings.Join(labels[len(labels)-2:], "."))
}

var reservedTopLevelDomains = []string{
	"", // no domain specified
	"corp",
	"example",
	"home",
	"host",
	"invalid",
	"lan",
	"local",
	"localdomain",
	"localhost",
	"test",
}
var reservedDomains = []string{
	"example.com",
	"example.net",
	"example.org",
}
