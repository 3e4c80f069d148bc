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

package lotl

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/nuts-foundation/eu-trustedlists/core"
)

// ErrTrustAnchorsUnavailable is returned when the certificates of the supported publication are not embedded.
var ErrTrustAnchorsUnavailable = errors.New("trust anchors of the supported publication are not available")

// Certificates published in the Official Journal of the European Union, C 276, 16.8.2019, p. 1,
// which may be used to sign the List of Trusted Lists. See certificates/README.md for the layout.
//
//go:embed certificates
var certificatesFS embed.FS

const (
	publication2019C276Manifest = "certificates/oj_c_276_2019.sha256"
	publication2019C276Size     = 8
)

var publication2019C276 = sync.OnceValues(func() ([]CertificateWithHash, error) {
	return loadPublication(certificatesFS, publication2019C276Manifest, publication2019C276Size)
})

// loadPublication reads the certificates listed in the manifest, in manifest order.
// Each manifest line holds the base64 encoded SHA-256 hash and the file name of a certificate, relative to the manifest.
func loadPublication(fsys fs.FS, manifest string, size int) ([]CertificateWithHash, error) {
	data, err := fs.ReadFile(fsys, manifest)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, core.WrapError(ErrTrustAnchorsUnavailable, fmt.Errorf("manifest not found (file=%s): %w", manifest, err))
	}
	if err != nil {
		return nil, err
	}

	var result []CertificateWithHash
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, invalidManifest(manifest, fmt.Errorf("line %d: expected '<hash> <file>'", lineNumber))
		}
		pemCertificate, err := fs.ReadFile(fsys, path.Join(path.Dir(manifest), fields[1]))
		if err != nil {
			return nil, invalidManifest(manifest, fmt.Errorf("line %d: %w", lineNumber, err))
		}
		result = append(result, NewCertificateWithHash(string(pemCertificate), fields[0]))
	}
	if err := scanner.Err(); err != nil {
		return nil, invalidManifest(manifest, err)
	}
	if len(result) != size {
		return nil, invalidManifest(manifest, fmt.Errorf("expected %d certificates, found %d", size, len(result)))
	}
	return result, nil
}

func invalidManifest(manifest string, err error) error {
	return core.WrapError(ErrInvalidConfiguration, fmt.Errorf("trust anchor manifest (file=%s): %w", manifest, err))
}
