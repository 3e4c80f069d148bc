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
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/nuts-foundation/eu-trustedlists/core"
)

// ErrHashMismatch is returned when the hash of a trust anchor does not match its certificate.
var ErrHashMismatch = errors.New("certificate hash mismatch")

// CertificateWithHash is a PEM encoded certificate along with the base64 encoded SHA-256 hash of the certificate.
// The hash is computed over the DER encoding of the certificate, so it does not depend on the PEM line layout.
type CertificateWithHash struct {
	pemCertificate string
	hash           string
}

// NewCertificateWithHash creates a new CertificateWithHash. Neither the PEM nor the hash is validated, use Verify for that.
func NewCertificateWithHash(pemCertificate string, hash string) CertificateWithHash {
	return CertificateWithHash{
		pemCertificate: pemCertificate,
		hash:           hash,
	}
}

// PEMCertificate returns the PEM formatted certificate.
func (c CertificateWithHash) PEMCertificate() string {
	return c.pemCertificate
}

// Hash returns the base64 encoded SHA-256 hash of the certificate.
func (c CertificateWithHash) Hash() string {
	return c.hash
}

// Certificate decodes and parses the PEM certificate. It fails if the PEM does not contain exactly one certificate.
func (c CertificateWithHash) Certificate() (*x509.Certificate, error) {
	certificates, err := core.ParseCertificates([]byte(c.pemCertificate))
	if err != nil {
		return nil, err
	}
	if len(certificates) != 1 {
		return nil, fmt.Errorf("expected exactly 1 certificate, found %d", len(certificates))
	}
	return certificates[0], nil
}

// Verify checks whether the hash matches the certificate.
func (c CertificateWithHash) Verify() error {
	certificate, err := c.Certificate()
	if err != nil {
		return err
	}
	if computed := ComputeHash(certificate.Raw); computed != c.hash {
		return core.WrapError(ErrHashMismatch, fmt.Errorf("expected %s, computed %s", c.hash, computed))
	}
	return nil
}

// ComputeHash returns the base64 encoded SHA-256 digest of a DER encoded certificate, in the form used by CertificateWithHash.
func ComputeHash(der []byte) string {
	digest := sha256.Sum256(der)
	return base64.StdEncoding.EncodeToString(digest[:])
}
