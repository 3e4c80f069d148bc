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
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/nuts-foundation/eu-trustedlists/core"
)

// TestCertificates creates the given number of self-signed certificates with their hashes.
// The private keys are discarded, so nothing can be signed with them.
func TestCertificates(t testing.TB, count int) []CertificateWithHash {
	result := make([]CertificateWithHash, 0, count)
	for i := 1; i <= count; i++ {
		key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		template := &x509.Certificate{
			SerialNumber:          big.NewInt(int64(i)),
			Subject:               pkix.Name{CommonName: fmt.Sprintf("Test trust anchor %d", i), Country: []string{"EU"}},
			NotBefore:             time.Now().Add(-time.Hour),
			NotAfter:              time.Now().Add(24 * time.Hour),
			IsCA:                  true,
			BasicConstraintsValid: true,
			KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		}
		der, err := x509.CreateCertificate(rand.Reader, template, template, key.Public(), key)
		if err != nil {
			t.Fatal(err)
		}
		pemCertificate := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
		result = append(result, NewCertificateWithHash(string(pemCertificate), ComputeHash(der)))
	}
	return result
}

// NewTestEngine creates a LOTL engine that presents the given certificates instead of the embedded ones.
func NewTestEngine(_ testing.TB, certificates []CertificateWithHash) *LOTL {
	engine := NewEngine()
	engine.newConfiguration = func() (*Configuration, error) {
		return newConfiguration(TrustedListURL, CurrentlySupportedPublication, certificates)
	}
	return engine
}

// NewUnavailableTestEngine creates a LOTL engine that behaves as if the certificates of the supported publication
// are not embedded.
func NewUnavailableTestEngine(_ testing.TB) *LOTL {
	engine := NewEngine()
	engine.newConfiguration = func() (*Configuration, error) {
		return nil, core.WrapError(ErrTrustAnchorsUnavailable, errors.New("manifest not found (file=test)"))
	}
	return engine
}
