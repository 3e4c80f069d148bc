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

// Package lotl holds the location of the European Union List of Trusted Lists (LOTL) and the trust anchors
// used to verify its signature, as published in the Official Journal of the European Union.
package lotl

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/nuts-foundation/eu-trustedlists/core"
)

const (
	// TrustedListURL is the location of the European Union List of Trusted Lists.
	TrustedListURL = "https://ec.europa.eu/tools/lotl/eu-lotl.xml"
	// CurrentlySupportedPublication is the Official Journal publication the trust anchors were taken from.
	CurrentlySupportedPublication = "https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=uriserv:OJ.C_.2019.276.01.0001.01.ENG"
)

// ErrInvalidConfiguration is returned when the built-in configuration is broken. It is not recoverable.
var ErrInvalidConfiguration = errors.New("invalid trusted list configuration")

// Configuration provides the location of the European Union List of Trusted Lists (LOTL)
// and the certificates that may be used to sign it. It is immutable and safe for concurrent use.
type Configuration struct {
	trustedListURL *url.URL
	publication    string
	certificates   []CertificateWithHash

	trustStoreOnce sync.Once
	trustStore     *core.TrustStore
	trustStoreErr  error
}

// New creates the Configuration from the built-in values.
// It returns an error wrapping ErrInvalidConfiguration if the trusted list URL or the embedded certificates are malformed,
// and ErrTrustAnchorsUnavailable if the certificates of the supported publication are not embedded.
func New() (*Configuration, error) {
	certificates, err := publication2019C276()
	if err != nil {
		return nil, err
	}
	return newConfiguration(TrustedListURL, CurrentlySupportedPublication, certificates)
}

// MustNew is like New, but panics if the configuration is invalid.
func MustNew() *Configuration {
	configuration, err := New()
	if err != nil {
		panic(err)
	}
	return configuration
}

func newConfiguration(rawURL string, publication string, certificates []CertificateWithHash) (*Configuration, error) {
	parsedURL, err := core.ParsePublicURL(rawURL, "https")
	if err != nil {
		return nil, core.WrapError(ErrInvalidConfiguration, fmt.Errorf("trusted list URL (url=%s): %w", rawURL, err))
	}
	return &Configuration{
		trustedListURL: parsedURL,
		publication:    publication,
		certificates:   slices.Clone(certificates),
	}, nil
}

// TrustedListURI returns the URL of the List of Trusted Lists.
func (c *Configuration) TrustedListURI() *url.URL {
	result := *c.trustedListURL
	return &result
}

// CurrentlySupportedPublication returns the URL of the Official Journal publication the certificates were taken from.
func (c *Configuration) CurrentlySupportedPublication() string {
	return c.publication
}

// Certificates returns the certificates that may sign the List of Trusted Lists, in a stable order.
// Every call returns a new slice.
func (c *Configuration) Certificates() []CertificateWithHash {
	return slices.Clone(c.certificates)
}

// Verify checks the hash of every certificate. All failures are returned, joined.
func (c *Configuration) Verify() error {
	var errs []error
	for i, certificate := range c.certificates {
		if err := certificate.Verify(); err != nil {
			errs = append(errs, fmt.Errorf("certificate %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// PEMBundle returns all certificates as a single PEM bundle.
func (c *Configuration) PEMBundle() []byte {
	var b strings.Builder
	for _, certificate := range c.certificates {
		b.WriteString(strings.TrimSpace(certificate.PEMCertificate()))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// TrustStore returns the certificates as a core.TrustStore. It is parsed on first use and shared between callers,
// which can't alter it.
func (c *Configuration) TrustStore() (*core.TrustStore, error) {
	c.trustStoreOnce.Do(func() {
		c.trustStore, c.trustStoreErr = core.ParseTrustStore(c.PEMBundle())
	})
	return c.trustStore, c.trustStoreErr
}

// CertPool returns a new x509.CertPool containing the certificates.
func (c *Configuration) CertPool() (*x509.CertPool, error) {
	store, err := c.TrustStore()
	if err != nil {
		return nil, err
	}
	return store.CertPool(), nil
}

// Match returns the trust anchor for the given certificate, if it is one.
func (c *Configuration) Match(certificate *x509.Certificate) (CertificateWithHash, bool) {
	if certificate == nil {
		return CertificateWithHash{}, false
	}
	return c.MatchHash(ComputeHash(certificate.Raw))
}

// MatchHash returns the trust anchor with the given base64 encoded SHA-256 hash.
func (c *Configuration) MatchHash(hash string) (CertificateWithHash, bool) {
	for _, certificate := range c.certificates {
		if certificate.Hash() == hash {
			return certificate, true
		}
	}
	return CertificateWithHash{}, false
}
