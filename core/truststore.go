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
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// ParseCertificates parses all PEM encoded certificates in the given data. Non-certificate PEM blocks are skipped.
func ParseCertificates(data []byte) (certificates []*x509.Certificate, _ error) {
	for len(data) > 0 {
		var block *pem.Block

		block, data = pem.Decode(data)
		if block == nil {
			if len(bytes.TrimSpace(data)) == 0 {
				break
			}
			return nil, fmt.Errorf("unable to decode PEM encoded data")
		}

		if block.Type != "CERTIFICATE" {
			continue
		}

		certificate, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("unable to parse certificate: %w", err)
		}

		certificates = append(certificates, certificate)
	}

	return
}

// TrustStore is a set of trusted certificates, also available as x509.CertPool. It can't be altered after parsing.
type TrustStore struct {
	certPool     *x509.CertPool
	certificates []*x509.Certificate
}

// CertPool returns a new x509.CertPool with the certificates of the trust store.
func (store *TrustStore) CertPool() *x509.CertPool {
	return store.certPool.Clone()
}

// Certificates returns a copy of the certificates in the trust store.
func (store *TrustStore) Certificates() []*x509.Certificate {
	return append([]*x509.Certificate{}, store.certificates...)
}

// ParseTrustStore creates a TrustStore from PEM encoded certificates.
func ParseTrustStore(data []byte) (*TrustStore, error) {
	certificates, err := ParseCertificates(data)
	if err != nil {
		return nil, err
	}
	if len(certificates) == 0 {
		return nil, errors.New("trust store contains no certificates")
	}

	certPool := x509.NewCertPool()
	for _, certificate := range certificates {
		certPool.AddCert(certificate)
	}

	return &TrustStore{
		certPool:     certPool,
		certificates: certificates,
	}, nil
}
