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
	"encoding/base64"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/cert"
	"github.com/lestrrat-go/jwx/v2/jwk"
)

// JWKSet converts the given certificates to a JWK set. Every key contains the certificate's public key,
// the certificate itself (x5c) and its SHA-256 thumbprint (x5t#S256). The key ID is the RFC7638 thumbprint of the key.
func JWKSet(certificates []CertificateWithHash) (jwk.Set, error) {
	set := jwk.NewSet()
	for i, entry := range certificates {
		key, err := certificateToJWK(entry)
		if err != nil {
			return nil, fmt.Errorf("certificate %d: %w", i+1, err)
		}
		if err := set.AddKey(key); err != nil {
			return nil, fmt.Errorf("certificate %d: %w", i+1, err)
		}
	}
	return set, nil
}

func certificateToJWK(entry CertificateWithHash) (jwk.Key, error) {
	certificate, err := entry.Certificate()
	if err != nil {
		return nil, err
	}
	key, err := jwk.FromRaw(certificate.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("unsupported public key: %w", err)
	}
	chain := &cert.Chain{}
	if err := chain.AddString(base64.StdEncoding.EncodeToString(certificate.Raw)); err != nil {
		return nil, err
	}
	if err := key.Set(jwk.X509CertChainKey, chain); err != nil {
		return nil, err
	}
	thumbprint := sha256.Sum256(certificate.Raw)
	if err := key.Set(jwk.X509CertThumbprintS256Key, base64.RawURLEncoding.EncodeToString(thumbprint[:])); err != nil {
		return nil, err
	}
	if err := jwk.AssignKeyID(key); err != nil {
		return nil, err
	}
	return key, nil
}
