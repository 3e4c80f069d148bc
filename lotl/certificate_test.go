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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateWithHash(t *testing.T) {
	certificate := NewCertificateWithHash("pem", "hash")

	assert.Equal(t, "pem", certificate.PEMCertificate())
	assert.Equal(t, "hash", certificate.Hash())
}

func TestCertificateWithHash_Certificate(t *testing.T) {
	anchors := TestCertificates(t, 2)

	t.Run("ok", func(t *testing.T) {
		certificate, err := anchors[0].Certificate()

		require.NoError(t, err)
		assert.Equal(t, "Test trust anchor 1", certificate.Subject.CommonName)
	})
	t.Run("error - more than one certificate", func(t *testing.T) {
		_, err := NewCertificateWithHash(anchors[0].PEMCertificate()+anchors[1].PEMCertificate(), "").Certificate()

		assert.EqualError(t, err, "expected exactly 1 certificate, found 2")
	})
	t.Run("error - no certificate", func(t *testing.T) {
		_, err := NewCertificateWithHash("", "").Certificate()

		assert.EqualError(t, err, "expected exactly 1 certificate, found 0")
	})
	t.Run("error - not PEM", func(t *testing.T) {
		_, err := NewCertificateWithHash("MIIB", "").Certificate()

		assert.EqualError(t, err, "unable to decode PEM encoded data")
	})
}

func TestCertificateWithHash_Verify(t *testing.T) {
	anchors := TestCertificates(t, 2)

	t.Run("ok", func(t *testing.T) {
		for i, certificate := range anchors {
			assert.NoError(t, certificate.Verify(), "certificate %d", i+1)
		}
	})
	t.Run("hash of other certificate", func(t *testing.T) {
		err := NewCertificateWithHash(anchors[0].PEMCertificate(), anchors[1].Hash()).Verify()

		assert.ErrorIs(t, err, ErrHashMismatch)
	})
	t.Run("hash over PEM text instead of DER", func(t *testing.T) {
		pemCertificate := anchors[0].PEMCertificate()
		err := NewCertificateWithHash(pemCertificate, ComputeHash([]byte(pemCertificate))).Verify()

		assert.ErrorIs(t, err, ErrHashMismatch)
	})
	t.Run("invalid PEM", func(t *testing.T) {
		err := NewCertificateWithHash("invalid", anchors[0].Hash()).Verify()

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrHashMismatch)
	})
}

func TestComputeHash(t *testing.T) {
	// SHA-256 of the empty string
	assert.Equal(t, "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=", ComputeHash(nil))
	assert.Equal(t, "ungWv48Bz+pBQUDeXa4iI7ADYaOWF3qctBD/YfIAFa0=", ComputeHash([]byte("abc")))
}
