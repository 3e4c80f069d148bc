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
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrustStore(t *testing.T) {
	first := testCertificatePEM(t, "first")
	second := testCertificatePEM(t, "second")

	t.Run("ok", func(t *testing.T) {
		store, err := ParseTrustStore(bytes.Join([][]byte{first, second}, nil))

		require.NoError(t, err)
		certificates := store.Certificates()
		require.Len(t, certificates, 2)
		assert.Equal(t, "first", certificates[0].Subject.CommonName)
		assert.Equal(t, "second", certificates[1].Subject.CommonName)
		assert.NotNil(t, store.CertPool())
	})
	t.Run("ok - trailing whitespace", func(t *testing.T) {
		store, err := ParseTrustStore(append(first, []byte("\n\n  ")...))

		require.NoError(t, err)
		assert.Len(t, store.Certificates(), 1)
	})
	t.Run("ok - other PEM blocks are skipped", func(t *testing.T) {
		other := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: []byte{1, 2, 3}})

		store, err := ParseTrustStore(append(other, first...))

		require.NoError(t, err)
		assert.Len(t, store.Certificates(), 1)
	})
	t.Run("certificates can't be altered through the returned slice", func(t *testing.T) {
		store, err := ParseTrustStore(first)
		require.NoError(t, err)

		store.Certificates()[0] = nil

		assert.NotNil(t, store.Certificates()[0])
	})
	t.Run("pool can't be altered through the returned pool", func(t *testing.T) {
		store, err := ParseTrustStore(first)
		require.NoError(t, err)
		expected := store.CertPool()
		foreign, err := ParseCertificates(second)
		require.NoError(t, err)

		store.CertPool().AddCert(foreign[0])

		assert.True(t, expected.Equal(store.CertPool()))
	})
	t.Run("error - no certificates", func(t *testing.T) {
		_, err := ParseTrustStore(nil)

		assert.EqualError(t, err, "trust store contains no certificates")
	})
	t.Run("error - not PEM", func(t *testing.T) {
		_, err := ParseTrustStore([]byte("not a certificate"))

		assert.EqualError(t, err, "unable to decode PEM encoded data")
	})
	t.Run("error - invalid certificate", func(t *testing.T) {
		_, err := ParseTrustStore(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte{1, 2, 3}}))

		assert.ErrorContains(t, err, "unable to parse certificate")
	})
}

func testCertificatePEM(t *testing.T, commonName string) []byte {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, key.Public(), key)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}
