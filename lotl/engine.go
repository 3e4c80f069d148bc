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
	"errors"
	"fmt"

	"github.com/nuts-foundation/eu-trustedlists/core"
	"github.com/nuts-foundation/eu-trustedlists/lotl/log"
)

// ModuleName contains the name of this engine.
const ModuleName = "LOTL"

var _ core.Injectable = (*LOTL)(nil)
var _ core.Configurable = (*LOTL)(nil)
var _ core.ViewableDiagnostics = (*LOTL)(nil)

// LOTL is the engine that makes the List of Trusted Lists Configuration available to the rest of the system.
type LOTL struct {
	config        Config
	configuration *Configuration
	// unavailable is set when the certificates of the supported publication are not embedded.
	unavailable error
	// newConfiguration is used to create the Configuration, it can be replaced in tests.
	newConfiguration func() (*Configuration, error)
}

// NewEngine creates a new, unconfigured LOTL engine.
func NewEngine() *LOTL {
	return &LOTL{
		config:           DefaultConfig(),
		newConfiguration: New,
	}
}

func (l *LOTL) Name() string {
	return ModuleName
}

func (l *LOTL) Config() interface{} {
	return &l.config
}

// Configure creates the Configuration and, if enabled, verifies the trust anchors.
// When the trust anchors are not available the engine stays unconfigured, without failing the system.
func (l *LOTL) Configure(_ core.ServerConfig) error {
	l.configuration = nil
	l.unavailable = nil
	configuration, err := l.newConfiguration()
	if errors.Is(err, ErrTrustAnchorsUnavailable) {
		log.Logger().WithError(err).Warn("LOTL trust anchors are not available, trusted list can't be validated")
		l.unavailable = err
		return nil
	}
	if err != nil {
		return err
	}
	if l.config.VerifyOnStartup {
		if err := verifyTrustAnchors(configuration); err != nil {
			return err
		}
	}
	log.Logger().
		WithField(core.LogFieldTrustedListURL, configuration.TrustedListURI().String()).
		WithField(core.LogFieldPublication, configuration.CurrentlySupportedPublication()).
		Debugf("Loaded %d trust anchors", len(configuration.certificates))
	l.configuration = configuration
	return nil
}

func verifyTrustAnchors(configuration *Configuration) error {
	if err := configuration.Verify(); err != nil {
		return fmt.Errorf("trust anchor verification failed: %w", err)
	}
	for i, anchor := range configuration.certificates {
		certificate, err := anchor.Certificate()
		if err != nil {
			return fmt.Errorf("trust anchor verification failed: certificate %d: %w", i+1, err)
		}
		log.Logger().
			WithField(core.LogFieldCertificateIndex, i+1).
			WithField(core.LogFieldCertificateSubject, certificate.Subject.String()).
			WithField(core.LogFieldCertificateHash, anchor.Hash()).
			Trace("Trust anchor verified")
	}
	return nil
}

// Configuration returns the Configuration. It returns an error if the engine hasn't been configured,
// or an error wrapping ErrTrustAnchorsUnavailable if there are no trust anchors to present.
func (l *LOTL) Configuration() (*Configuration, error) {
	if l.unavailable != nil {
		return nil, l.unavailable
	}
	if l.configuration == nil {
		return nil, errors.New("LOTL engine is not configured")
	}
	return l.configuration, nil
}

func (l *LOTL) Diagnostics() []core.DiagnosticResult {
	if l.unavailable != nil {
		return []core.DiagnosticResult{
			core.GenericDiagnosticResult{Title: "trust_anchors_available", Outcome: false},
		}
	}
	if l.configuration == nil {
		return nil
	}
	return []core.DiagnosticResult{
		core.GenericDiagnosticResult{Title: "trust_anchors_available", Outcome: true},
		core.GenericDiagnosticResult{Title: "trusted_list_url", Outcome: l.configuration.TrustedListURI().String()},
		core.GenericDiagnosticResult{Title: "publication", Outcome: l.configuration.CurrentlySupportedPublication()},
		core.GenericDiagnosticResult{Title: "trust_anchor_count", Outcome: len(l.configuration.certificates)},
	}
}
