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

const (
	// LogFieldModule is the log field for the module name.
	LogFieldModule = "module"

	// LogFieldTrustedListURL is the log field key for the URL of a list of trusted lists.
	LogFieldTrustedListURL = "trustedListURL"
	// LogFieldPublication is the log field key for the Official Journal publication a set of trust anchors was taken from.
	LogFieldPublication = "publication"
	// LogFieldCertificateIndex is the log field key for the position of a trust anchor in its table.
	LogFieldCertificateIndex = "certIndex"
	// LogFieldCertificateSubject is the log field key for the subject of a trust anchor certificate.
	LogFieldCertificateSubject = "certSubject"
	// LogFieldCertificateHash is the log field key for the (base64 SHA-256) hash of a trust anchor certificate.
	LogFieldCertificateHash = "certHash"
)
