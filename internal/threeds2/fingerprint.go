/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package threeds2

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/asgardeo/paymentauth/internal/intent"
)

// ErrFingerprintConstruction is returned when the directory server material cannot be used.
var ErrFingerprintConstruction = errors.New("failed to construct 3DS2 fingerprint")

// NewFingerprint derives a fingerprint from the 3DS2 SDK data of an intent.
func NewFingerprint(data intent.ThreeDS2Data) (*Fingerprint, error) {
	if data.SourceID == "" {
		return nil, fmt.Errorf("%w: missing source", ErrFingerprintConstruction)
	}

	encryption := data.DirectoryServerEncryption
	dsCert, err := parseCertificate(encryption.Certificate)
	if err != nil {
		return nil, fmt.Errorf("%w: directory server certificate: %w", ErrFingerprintConstruction, err)
	}

	rootCerts := make([]*x509.Certificate, 0, len(encryption.RootCertificateAuthorities))
	for i, encoded := range encryption.RootCertificateAuthorities {
		rootCert, err := parseCertificate(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: root certificate %d: %w", ErrFingerprintConstruction, i, err)
		}
		rootCerts = append(rootCerts, rootCert)
	}

	return &Fingerprint{
		SourceID: data.SourceID,
		DirectoryServer: DirectoryServer{
			ID:   encryption.DirectoryServerID,
			Name: data.DirectoryServerName,
		},
		ServerTransactionID:      data.ServerTransactionID,
		DirectoryServerPublicKey: dsCert.PublicKey,
		RootCerts:                rootCerts,
		KeyID:                    encryption.KeyID,
	}, nil
}

// SessionConfig returns the session configuration for this fingerprint.
func (f *Fingerprint) SessionConfig(messageVersion string, liveMode bool) SessionConfig {
	return SessionConfig{
		DirectoryServerID:   f.DirectoryServer.ID,
		MessageVersion:      messageVersion,
		LiveMode:            liveMode,
		DirectoryServerName: f.DirectoryServer.Name,
		RootCerts:           f.RootCerts,
		PublicKey:           f.DirectoryServerPublicKey,
		KeyID:               f.KeyID,
	}
}

func parseCertificate(encoded string) (*x509.Certificate, error) {
	block, _ := pem.Decode([]byte(encoded))
	if block == nil {
		return nil, errors.New("no PEM data found")
	}
	if block.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}
	return x509.ParseCertificate(block.Bytes)
}
