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

// Package cert loads the certificates used to reach the inventory backend over TLS.
package cert

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
	"path/filepath"

	"github.com/plc-corse/concentrator-inventory/internal/system/config"
)

// GetTLSConfig builds the client TLS configuration from the certificate files named in
// tlsConfig, resolved against home. It returns nil when no file is configured so that
// the system trust store applies.
func GetTLSConfig(tlsConfig config.TLSConfig, home string) (*tls.Config, error) {
	if tlsConfig.CAFile == "" && tlsConfig.CertFile == "" && tlsConfig.KeyFile == "" {
		return nil, nil
	}

	result := &tls.Config{MinVersion: tls.VersionTLS12}

	if tlsConfig.CAFile != "" {
		pem, err := os.ReadFile(resolve(home, tlsConfig.CAFile))
		if err != nil {
			return nil, errors.New("failed to read CA file: " + err.Error())
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.New("no certificate found in CA file " + tlsConfig.CAFile)
		}
		result.RootCAs = pool
	}

	if tlsConfig.CertFile != "" || tlsConfig.KeyFile != "" {
		if tlsConfig.CertFile == "" || tlsConfig.KeyFile == "" {
			return nil, errors.New("client certificate and key files must be configured together")
		}
		certFilePath := resolve(home, tlsConfig.CertFile)
		keyFilePath := resolve(home, tlsConfig.KeyFile)

		// Check if the certificate and key files exist.
		if _, err := os.Stat(certFilePath); os.IsNotExist(err) {
			return nil, errors.New("certificate file not found at " + certFilePath)
		}
		if _, err := os.Stat(keyFilePath); os.IsNotExist(err) {
			return nil, errors.New("key file not found at " + keyFilePath)
		}

		clientCert, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
		if err != nil {
			return nil, err
		}
		result.Certificates = []tls.Certificate{clientCert}
	}

	return result, nil
}

func resolve(home, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(home, file)
}
