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

// Package config provides structures and functions for loading and managing client configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/plc-corse/concentrator-inventory/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// APIConfig holds the inventory backend connection details.
type APIConfig struct {
	BaseURL string    `yaml:"base_url"`
	Timeout int       `yaml:"timeout"`
	TLS     TLSConfig `yaml:"tls"`
}

// TLSConfig holds the optional trust and client certificate files for the backend
// connection, relative to the home directory.
type TLSConfig struct {
	CAFile   string `yaml:"ca_file"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// TTLConfig holds the named TTL tiers in seconds.
type TTLConfig struct {
	Short  int `yaml:"short"`
	Medium int `yaml:"medium"`
	Long   int `yaml:"long"`
	Static int `yaml:"static"`
}

// CacheConfig holds the response cache configuration details.
type CacheConfig struct {
	Disabled   bool      `yaml:"disabled"`
	DefaultTTL int       `yaml:"default_ttl"`
	MaxEntries int       `yaml:"max_entries"`
	TTL        TTLConfig `yaml:"ttl"`
}

// SessionConfig holds the session persistence details.
type SessionConfig struct {
	Path string `yaml:"path"`
}

// MetricsConfig holds the metrics endpoint details.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// Config holds the complete configuration details of the client.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Cache   CacheConfig   `yaml:"cache"`
	Session SessionConfig `yaml:"session"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
