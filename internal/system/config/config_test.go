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

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testResourceDir = "testdata"

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TearDownTest() {
	ResetRuntime()
}

func (suite *ConfigTestSuite) getFilePath(filename string) string {
	return filepath.Join(testResourceDir, filename)
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	config, err := LoadConfig(suite.getFilePath("inventory.yaml"))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	assert.Equal(suite.T(), "https://inventaire.example.corsica/api/v1", config.API.BaseURL)
	assert.Equal(suite.T(), 15, config.API.Timeout)
	assert.Equal(suite.T(), "conf/ca.pem", config.API.TLS.CAFile)
	assert.Empty(suite.T(), config.API.TLS.CertFile)

	assert.False(suite.T(), config.Cache.Disabled)
	assert.Equal(suite.T(), 300, config.Cache.DefaultTTL)
	assert.Equal(suite.T(), 200, config.Cache.MaxEntries)
	assert.Equal(suite.T(), TTLConfig{Short: 30, Medium: 120, Long: 300, Static: 1800}, config.Cache.TTL)

	assert.Equal(suite.T(), "data/session.db", config.Session.Path)
	assert.True(suite.T(), config.Metrics.Enabled)
	assert.Equal(suite.T(), ":9102", config.Metrics.Address)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	config, err := LoadConfig(suite.getFilePath("non_existent_config.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "no such file or directory")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	config, err := LoadConfig(suite.getFilePath("invalid.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}

func (suite *ConfigTestSuite) TestRuntimeInitializedOnce() {
	first := &Config{API: APIConfig{BaseURL: "http://first"}}
	second := &Config{API: APIConfig{BaseURL: "http://second"}}

	assert.NoError(suite.T(), InitializeRuntime("/opt/inventory", first))
	assert.NoError(suite.T(), InitializeRuntime("/tmp", second))

	runtime := GetRuntime()
	assert.Equal(suite.T(), "/opt/inventory", runtime.Home)
	assert.Equal(suite.T(), "http://first", runtime.Config.API.BaseURL)
}

func (suite *ConfigTestSuite) TestGetRuntimePanicsWhenUninitialized() {
	assert.Panics(suite.T(), func() {
		_ = GetRuntime()
	})
}
