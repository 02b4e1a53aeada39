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

package main

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	conmodel "github.com/plc-corse/concentrator-inventory/internal/concentrateur/model"
	"github.com/plc-corse/concentrator-inventory/internal/stats/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/api/apitest"
	"github.com/plc-corse/concentrator-inventory/internal/system/config"
)

type CommandsTestSuite struct {
	suite.Suite
	ctx     context.Context
	backend *apitest.Server
	app     *app
	out     bytes.Buffer
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (suite *CommandsTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.backend = apitest.NewServer(suite.T())
	suite.out.Reset()

	cfg := &config.Config{API: config.APIConfig{BaseURL: suite.backend.URL}}
	var err error
	suite.app, err = newApp(suite.ctx, suite.T().TempDir(), cfg)
	suite.Require().NoError(err)
}

func (suite *CommandsTestSuite) serveDashboard() {
	suite.backend.HandleJSON("GET /stats/overview", http.StatusOK, model.Overview{TotalConcentrateurs: 42})
	suite.backend.HandleJSON("GET /stats/stocks-par-base", http.StatusOK,
		[]model.BaseStock{{BaseOperationnelle: "Corte", Total: 12}})
	suite.backend.HandleJSON("GET /stats/actions-recentes", http.StatusOK,
		[]model.ActionRecente{{TypeAction: "pose", ConcentrateurID: "PLC-0001"}})
}

func (suite *CommandsTestSuite) TestUsageErrors() {
	suite.ErrorIs(suite.app.run(suite.ctx, &suite.out, nil), errUsage)
	suite.ErrorIs(suite.app.run(suite.ctx, &suite.out, []string{"unknown"}), errUsage)
	suite.ErrorIs(suite.app.run(suite.ctx, &suite.out, []string{"show"}), errUsage)
	suite.ErrorIs(suite.app.run(suite.ctx, &suite.out, []string{"login", "only-email"}), errUsage)
}

func (suite *CommandsTestSuite) TestDashboard() {
	suite.serveDashboard()

	suite.Require().NoError(suite.app.run(suite.ctx, &suite.out, []string{"dashboard"}))

	suite.Contains(suite.out.String(), "Concentrateurs: 42")
	suite.Contains(suite.out.String(), "Corte")
	suite.Contains(suite.out.String(), "PLC-0001")
}

func (suite *CommandsTestSuite) TestStatsReportsCacheHits() {
	suite.serveDashboard()

	suite.Require().NoError(suite.app.run(suite.ctx, &suite.out, []string{"stats"}))

	suite.Contains(suite.out.String(), "Entries: 3/100")
	suite.Contains(suite.out.String(), "Hits: 3")
	suite.Equal(1, suite.backend.Hits(http.MethodGet, "/stats/overview"))
}

func (suite *CommandsTestSuite) TestListSendsSearch() {
	suite.backend.HandleFunc("GET /concentrateurs", func(w http.ResponseWriter, r *http.Request) {
		apitest.WriteJSON(w, http.StatusOK, conmodel.ListResponse{
			Data:       []conmodel.Concentrateur{{NumeroSerie: r.URL.Query().Get("search"), Etat: conmodel.EtatEnStock}},
			Total:      1,
			Page:       1,
			TotalPages: 1,
		})
	})

	suite.Require().NoError(suite.app.run(suite.ctx, &suite.out, []string{"list", "PLC-0002"}))

	suite.Contains(suite.out.String(), "PLC-0002")
	suite.Contains(suite.out.String(), "Page 1/1, 1 concentrateurs.")
}

func (suite *CommandsTestSuite) TestShowValidationError() {
	err := suite.app.run(suite.ctx, &suite.out, []string{"show", " "})

	suite.EqualError(err, "Serial number is required")
}

func (suite *CommandsTestSuite) TestLogoutClearsCache() {
	suite.app.store.Set("/dashboard/overview", model.Overview{})

	suite.Require().NoError(suite.app.run(suite.ctx, &suite.out, []string{"logout"}))

	suite.Equal(0, suite.app.store.GetStats().Size)
	suite.Contains(suite.out.String(), "Logged out.")
}
