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

package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/plc-corse/concentrator-inventory/internal/magasin/constants"
	"github.com/plc-corse/concentrator-inventory/internal/magasin/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/api/apitest"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
)

type MagasinServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	backend *apitest.Server
	store   *cache.Store
	service *MagasinService
}

func TestMagasinServiceSuite(t *testing.T) {
	suite.Run(t, new(MagasinServiceTestSuite))
}

func (suite *MagasinServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	suite.backend = apitest.NewServer(suite.T())

	var err error
	suite.store, err = cache.NewStore(cache.DefaultConfig(),
		cache.WithClock(func() time.Time { return suite.now }))
	suite.Require().NoError(err)
	suite.service = NewMagasinService(suite.backend.Client(), suite.store, cache.DefaultTTLTiers())

	suite.backend.HandleJSON("GET /magasin/stats", http.StatusOK, model.Stats{Total: 120, EnStock: 80, NbCartons: 4})
	suite.backend.HandleJSON("GET /magasin/operateurs", http.StatusOK,
		[]model.SelectOption{{Value: "itron", Label: "Itron"}, {Value: "sagemcom", Label: "Sagemcom"}})
	suite.backend.HandleJSON("GET /magasin/bases-operationnelles", http.StatusOK,
		[]model.SelectOption{{Value: "Ajaccio", Label: "BO Ajaccio"}})
}

func (suite *MagasinServiceTestSuite) TestStatsCachedForMediumTier() {
	stats, err := suite.service.Stats(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(80, stats.EnStock)

	suite.now = suite.now.Add(cache.TTLMedium - time.Second)
	_, err = suite.service.Stats(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(1, suite.backend.Hits(http.MethodGet, "/magasin/stats"))

	suite.now = suite.now.Add(time.Second)
	_, err = suite.service.Stats(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(2, suite.backend.Hits(http.MethodGet, "/magasin/stats"))
}

func (suite *MagasinServiceTestSuite) TestReferenceListsCachedForStaticTier() {
	for range 3 {
		operateurs, err := suite.service.Operateurs(suite.ctx)
		suite.Require().NoError(err)
		suite.Len(operateurs, 2)
		_, err = suite.service.BasesOperationnelles(suite.ctx)
		suite.Require().NoError(err)
	}
	suite.Equal(1, suite.backend.Hits(http.MethodGet, "/magasin/operateurs"))
	suite.Equal(1, suite.backend.Hits(http.MethodGet, "/magasin/bases-operationnelles"))

	suite.now = suite.now.Add(cache.TTLStatic)
	_, err := suite.service.Operateurs(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(2, suite.backend.Hits(http.MethodGet, "/magasin/operateurs"))
}

func (suite *MagasinServiceTestSuite) TestOperateursQuerySharesCacheWithService() {
	_, err := suite.service.Operateurs(suite.ctx)
	suite.Require().NoError(err)

	q, err := suite.service.OperateursQuery()
	suite.Require().NoError(err)
	suite.True(q.State().HasData)
	suite.Require().NoError(q.Start(suite.ctx))

	suite.Equal("Sagemcom", q.State().Data[1].Label)
	suite.Equal(1, suite.backend.Hits(http.MethodGet, "/magasin/operateurs"))
}

func (suite *MagasinServiceTestSuite) TestCartonKeyedByNumber() {
	suite.backend.HandleFunc("GET /magasin/carton/{numero}", func(w http.ResponseWriter, r *http.Request) {
		apitest.WriteJSON(w, http.StatusOK, model.CartonInfo{Found: true, NumeroCarton: r.PathValue("numero")})
	})

	info, err := suite.service.Carton(suite.ctx, "CRT-001")
	suite.Require().NoError(err)
	suite.True(info.Found)
	_, err = suite.service.Carton(suite.ctx, "CRT-001")
	suite.Require().NoError(err)

	suite.Equal(1, suite.backend.Hits(http.MethodGet, "/magasin/carton/CRT-001"))
	_, found := suite.store.Get("/magasin/carton/CRT-001")
	suite.True(found)

	_, err = suite.service.Carton(suite.ctx, "")
	suite.ErrorIs(err, &constants.ErrorMissingCartonNumber)
}

func (suite *MagasinServiceTestSuite) TestCheckConcentrateurNeverCached() {
	suite.backend.HandleJSON("GET /magasin/concentrateur/{serie}", http.StatusOK,
		model.ConcentrateurCheck{Exists: false, NumeroSerie: "NEW1"})

	for range 2 {
		check, err := suite.service.CheckConcentrateur(suite.ctx, "NEW1")
		suite.Require().NoError(err)
		suite.False(check.Exists)
	}
	suite.Equal(2, suite.backend.Hits(http.MethodGet, "/magasin/concentrateur/NEW1"))
}

func (suite *MagasinServiceTestSuite) TestReceptionInvalidatesStock() {
	suite.backend.HandleJSON("POST /magasin/reception", http.StatusOK,
		model.ReceptionResult{Carton: "CRT-002", Created: 2, Concentrateurs: []string{"A1", "A2"}})
	suite.store.Set("/magasin/stats", 1)
	suite.store.Set("/concentrateurs:{}", 2)
	suite.store.Set("/dashboard/overview", 3)
	suite.store.Set("/bo/stats/Bastia", 4)

	result, err := suite.service.Reception(suite.ctx, model.ReceptionRequest{
		NumeroCarton: "CRT-002",
		Operateur:    "itron",
		Concentrateurs: []model.ConcentrateurCreate{
			{NumeroSerie: "A1", Operateur: "itron", NumeroCarton: "CRT-002"},
			{NumeroSerie: "A2", Operateur: "itron", NumeroCarton: "CRT-002"},
		},
	})

	suite.Require().NoError(err)
	suite.Equal(2, result.Created)
	var sent model.ReceptionRequest
	suite.Require().NoError(suite.backend.LastBody(http.MethodPost, "/magasin/reception", &sent))
	suite.Len(sent.Concentrateurs, 2)

	suite.Equal(1, suite.store.GetStats().Size)
	_, found := suite.store.Get("/bo/stats/Bastia")
	suite.True(found)
}

func (suite *MagasinServiceTestSuite) TestReceptionValidation() {
	_, err := suite.service.Reception(suite.ctx, model.ReceptionRequest{Operateur: "itron"})
	suite.ErrorIs(err, &constants.ErrorMissingCartonNumber)
	_, err = suite.service.Reception(suite.ctx, model.ReceptionRequest{NumeroCarton: "C"})
	suite.ErrorIs(err, &constants.ErrorMissingOperateur)
	_, err = suite.service.Reception(suite.ctx, model.ReceptionRequest{NumeroCarton: "C", Operateur: "itron"})
	suite.ErrorIs(err, &constants.ErrorEmptyReception)
	suite.Zero(suite.backend.Hits(http.MethodPost, "/magasin/reception"))
}

func (suite *MagasinServiceTestSuite) TestTransfertInvalidatesBaseStock() {
	suite.backend.HandleJSON("POST /magasin/transfert", http.StatusOK,
		model.TransfertResult{Transferred: 1, Destination: "Bastia"})
	suite.store.Set("/magasin/stats", 1)
	suite.store.Set("/bo/stats/Bastia", 4)
	suite.store.Set("/labo:{}", 5)

	result, err := suite.service.Transfert(suite.ctx, "Bastia", []string{"A1"})

	suite.Require().NoError(err)
	suite.Equal(1, result.Transferred)
	var sent model.TransfertRequest
	suite.Require().NoError(suite.backend.LastBody(http.MethodPost, "/magasin/transfert", &sent))
	suite.Equal(model.TransfertRequest{BODestination: "Bastia", Concentrateurs: []string{"A1"}}, sent)

	suite.Equal(1, suite.store.GetStats().Size)
	_, found := suite.store.Get("/labo:{}")
	suite.True(found)

	_, err = suite.service.Transfert(suite.ctx, "Bastia", nil)
	suite.ErrorIs(err, &constants.ErrorInvalidTransfert)
}

func (suite *MagasinServiceTestSuite) TestFailedMutationKeepsCache() {
	suite.backend.HandleJSON("POST /magasin/transfert", http.StatusConflict,
		map[string]string{"detail": "Concentrateur déjà transféré"})
	suite.store.Set("/magasin/stats", 1)

	_, err := suite.service.Transfert(suite.ctx, "Bastia", []string{"A1"})

	suite.Error(err)
	_, found := suite.store.Get("/magasin/stats")
	suite.True(found)
}

func (suite *MagasinServiceTestSuite) TestCreateCarton() {
	suite.backend.HandleJSON("POST /magasin/carton", http.StatusOK,
		model.CartonResult{Message: "Carton créé", NumeroCarton: "CRT-9", Operateur: "itron"})
	suite.store.Set("/magasin/carton/CRT-9", model.CartonInfo{Found: false})

	result, err := suite.service.CreateCarton(suite.ctx, model.CartonCreate{NumeroCarton: "CRT-9", Operateur: "itron"})

	suite.Require().NoError(err)
	suite.Equal("CRT-9", result.NumeroCarton)
	_, found := suite.store.Get("/magasin/carton/CRT-9")
	suite.False(found)
}
