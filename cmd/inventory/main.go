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
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	actionservice "github.com/plc-corse/concentrator-inventory/internal/action/service"
	boservice "github.com/plc-corse/concentrator-inventory/internal/bo/service"
	"github.com/plc-corse/concentrator-inventory/internal/cert"
	conservice "github.com/plc-corse/concentrator-inventory/internal/concentrateur/service"
	magasinservice "github.com/plc-corse/concentrator-inventory/internal/magasin/service"
	sessionservice "github.com/plc-corse/concentrator-inventory/internal/session/service"
	sessionstore "github.com/plc-corse/concentrator-inventory/internal/session/store"
	statsservice "github.com/plc-corse/concentrator-inventory/internal/stats/service"
	"github.com/plc-corse/concentrator-inventory/internal/system/api"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
	"github.com/plc-corse/concentrator-inventory/internal/system/config"
	"github.com/plc-corse/concentrator-inventory/internal/system/constants"
	"github.com/plc-corse/concentrator-inventory/internal/system/database/provider"
	"github.com/plc-corse/concentrator-inventory/internal/system/log"
	"github.com/plc-corse/concentrator-inventory/internal/system/metrics"
	transfertservice "github.com/plc-corse/concentrator-inventory/internal/transfert/service"
)

// app holds the services of one client runtime.
type app struct {
	store          *cache.Store
	session        *sessionservice.SessionService
	concentrateurs *conservice.ConcentrateurService
	magasin        *magasinservice.MagasinService
	bo             *boservice.BOService
	actions        *actionservice.ActionService
	transferts     *transfertservice.TransfertService
	stats          *statsservice.StatsService
	metricsHandler http.Handler
	closers        []func() error
}

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	homeFlag := flag.String("home", "", "Path to the inventory client home directory")
	configFlag := flag.String("config", "", "Path to the configuration file, relative to the home directory")
	flag.Usage = usage
	flag.Parse()

	home := getHome(logger, *homeFlag)
	cfg := initConfigurations(logger, home, *configFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, home, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize the client", log.Error(err))
	}
	defer a.close(logger)

	if cfg.Metrics.Enabled {
		stopMetrics := startMetricsServer(logger, cfg.Metrics.Address, a.metricsHandler)
		defer stopMetrics()
	}

	if err := a.run(ctx, os.Stdout, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		a.close(logger)
		os.Exit(1)
	}

	stats := a.store.GetStats()
	logger.Debug("Cache usage", log.Int("size", stats.Size), log.Any("hits", stats.HitCount),
		log.Any("misses", stats.MissCount))
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] <command> [args]

Commands:
  login <email> <password>  authenticate and store the session
  logout                    clear the session and the response cache
  dashboard                 show the fleet overview, stock per base and recent actions
  list [search]             list concentrateurs, optionally filtered by a search term
  show <serial>             show one concentrateur and its history
  stats                     load the dashboard twice and report cache usage

Flags:
`, filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

// getHome resolves the home directory from the flag, the environment, or the working directory.
func getHome(logger *log.Logger, homeFlag string) string {
	if homeFlag != "" {
		logger.Debug("Using home from command line argument", log.String("home", homeFlag))
		return homeFlag
	}
	if home := os.Getenv(constants.HomeEnvironmentVariable); home != "" {
		logger.Debug("Using home from environment", log.String("home", home))
		return home
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initConfigurations loads the configuration file and initializes the runtime.
func initConfigurations(logger *log.Logger, home, configFile string) *config.Config {
	if configFile == "" {
		configFile = constants.DefaultConfigFile
	}
	if !filepath.IsAbs(configFile) {
		configFile = filepath.Join(home, configFile)
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.String("path", configFile), log.Error(err))
	}
	if err := config.InitializeRuntime(home, cfg); err != nil {
		logger.Fatal("Failed to initialize runtime", log.Error(err))
	}
	return cfg
}

// newApp builds the session store, the response cache, the API client and the services.
func newApp(ctx context.Context, home string, cfg *config.Config) (*app, error) {
	a := &app{}

	sessions, err := a.openSessionStore(ctx, home, cfg.Session)
	if err != nil {
		return nil, err
	}

	recorder := metrics.NewCacheMetrics()
	a.metricsHandler = recorder.Handler()
	store, err := cache.NewStoreFromConfig(cfg.Cache, cache.WithMetrics(recorder))
	if err != nil {
		a.closeAll()
		return nil, fmt.Errorf("invalid cache configuration: %w", err)
	}
	a.store = store

	tlsConfig, err := cert.GetTLSConfig(cfg.API.TLS, home)
	if err != nil {
		a.closeAll()
		return nil, fmt.Errorf("invalid TLS configuration: %w", err)
	}

	client := api.NewClientFromConfig(cfg.API, tlsConfig, sessionservice.TokenProvider(sessions))
	a.session = sessionservice.NewSessionService(client, sessions, store)
	client.SetUnauthorizedHandler(a.session.HandleUnauthorized)

	tiers := cache.TTLTiersFromConfig(cfg.Cache.TTL)
	a.concentrateurs = conservice.NewConcentrateurService(client, store, tiers)
	a.magasin = magasinservice.NewMagasinService(client, store, tiers)
	a.bo = boservice.NewBOService(client, store, tiers)
	a.actions = actionservice.NewActionService(client, store, tiers)
	a.transferts = transfertservice.NewTransfertService(client, store, tiers)
	a.stats = statsservice.NewStatsService(client, store, tiers)
	return a, nil
}

// openSessionStore opens the SQLite session file, or keeps the session in memory when
// no path is configured.
func (a *app) openSessionStore(ctx context.Context, home string,
	sessionConfig config.SessionConfig) (sessionstore.SessionStoreInterface, error) {
	if sessionConfig.Path == "" {
		return sessionstore.NewMemoryStore(), nil
	}

	dbClient, err := provider.OpenSQLite(home, sessionConfig.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	a.closers = append(a.closers, dbClient.Close)

	sessions, err := sessionstore.NewSQLStore(ctx, dbClient)
	if err != nil {
		a.closeAll()
		return nil, fmt.Errorf("failed to prepare session database: %w", err)
	}
	return sessions, nil
}

func (a *app) closeAll() error {
	var errs []error
	for _, closer := range a.closers {
		errs = append(errs, closer())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *app) close(logger *log.Logger) {
	if err := a.closeAll(); err != nil {
		logger.Warn("Failed to release client resources", log.Error(err))
	}
}

// startMetricsServer serves the cache metrics until the returned function is called.
func startMetricsServer(logger *log.Logger, address string, handler http.Handler) func() {
	if address == "" {
		address = constants.DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Serving cache metrics", log.String("address", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", log.Error(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}
}
