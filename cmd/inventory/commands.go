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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	conmodel "github.com/plc-corse/concentrator-inventory/internal/concentrateur/model"
	"github.com/plc-corse/concentrator-inventory/internal/stats/model"
	"github.com/plc-corse/concentrator-inventory/internal/system/cache/query"
	"github.com/plc-corse/concentrator-inventory/internal/system/error/serviceerror"
)

var errUsage = errors.New("invalid usage")

// run dispatches one subcommand.
func (a *app) run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "login":
		if len(rest) != 2 {
			return errUsage
		}
		return a.login(ctx, out, rest[0], rest[1])
	case "logout":
		if err := a.session.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Logged out.")
		return nil
	case "dashboard":
		return a.dashboard(ctx, out)
	case "list":
		return a.list(ctx, out, strings.Join(rest, " "))
	case "show":
		if len(rest) != 1 {
			return errUsage
		}
		return a.show(ctx, out, rest[0])
	case "stats":
		return a.cacheStats(ctx, out)
	default:
		return errUsage
	}
}

func (a *app) login(ctx context.Context, out io.Writer, email, password string) error {
	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(out, "Logged in as %s %s (%s).\n", user.Prenom, user.Nom, user.Role)
	return nil
}

func (a *app) dashboard(ctx context.Context, out io.Writer) error {
	dashboard, err := a.stats.Dashboard(ctx)
	if err != nil {
		return describe(err)
	}
	printDashboard(out, dashboard)
	return nil
}

func (a *app) list(ctx context.Context, out io.Writer, search string) error {
	q, err := a.concentrateurs.ListQuery(conmodel.ListParams{Search: search},
		query.Options[*conmodel.ListResponse]{})
	if err != nil {
		return describe(err)
	}
	defer q.Close()

	if err := q.Start(ctx); err != nil {
		return describe(err)
	}
	state := q.State()
	if !state.HasData {
		return state.Err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERIE\tOPERATEUR\tETAT\tAFFECTATION\tCARTON")
	for _, c := range state.Data.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.NumeroSerie, c.Operateur, c.Etat, c.Affectation, c.NumeroCarton)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Page %d/%d, %d concentrateurs.\n", state.Data.Page, state.Data.TotalPages, state.Data.Total)
	return nil
}

func (a *app) show(ctx context.Context, out io.Writer, serial string) error {
	detail, err := a.concentrateurs.Get(ctx, serial)
	if err != nil {
		return describe(err)
	}

	c := detail.Concentrateur
	fmt.Fprintf(out, "%s  %s  %s\n", c.NumeroSerie, c.Operateur, c.Etat)
	if c.Affectation != "" {
		fmt.Fprintf(out, "Affectation: %s\n", c.Affectation)
	}
	if c.NumeroCarton != "" {
		fmt.Fprintf(out, "Carton: %s\n", c.NumeroCarton)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tACTION\tETAT\tAFFECTATION")
	for _, h := range detail.Historique {
		fmt.Fprintf(w, "%s\t%s\t%s -> %s\t%s\n", h.DateAction, h.TypeAction, h.AncienEtat, h.NouvelEtat,
			h.NouvelleAffectation)
	}
	return w.Flush()
}

// cacheStats loads the dashboard twice so the second load is served from the cache,
// then prints the store counters.
func (a *app) cacheStats(ctx context.Context, out io.Writer) error {
	for range 2 {
		if _, err := a.stats.Dashboard(ctx); err != nil {
			return describe(err)
		}
	}

	stats := a.store.GetStats()
	if !stats.Enabled {
		fmt.Fprintln(out, "Cache disabled.")
		return nil
	}
	fmt.Fprintf(out, "Entries: %d/%d\n", stats.Size, stats.MaxEntries)
	fmt.Fprintf(out, "Hits: %d  Misses: %d  Evictions: %d  Hit rate: %.0f%%\n",
		stats.HitCount, stats.MissCount, stats.EvictCount, stats.HitRate()*100)
	return nil
}

func printDashboard(out io.Writer, dashboard *model.Dashboard) {
	o := dashboard.Overview
	fmt.Fprintf(out, "Concentrateurs: %d (en livraison %d, en stock %d, posés %d, retour constructeur %d, HS %d)\n",
		o.TotalConcentrateurs, o.EnLivraison, o.EnStock, o.Pose, o.RetourConstructeur, o.HS)
	fmt.Fprintf(out, "Stock magasin: %d  Stock BO: %d  Actions du jour: %d\n\n",
		o.EnStockMagasin, o.EnStockBO, o.ActionsToday)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BASE\tTOTAL\tEN STOCK\tPOSES\tHS\t%")
	for _, b := range dashboard.StocksParBase {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.1f\n", b.BaseOperationnelle, b.Total, b.EnStock, b.Pose, b.HS, b.Percentage)
	}
	_ = w.Flush()

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tACTION\tSERIE\tPAR")
	for _, action := range dashboard.ActionsRecentes {
		by := ""
		if action.User != nil {
			by = strings.TrimSpace(action.User.Prenom + " " + action.User.Nom)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", action.DateAction, action.TypeAction, action.ConcentrateurID, by)
	}
	_ = w.Flush()
}

// describe turns client-side validation errors into their description.
func describe(err error) error {
	var svcErr *serviceerror.ServiceError
	if errors.As(err, &svcErr) && svcErr.ErrorDescription != "" {
		return errors.New(svcErr.ErrorDescription)
	}
	return err
}
