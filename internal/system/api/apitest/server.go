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

// Package apitest provides a recording fake of the inventory backend for tests.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/plc-corse/concentrator-inventory/internal/system/api"
)

// Server is an httptest server that counts requests per method and path.
type Server struct {
	*httptest.Server
	mux *http.ServeMux

	mu     sync.Mutex
	hits   map[string]int
	bodies map[string][]byte
}

// NewServer starts a server closed at the end of the test.
func NewServer(t testing.TB) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		hits:   make(map[string]int),
		bodies: make(map[string][]byte),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	id := r.Method + " " + r.URL.Path

	s.mu.Lock()
	s.hits[id]++
	s.bodies[id] = body
	s.mu.Unlock()

	s.mux.ServeHTTP(w, r)
}

// HandleFunc registers fn for a ServeMux pattern such as "GET /concentrateurs/{serie}".
func (s *Server) HandleFunc(pattern string, fn http.HandlerFunc) {
	s.mux.HandleFunc(pattern, fn)
}

// HandleJSON registers a handler replying with status and body encoded as JSON.
func (s *Server) HandleJSON(pattern string, status int, body any) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Hits returns how many requests reached method and path.
func (s *Server) Hits(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[method+" "+path]
}

// LastBody decodes the last request body sent to method and path into out.
func (s *Server) LastBody(method, path string, out any) error {
	s.mu.Lock()
	body := s.bodies[method+" "+path]
	s.mu.Unlock()
	return json.Unmarshal(body, out)
}

// Client returns an unauthenticated API client for the server.
func (s *Server) Client() *api.Client {
	return api.NewClient(s.URL, nil, nil)
}

// WriteJSON writes body as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
