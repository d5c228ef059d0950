/*
 * Copyright 2025 the Simboard Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package api provides the HTTP and WebSocket surface of the dashboard.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/simboard/simboard/pkg/core"
	simHttp "github.com/simboard/simboard/pkg/http"
	"github.com/simboard/simboard/pkg/logger"
	"github.com/simboard/simboard/pkg/models"
	"github.com/simboard/simboard/pkg/store"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second

	defaultMetricsInterval  = 5 * time.Second
	defaultServicesInterval = 3 * time.Second
)

// APIServer exposes the entity store and control surface over REST and
// pushes live updates over WebSocket.
type APIServer struct {
	router     *mux.Router
	store      store.Storage
	core       *core.Server
	corsConfig models.CORSConfig
	logger     logger.Logger

	metricsInterval  time.Duration
	servicesInterval time.Duration

	httpSrv *http.Server
}

// NewAPIServer creates a new API server instance with the given collaborators.
func NewAPIServer(coreSrv *core.Server, corsConfig models.CORSConfig, options ...func(*APIServer)) *APIServer {
	s := &APIServer{
		router:           mux.NewRouter(),
		store:            coreSrv.Store(),
		core:             coreSrv,
		corsConfig:       corsConfig,
		logger:           logger.NewTestLogger(),
		metricsInterval:  defaultMetricsInterval,
		servicesInterval: defaultServicesInterval,
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithLogger sets the structured logger for the API server.
func WithLogger(log logger.Logger) func(*APIServer) {
	return func(server *APIServer) {
		server.logger = log
	}
}

// WithBroadcastIntervals overrides the push-channel timer periods.
func WithBroadcastIntervals(metrics, services time.Duration) func(*APIServer) {
	return func(server *APIServer) {
		server.metricsInterval = metrics
		server.servicesInterval = services
	}
}

// Router exposes the underlying handler, mainly for tests.
func (s *APIServer) Router() http.Handler {
	return s.router
}

func (s *APIServer) setupRoutes() {
	s.router.Use(func(next http.Handler) http.Handler {
		return simHttp.CommonMiddleware(next, s.corsConfig)
	})

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/services", s.getServices).Methods("GET")
	api.HandleFunc("/services", s.createService).Methods("POST")
	api.HandleFunc("/services/{id:[0-9]+}", s.getService).Methods("GET")
	api.HandleFunc("/services/{id:[0-9]+}", s.updateService).Methods("PUT")
	api.HandleFunc("/services/{id:[0-9]+}", s.deleteService).Methods("DELETE")
	api.HandleFunc("/services/{id:[0-9]+}/start", s.startService).Methods("POST")
	api.HandleFunc("/services/{id:[0-9]+}/stop", s.stopService).Methods("POST")
	api.HandleFunc("/services/{id:[0-9]+}/restart", s.restartService).Methods("POST")

	api.HandleFunc("/metrics", s.getMetrics).Methods("GET")
	api.HandleFunc("/metrics", s.createMetric).Methods("POST")
	api.HandleFunc("/metrics/latest", s.getLatestMetrics).Methods("GET")

	api.HandleFunc("/deployments", s.getDeployments).Methods("GET")
	api.HandleFunc("/deployments", s.createDeployment).Methods("POST")
	api.HandleFunc("/deployments/{id:[0-9]+}", s.updateDeployment).Methods("PUT")

	api.HandleFunc("/routes", s.getAPIRoutes).Methods("GET")
	api.HandleFunc("/routes", s.createAPIRoute).Methods("POST")
	api.HandleFunc("/routes/{id:[0-9]+}", s.updateAPIRoute).Methods("PUT")
	api.HandleFunc("/routes/{id:[0-9]+}", s.deleteAPIRoute).Methods("DELETE")

	api.HandleFunc("/test-results", s.getTestResults).Methods("GET")
	api.HandleFunc("/test-results", s.createTestResult).Methods("POST")
	api.HandleFunc("/test-results/latest", s.getLatestTestResults).Methods("GET")

	api.HandleFunc("/activities", s.getActivities).Methods("GET")
	api.HandleFunc("/activities", s.createActivity).Methods("POST")

	api.HandleFunc("/stats", s.getStats).Methods("GET")

	api.HandleFunc("/actuator/health", s.getActuatorHealth).Methods("GET")
	api.HandleFunc("/actuator/info", s.getActuatorInfo).Methods("GET")
	api.HandleFunc("/actuator/metrics", s.getActuatorMetrics).Methods("GET")
	api.HandleFunc("/actuator/env", s.getActuatorEnv).Methods("GET")
	api.HandleFunc("/actuator/beans", s.getActuatorBeans).Methods("GET")
	api.HandleFunc("/actuator/configprops", s.getActuatorConfigProps).Methods("GET")

	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// Start starts the API server on the specified address.
func (s *APIServer) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	s.logger.Info().Str("addr", addr).Msg("API server listening")

	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the API server.
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}

	return s.httpSrv.Shutdown(ctx)
}

// encodeJSONResponse encodes a response as JSON
func (*APIServer) encodeJSONResponse(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// encodeJSONResponseStatus writes a non-200 status and a JSON body. The
// Content-Type header must be in place before WriteHeader snapshots the
// header map, so the two cannot be done by separate calls.
func (*APIServer) encodeJSONResponseStatus(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)

	errResponse := models.ErrorResponse{
		Message: message,
		Status:  statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		// Fallback in case encoding fails
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
