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

package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/simboard/simboard/pkg/models"
)

// pathID extracts the numeric id path variable. The route patterns only
// match digits, so a parse failure means a routing bug rather than bad
// input.
func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

// queryInt parses an optional numeric query parameter, returning 0 when
// absent or malformed.
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return v
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}

	return true
}

// Services

func (s *APIServer) getServices(w http.ResponseWriter, _ *http.Request) {
	if err := s.encodeJSONResponse(w, s.store.Services()); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode services")
	}
}

func (s *APIServer) getService(w http.ResponseWriter, r *http.Request) {
	svc, ok := s.store.Service(pathID(r))
	if !ok {
		writeError(w, "Service not found", http.StatusNotFound)
		return
	}

	if err := s.encodeJSONResponse(w, svc); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode service")
	}
}

func (s *APIServer) createService(w http.ResponseWriter, r *http.Request) {
	var input models.ServiceInput
	if !decodeBody(w, r, &input) {
		return
	}

	if input.Name == "" || input.Type == "" || input.Status == "" {
		writeError(w, "name, type and status are required", http.StatusBadRequest)
		return
	}

	svc := s.core.CreateService(&input)

	if err := s.encodeJSONResponseStatus(w, http.StatusCreated, svc); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode created service")
	}
}

func (s *APIServer) updateService(w http.ResponseWriter, r *http.Request) {
	var patch models.ServiceUpdate
	if !decodeBody(w, r, &patch) {
		return
	}

	svc, err := s.store.UpdateService(pathID(r), &patch)
	if err != nil {
		writeError(w, "Service not found", http.StatusNotFound)
		return
	}

	if encErr := s.encodeJSONResponse(w, svc); encErr != nil {
		s.logger.Error().Err(encErr).Msg("Failed to encode updated service")
	}
}

func (s *APIServer) deleteService(w http.ResponseWriter, r *http.Request) {
	if !s.core.DeleteService(pathID(r)) {
		writeError(w, "Service not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Control actions

func (s *APIServer) startService(w http.ResponseWriter, r *http.Request) {
	svc, err := s.core.StartService(pathID(r))
	if err != nil {
		writeError(w, "Service not found", http.StatusNotFound)
		return
	}

	if encErr := s.encodeJSONResponse(w, svc); encErr != nil {
		s.logger.Error().Err(encErr).Msg("Failed to encode started service")
	}
}

func (s *APIServer) stopService(w http.ResponseWriter, r *http.Request) {
	svc, err := s.core.StopService(pathID(r))
	if err != nil {
		writeError(w, "Service not found", http.StatusNotFound)
		return
	}

	if encErr := s.encodeJSONResponse(w, svc); encErr != nil {
		s.logger.Error().Err(encErr).Msg("Failed to encode stopped service")
	}
}

func (s *APIServer) restartService(w http.ResponseWriter, r *http.Request) {
	svc, err := s.core.RestartService(pathID(r))
	if err != nil {
		writeError(w, "Service not found", http.StatusNotFound)
		return
	}

	if encErr := s.encodeJSONResponse(w, svc); encErr != nil {
		s.logger.Error().Err(encErr).Msg("Failed to encode restarting service")
	}
}

// Metrics

func (s *APIServer) getMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := s.store.Metrics(queryInt(r, "serviceId"), queryInt(r, "limit"))

	if err := s.encodeJSONResponse(w, metrics); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode metrics")
	}
}

func (s *APIServer) getLatestMetrics(w http.ResponseWriter, _ *http.Request) {
	if err := s.encodeJSONResponse(w, s.store.LatestMetrics()); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode latest metrics")
	}
}

func (s *APIServer) createMetric(w http.ResponseWriter, r *http.Request) {
	var input models.MetricInput
	if !decodeBody(w, r, &input) {
		return
	}

	metric := s.store.CreateMetric(&input)

	if err := s.encodeJSONResponseStatus(w, http.StatusCreated, metric); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode created metric")
	}
}

// Deployments

func (s *APIServer) getDeployments(w http.ResponseWriter, r *http.Request) {
	deployments := s.store.Deployments(queryInt(r, "serviceId"))

	if err := s.encodeJSONResponse(w, deployments); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode deployments")
	}
}

func (s *APIServer) createDeployment(w http.ResponseWriter, r *http.Request) {
	var input models.DeploymentInput
	if !decodeBody(w, r, &input) {
		return
	}

	if input.Version == "" || input.Status == "" {
		writeError(w, "version and status are required", http.StatusBadRequest)
		return
	}

	deployment := s.core.CreateDeployment(&input)

	if err := s.encodeJSONResponseStatus(w, http.StatusCreated, deployment); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode created deployment")
	}
}

func (s *APIServer) updateDeployment(w http.ResponseWriter, r *http.Request) {
	var patch models.DeploymentUpdate
	if !decodeBody(w, r, &patch) {
		return
	}

	deployment, err := s.store.UpdateDeployment(pathID(r), &patch)
	if err != nil {
		writeError(w, "Deployment not found", http.StatusNotFound)
		return
	}

	if encErr := s.encodeJSONResponse(w, deployment); encErr != nil {
		s.logger.Error().Err(encErr).Msg("Failed to encode updated deployment")
	}
}

// API routes

func (s *APIServer) getAPIRoutes(w http.ResponseWriter, r *http.Request) {
	routes := s.store.APIRoutes(queryInt(r, "gatewayId"))

	if err := s.encodeJSONResponse(w, routes); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode routes")
	}
}

func (s *APIServer) createAPIRoute(w http.ResponseWriter, r *http.Request) {
	var input models.APIRouteInput
	if !decodeBody(w, r, &input) {
		return
	}

	if input.Path == "" || input.Method == "" || input.TargetService == "" {
		writeError(w, "path, method and targetService are required", http.StatusBadRequest)
		return
	}

	route := s.store.CreateAPIRoute(&input)

	if err := s.encodeJSONResponseStatus(w, http.StatusCreated, route); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode created route")
	}
}

func (s *APIServer) updateAPIRoute(w http.ResponseWriter, r *http.Request) {
	var patch models.APIRouteUpdate
	if !decodeBody(w, r, &patch) {
		return
	}

	route, err := s.store.UpdateAPIRoute(pathID(r), &patch)
	if err != nil {
		writeError(w, "API route not found", http.StatusNotFound)
		return
	}

	if encErr := s.encodeJSONResponse(w, route); encErr != nil {
		s.logger.Error().Err(encErr).Msg("Failed to encode updated route")
	}
}

func (s *APIServer) deleteAPIRoute(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteAPIRoute(pathID(r)) {
		writeError(w, "API route not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Test results

func (s *APIServer) getTestResults(w http.ResponseWriter, r *http.Request) {
	results := s.store.TestResults(queryInt(r, "serviceId"))

	if err := s.encodeJSONResponse(w, results); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode test results")
	}
}

func (s *APIServer) getLatestTestResults(w http.ResponseWriter, _ *http.Request) {
	if err := s.encodeJSONResponse(w, s.store.LatestTestResults()); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode latest test results")
	}
}

func (s *APIServer) createTestResult(w http.ResponseWriter, r *http.Request) {
	var input models.TestResultInput
	if !decodeBody(w, r, &input) {
		return
	}

	if input.Framework == "" || input.TestType == "" {
		writeError(w, "framework and testType are required", http.StatusBadRequest)
		return
	}

	result := s.store.CreateTestResult(&input)

	if err := s.encodeJSONResponseStatus(w, http.StatusCreated, result); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode created test result")
	}
}

// Activities

func (s *APIServer) getActivities(w http.ResponseWriter, r *http.Request) {
	activities := s.store.Activities(queryInt(r, "limit"))

	if err := s.encodeJSONResponse(w, activities); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode activities")
	}
}

func (s *APIServer) createActivity(w http.ResponseWriter, r *http.Request) {
	var input models.ActivityInput
	if !decodeBody(w, r, &input) {
		return
	}

	if input.Type == "" || input.Message == "" {
		writeError(w, "type and message are required", http.StatusBadRequest)
		return
	}

	activity := s.store.CreateActivity(&input)

	if err := s.encodeJSONResponseStatus(w, http.StatusCreated, activity); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode created activity")
	}
}

// Stats

func (s *APIServer) getStats(w http.ResponseWriter, _ *http.Request) {
	if err := s.encodeJSONResponse(w, s.core.DashboardStats()); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode stats")
	}
}
