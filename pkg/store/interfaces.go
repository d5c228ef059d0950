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

//go:generate mockgen -destination=mock_store.go -package=store github.com/simboard/simboard/pkg/store Storage

// Package store holds the in-memory entity collections backing the
// dashboard: services, metrics, deployments, API routes, test results and
// the activity log.
package store

import (
	"errors"

	"github.com/simboard/simboard/pkg/models"
)

// ErrNotFound is returned by update operations addressing an absent id.
var ErrNotFound = errors.New("not found")

// Storage is the entity store contract. Identifiers are positive, unique
// per collection, strictly increasing and never reused. Cross-collection
// references are not enforced; callers must tolerate dangling ids.
type Storage interface {
	// Services.
	Services() []*models.Service
	Service(id int) (*models.Service, bool)
	CreateService(input *models.ServiceInput) *models.Service
	UpdateService(id int, patch *models.ServiceUpdate) (*models.Service, error)
	DeleteService(id int) bool

	// Metrics. A serviceID of 0 means no filter; a limit of 0 selects the
	// default cap of the most recent 50 samples, kept in insertion order.
	Metrics(serviceID, limit int) []*models.Metric
	CreateMetric(input *models.MetricInput) *models.Metric
	LatestMetrics() []*models.Metric

	// Deployments.
	Deployments(serviceID int) []*models.Deployment
	CreateDeployment(input *models.DeploymentInput) *models.Deployment
	UpdateDeployment(id int, patch *models.DeploymentUpdate) (*models.Deployment, error)

	// API routes.
	APIRoutes(gatewayID int) []*models.APIRoute
	CreateAPIRoute(input *models.APIRouteInput) *models.APIRoute
	UpdateAPIRoute(id int, patch *models.APIRouteUpdate) (*models.APIRoute, error)
	DeleteAPIRoute(id int) bool

	// Test results.
	TestResults(serviceID int) []*models.TestResult
	CreateTestResult(input *models.TestResultInput) *models.TestResult
	LatestTestResults() []*models.TestResult

	// Activities, most recent first. A limit of 0 selects the default of 20.
	Activities(limit int) []*models.Activity
	CreateActivity(input *models.ActivityInput) *models.Activity
}
