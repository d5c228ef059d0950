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

package store

import (
	"sort"
	"sync"
	"time"

	"github.com/simboard/simboard/pkg/models"
)

const (
	defaultMetricsLimit    = 50
	defaultActivitiesLimit = 20
)

// Defaults stamped onto services created without the corresponding field.
const (
	defaultVersion   = "1.0.0"
	defaultProfiles  = "production"
	defaultFramework = "spring-boot"
)

// MemStore is the in-memory Storage implementation. One mutex guards all
// six collections so an update merge commits as a single step and two
// concurrent creates can never allocate the same id. State lives for the
// process lifetime only.
type MemStore struct {
	mu sync.Mutex

	services    map[int]*models.Service
	metrics     map[int]*models.Metric
	deployments map[int]*models.Deployment
	apiRoutes   map[int]*models.APIRoute
	testResults map[int]*models.TestResult
	activities  map[int]*models.Activity

	nextServiceID    int
	nextMetricID     int
	nextDeploymentID int
	nextAPIRouteID   int
	nextTestResultID int
	nextActivityID   int

	now func() time.Time
}

// NewMemStore creates an empty store. Call Seed to load the fixture
// deployment the dashboard starts with.
func NewMemStore() *MemStore {
	return &MemStore{
		services:         make(map[int]*models.Service),
		metrics:          make(map[int]*models.Metric),
		deployments:      make(map[int]*models.Deployment),
		apiRoutes:        make(map[int]*models.APIRoute),
		testResults:      make(map[int]*models.TestResult),
		activities:       make(map[int]*models.Activity),
		nextServiceID:    1,
		nextMetricID:     1,
		nextDeploymentID: 1,
		nextAPIRouteID:   1,
		nextTestResultID: 1,
		nextActivityID:   1,
		now:              time.Now,
	}
}

// Services returns all services in insertion order.
func (s *MemStore) Services() []*models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Service, 0, len(s.services))
	for _, id := range sortedKeys(s.services) {
		out = append(out, s.services[id])
	}

	return out
}

func (s *MemStore) Service(id int) (*models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]

	return svc, ok
}

// CreateService allocates the next service id, stamps timestamps and fills
// unset optional fields with the documented defaults.
func (s *MemStore) CreateService(input *models.ServiceInput) *models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextServiceID
	s.nextServiceID++

	now := s.now()
	svc := &models.Service{
		ID:                id,
		Name:              input.Name,
		Type:              input.Type,
		Status:            input.Status,
		Port:              input.Port,
		CPU:               orInt(input.CPU, 0),
		Memory:            orInt(input.Memory, 0),
		Instances:         orInt(input.Instances, 0),
		Version:           orString(input.Version, defaultVersion),
		SpringBootVersion: input.SpringBootVersion,
		JavaVersion:       input.JavaVersion,
		Framework:         orString(input.Framework, defaultFramework),
		Profiles:          orString(input.Profiles, defaultProfiles),
		ActuatorPort:      input.ActuatorPort,
		Config:            input.Config,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.services[id] = svc

	return svc
}

// UpdateService merges non-nil patch fields over the stored record and
// refreshes UpdatedAt. The merged record is committed under the lock so
// readers never observe a partial merge.
func (s *MemStore) UpdateService(id int, patch *models.ServiceUpdate) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := *svc

	if patch.Name != nil {
		updated.Name = *patch.Name
	}

	if patch.Type != nil {
		updated.Type = *patch.Type
	}

	if patch.Status != nil {
		updated.Status = *patch.Status
	}

	if patch.Port != nil {
		updated.Port = patch.Port
	}

	if patch.CPU != nil {
		updated.CPU = patch.CPU
	}

	if patch.Memory != nil {
		updated.Memory = patch.Memory
	}

	if patch.Instances != nil {
		updated.Instances = patch.Instances
	}

	if patch.Version != nil {
		updated.Version = patch.Version
	}

	if patch.SpringBootVersion != nil {
		updated.SpringBootVersion = patch.SpringBootVersion
	}

	if patch.JavaVersion != nil {
		updated.JavaVersion = patch.JavaVersion
	}

	if patch.Framework != nil {
		updated.Framework = patch.Framework
	}

	if patch.Profiles != nil {
		updated.Profiles = patch.Profiles
	}

	if patch.ActuatorPort != nil {
		updated.ActuatorPort = patch.ActuatorPort
	}

	if patch.Config != nil {
		updated.Config = patch.Config
	}

	updated.UpdatedAt = s.now()
	s.services[id] = &updated

	return &updated, nil
}

// DeleteService removes a service. Metrics, deployments and other records
// referencing it are kept; callers must tolerate the dangling serviceId.
func (s *MemStore) DeleteService(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.services[id]
	delete(s.services, id)

	return ok
}

// Metrics returns samples in insertion order, optionally filtered by
// service, capped to the most recent limit entries.
func (s *MemStore) Metrics(serviceID, limit int) []*models.Metric {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = defaultMetricsLimit
	}

	out := make([]*models.Metric, 0, len(s.metrics))

	for _, id := range sortedKeys(s.metrics) {
		m := s.metrics[id]
		if serviceID != 0 && (m.ServiceID == nil || *m.ServiceID != serviceID) {
			continue
		}

		out = append(out, m)
	}

	if len(out) > limit {
		out = out[len(out)-limit:]
	}

	return out
}

func (s *MemStore) CreateMetric(input *models.MetricInput) *models.Metric {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextMetricID
	s.nextMetricID++

	m := &models.Metric{
		ID:           id,
		ServiceID:    input.ServiceID,
		RequestCount: input.RequestCount,
		ResponseTime: input.ResponseTime,
		ErrorRate:    input.ErrorRate,
		CPU:          input.CPU,
		Memory:       input.Memory,
		Timestamp:    s.now(),
	}
	s.metrics[id] = m

	return m
}

// LatestMetrics returns, for every service currently in the store, that
// service's newest metric. Timestamp ties break toward the higher id so the
// last written sample wins. Services without metrics are omitted; the
// result follows service insertion order.
func (s *MemStore) LatestMetrics() []*models.Metric {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Metric, 0, len(s.services))

	for _, serviceID := range sortedKeys(s.services) {
		var latest *models.Metric

		for _, id := range sortedKeys(s.metrics) {
			m := s.metrics[id]
			if m.ServiceID == nil || *m.ServiceID != serviceID {
				continue
			}

			if latest == nil || m.Timestamp.After(latest.Timestamp) ||
				(m.Timestamp.Equal(latest.Timestamp) && m.ID > latest.ID) {
				latest = m
			}
		}

		if latest != nil {
			out = append(out, latest)
		}
	}

	return out
}

func (s *MemStore) Deployments(serviceID int) []*models.Deployment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Deployment, 0, len(s.deployments))

	for _, id := range sortedKeys(s.deployments) {
		d := s.deployments[id]
		if serviceID != 0 && (d.ServiceID == nil || *d.ServiceID != serviceID) {
			continue
		}

		out = append(out, d)
	}

	return out
}

func (s *MemStore) CreateDeployment(input *models.DeploymentInput) *models.Deployment {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextDeploymentID
	s.nextDeploymentID++

	d := &models.Deployment{
		ID:        id,
		ServiceID: input.ServiceID,
		Version:   input.Version,
		Status:    input.Status,
		Strategy:  input.Strategy,
		Progress:  input.Progress,
		CreatedAt: s.now(),
	}
	s.deployments[id] = d

	return d
}

// UpdateDeployment merges the patch and stamps CompletedAt if and only if
// the incoming status is terminal. A terminal status arriving again
// overwrites the previous completion time; nothing ever clears it.
func (s *MemStore) UpdateDeployment(id int, patch *models.DeploymentUpdate) (*models.Deployment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deployments[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := *d

	if patch.ServiceID != nil {
		updated.ServiceID = patch.ServiceID
	}

	if patch.Version != nil {
		updated.Version = *patch.Version
	}

	if patch.Status != nil {
		updated.Status = *patch.Status

		if *patch.Status == models.DeploymentStatusSuccess || *patch.Status == models.DeploymentStatusFailed {
			completed := s.now()
			updated.CompletedAt = &completed
		}
	}

	if patch.Strategy != nil {
		updated.Strategy = patch.Strategy
	}

	if patch.Progress != nil {
		updated.Progress = patch.Progress
	}

	s.deployments[id] = &updated

	return &updated, nil
}

func (s *MemStore) APIRoutes(gatewayID int) []*models.APIRoute {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.APIRoute, 0, len(s.apiRoutes))

	for _, id := range sortedKeys(s.apiRoutes) {
		r := s.apiRoutes[id]
		if gatewayID != 0 && (r.GatewayID == nil || *r.GatewayID != gatewayID) {
			continue
		}

		out = append(out, r)
	}

	return out
}

func (s *MemStore) CreateAPIRoute(input *models.APIRouteInput) *models.APIRoute {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextAPIRouteID
	s.nextAPIRouteID++

	r := &models.APIRoute{
		ID:            id,
		GatewayID:     input.GatewayID,
		Path:          input.Path,
		Method:        input.Method,
		TargetService: input.TargetService,
		IsActive:      input.IsActive,
		RateLimit:     input.RateLimit,
		Timeout:       input.Timeout,
	}
	s.apiRoutes[id] = r

	return r
}

func (s *MemStore) UpdateAPIRoute(id int, patch *models.APIRouteUpdate) (*models.APIRoute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.apiRoutes[id]
	if !ok {
		return nil, ErrNotFound
	}

	updated := *r

	if patch.GatewayID != nil {
		updated.GatewayID = patch.GatewayID
	}

	if patch.Path != nil {
		updated.Path = *patch.Path
	}

	if patch.Method != nil {
		updated.Method = *patch.Method
	}

	if patch.TargetService != nil {
		updated.TargetService = *patch.TargetService
	}

	if patch.IsActive != nil {
		updated.IsActive = patch.IsActive
	}

	if patch.RateLimit != nil {
		updated.RateLimit = patch.RateLimit
	}

	if patch.Timeout != nil {
		updated.Timeout = patch.Timeout
	}

	s.apiRoutes[id] = &updated

	return &updated, nil
}

func (s *MemStore) DeleteAPIRoute(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.apiRoutes[id]
	delete(s.apiRoutes, id)

	return ok
}

func (s *MemStore) TestResults(serviceID int) []*models.TestResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.TestResult, 0, len(s.testResults))

	for _, id := range sortedKeys(s.testResults) {
		r := s.testResults[id]
		if serviceID != 0 && (r.ServiceID == nil || *r.ServiceID != serviceID) {
			continue
		}

		out = append(out, r)
	}

	return out
}

func (s *MemStore) CreateTestResult(input *models.TestResultInput) *models.TestResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextTestResultID
	s.nextTestResultID++

	r := &models.TestResult{
		ID:        id,
		ServiceID: input.ServiceID,
		Framework: input.Framework,
		TestType:  input.TestType,
		Passed:    input.Passed,
		Failed:    input.Failed,
		Coverage:  input.Coverage,
		Duration:  input.Duration,
		CreatedAt: s.now(),
	}
	s.testResults[id] = r

	return r
}

// LatestTestResults mirrors LatestMetrics over the test-result collection,
// keyed by CreatedAt recency with ties broken by higher id.
func (s *MemStore) LatestTestResults() []*models.TestResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.TestResult, 0, len(s.services))

	for _, serviceID := range sortedKeys(s.services) {
		var latest *models.TestResult

		for _, id := range sortedKeys(s.testResults) {
			r := s.testResults[id]
			if r.ServiceID == nil || *r.ServiceID != serviceID {
				continue
			}

			if latest == nil || r.CreatedAt.After(latest.CreatedAt) ||
				(r.CreatedAt.Equal(latest.CreatedAt) && r.ID > latest.ID) {
				latest = r
			}
		}

		if latest != nil {
			out = append(out, latest)
		}
	}

	return out
}

// Activities returns the newest entries first, capped to limit.
func (s *MemStore) Activities(limit int) []*models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = defaultActivitiesLimit
	}

	ids := sortedKeys(s.activities)

	out := make([]*models.Activity, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, s.activities[ids[i]])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

func (s *MemStore) CreateActivity(input *models.ActivityInput) *models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextActivityID
	s.nextActivityID++

	a := &models.Activity{
		ID:        id,
		Type:      input.Type,
		ServiceID: input.ServiceID,
		Message:   input.Message,
		Severity:  input.Severity,
		CreatedAt: s.now(),
	}
	s.activities[id] = a

	return a
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Ints(keys)

	return keys
}

func orInt(v *int, fallback int) *int {
	if v != nil {
		return v
	}

	return &fallback
}

func orString(v *string, fallback string) *string {
	if v != nil {
		return v
	}

	return &fallback
}
