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

// Package core implements the dashboard's control surface: service
// lifecycle operations, derived statistics and synthetic telemetry over
// the entity store.
package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/simboard/simboard/pkg/logger"
	"github.com/simboard/simboard/pkg/models"
	"github.com/simboard/simboard/pkg/store"
)

const defaultRestartDelay = 2 * time.Second

// Server combines entity-store writes with activity-log side effects and
// owns the deferred restart follow-ups.
type Server struct {
	store  store.Storage
	logger logger.Logger

	restartDelay time.Duration

	mu       sync.Mutex
	restarts map[int]*time.Timer
	closed   bool
}

// NewServer creates a core server around the given store.
func NewServer(st store.Storage, log logger.Logger, options ...func(*Server)) *Server {
	s := &Server{
		store:        st,
		logger:       log,
		restartDelay: defaultRestartDelay,
		restarts:     make(map[int]*time.Timer),
	}

	for _, o := range options {
		o(s)
	}

	return s
}

// WithRestartDelay overrides how long a restarted service stays pending.
func WithRestartDelay(d time.Duration) func(*Server) {
	return func(s *Server) {
		s.restartDelay = d
	}
}

// Store exposes the underlying entity store for read-only collaborators.
func (s *Server) Store() store.Storage {
	return s.store
}

// Close cancels every pending restart follow-up. Idempotent.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true

	for id, timer := range s.restarts {
		timer.Stop()
		delete(s.restarts, id)
	}
}

// CreateService stores a new service and records its creation in the
// activity log.
func (s *Server) CreateService(input *models.ServiceInput) *models.Service {
	svc := s.store.CreateService(input)

	severity := models.SeveritySuccess
	s.store.CreateActivity(&models.ActivityInput{
		Type:      models.ActivityServiceStart,
		ServiceID: &svc.ID,
		Message:   fmt.Sprintf("Service %s created successfully", svc.Name),
		Severity:  &severity,
	})

	s.logger.Info().Int("service_id", svc.ID).Str("name", svc.Name).Msg("Service created")

	return svc
}

// StartService marks a service running and logs a success activity. The
// operation succeeds even when the service is already running.
func (s *Server) StartService(id int) (*models.Service, error) {
	status := models.ServiceStatusRunning

	svc, err := s.store.UpdateService(id, &models.ServiceUpdate{Status: &status})
	if err != nil {
		return nil, err
	}

	severity := models.SeveritySuccess
	s.store.CreateActivity(&models.ActivityInput{
		Type:      models.ActivityServiceStart,
		ServiceID: &id,
		Message:   fmt.Sprintf("Service %s started", svc.Name),
		Severity:  &severity,
	})

	return svc, nil
}

// StopService marks a service stopped and logs a warning activity. Stopping
// an already stopped service still succeeds and still appends an activity.
func (s *Server) StopService(id int) (*models.Service, error) {
	status := models.ServiceStatusStopped

	svc, err := s.store.UpdateService(id, &models.ServiceUpdate{Status: &status})
	if err != nil {
		return nil, err
	}

	severity := models.SeverityWarning
	s.store.CreateActivity(&models.ActivityInput{
		Type:      models.ActivityServiceStop,
		ServiceID: &id,
		Message:   fmt.Sprintf("Service %s stopped", svc.Name),
		Severity:  &severity,
	})

	return svc, nil
}

// RestartService marks the service pending, then schedules a fire-and-forget
// follow-up that flips it back to running after the restart delay. The
// follow-up is keyed by service id so deleting the service, or restarting it
// again, cancels the pending one; a follow-up firing after deletion no-ops.
func (s *Server) RestartService(id int) (*models.Service, error) {
	status := models.ServiceStatusPending

	svc, err := s.store.UpdateService(id, &models.ServiceUpdate{Status: &status})
	if err != nil {
		return nil, err
	}

	severity := models.SeverityInfo
	s.store.CreateActivity(&models.ActivityInput{
		Type:      models.ActivityServiceStart,
		ServiceID: &id,
		Message:   fmt.Sprintf("Service %s restarting", svc.Name),
		Severity:  &severity,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return svc, nil
	}

	if pending, ok := s.restarts[id]; ok {
		pending.Stop()
	}

	s.restarts[id] = time.AfterFunc(s.restartDelay, func() {
		s.completeRestart(id)
	})

	return svc, nil
}

// completeRestart is the deferred half of RestartService.
func (s *Server) completeRestart(id int) {
	s.mu.Lock()
	delete(s.restarts, id)
	s.mu.Unlock()

	status := models.ServiceStatusRunning

	if _, err := s.store.UpdateService(id, &models.ServiceUpdate{Status: &status}); err != nil {
		// Service deleted while the restart was pending; nothing to do.
		s.logger.Debug().Int("service_id", id).Msg("Restart follow-up found no service")
		return
	}

	s.logger.Info().Int("service_id", id).Msg("Service restart completed")
}

// DeleteService removes the service and cancels any pending restart
// follow-up targeting it.
func (s *Server) DeleteService(id int) bool {
	s.mu.Lock()

	if pending, ok := s.restarts[id]; ok {
		pending.Stop()
		delete(s.restarts, id)
	}

	s.mu.Unlock()

	return s.store.DeleteService(id)
}

// CreateDeployment stores a new deployment and records it in the activity
// log.
func (s *Server) CreateDeployment(input *models.DeploymentInput) *models.Deployment {
	d := s.store.CreateDeployment(input)

	severity := models.SeverityInfo
	s.store.CreateActivity(&models.ActivityInput{
		Type:      models.ActivityDeployment,
		ServiceID: d.ServiceID,
		Message:   fmt.Sprintf("Deployment started for version %s", d.Version),
		Severity:  &severity,
	})

	return d
}
