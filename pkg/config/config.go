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

// Package config loads the dashboard configuration from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/simboard/simboard/pkg/logger"
	"github.com/simboard/simboard/pkg/models"
)

var errInvalidInterval = errors.New("broadcast intervals and restart delay must be positive")

// Defaults applied by Normalize when the config file leaves fields unset.
const (
	DefaultListenAddr       = ":8080"
	DefaultMetricsInterval  = 5 * time.Second
	DefaultServicesInterval = 3 * time.Second
	DefaultRestartDelay     = 2 * time.Second
)

// Config is the process configuration for the dashboard server.
type Config struct {
	ListenAddr string            `json:"listen_addr"`
	CORS       models.CORSConfig `json:"cors"`
	Logging    *logger.Config    `json:"logging,omitempty"`

	// MetricsInterval paces synthetic telemetry generation and the
	// metrics_update push; ServicesInterval paces the services_update push.
	MetricsInterval  models.Duration `json:"metrics_interval,omitempty"`
	ServicesInterval models.Duration `json:"services_interval,omitempty"`

	// RestartDelay is how long a restarted service stays pending before the
	// deferred follow-up flips it back to running.
	RestartDelay models.Duration `json:"restart_delay,omitempty"`
}

// LoadFile reads and unmarshals a JSON config file, then normalizes it.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	return cfg.Normalize()
}

// Normalize fills unset fields with defaults and validates the result.
func (c *Config) Normalize() error {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}

	if c.MetricsInterval == 0 {
		c.MetricsInterval = models.Duration(DefaultMetricsInterval)
	}

	if c.ServicesInterval == 0 {
		c.ServicesInterval = models.Duration(DefaultServicesInterval)
	}

	if c.RestartDelay == 0 {
		c.RestartDelay = models.Duration(DefaultRestartDelay)
	}

	if c.MetricsInterval < 0 || c.ServicesInterval < 0 || c.RestartDelay < 0 {
		return errInvalidInterval
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}

	return nil
}
