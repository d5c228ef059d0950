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

// Package models defines the shared data types for the simulated
// microservices dashboard.
package models

import "time"

// Service type values.
const (
	ServiceTypeMicroservice = "microservice"
	ServiceTypeGateway      = "gateway"
	ServiceTypeDatabase     = "database"
	ServiceTypeQueue        = "queue"
	ServiceTypeMonitoring   = "monitoring"
)

// Service status values.
const (
	ServiceStatusRunning = "running"
	ServiceStatusStopped = "stopped"
	ServiceStatusPending = "pending"
	ServiceStatusError   = "error"
)

// Deployment status values. A deployment is terminal once it reaches
// success or failed.
const (
	DeploymentStatusPending = "pending"
	DeploymentStatusRunning = "running"
	DeploymentStatusSuccess = "success"
	DeploymentStatusFailed  = "failed"
)

// Deployment strategies.
const (
	StrategyRolling   = "rolling"
	StrategyBlueGreen = "blue-green"
	StrategyCanary    = "canary"
)

// Activity types.
const (
	ActivityServiceStart = "service_start"
	ActivityServiceStop  = "service_stop"
	ActivityDeployment   = "deployment"
)

// Activity severities.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
	SeveritySuccess = "success"
)

// Service is a simulated running component. Identifier assignment and
// timestamp stamping are owned by the store; nil pointer fields render as
// JSON null to match the dashboard wire format.
type Service struct {
	ID                int                    `json:"id"`
	Name              string                 `json:"name"`
	Type              string                 `json:"type"`
	Status            string                 `json:"status"`
	Port              *int                   `json:"port"`
	CPU               *int                   `json:"cpu"`
	Memory            *int                   `json:"memory"`
	Instances         *int                   `json:"instances"`
	Version           *string                `json:"version"`
	SpringBootVersion *string                `json:"springBootVersion"`
	JavaVersion       *string                `json:"javaVersion"`
	Framework         *string                `json:"framework"`
	Profiles          *string                `json:"profiles"`
	ActuatorPort      *int                   `json:"actuatorPort"`
	Config            map[string]interface{} `json:"config"`
	CreatedAt         time.Time              `json:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt"`
}

// Metric is one timestamped sample of a service's load gauges. Metrics are
// append-only; ErrorRate is stored in basis points (percentage * 100).
type Metric struct {
	ID           int       `json:"id"`
	ServiceID    *int      `json:"serviceId"`
	RequestCount int       `json:"requestCount"`
	ResponseTime int       `json:"responseTime"`
	ErrorRate    int       `json:"errorRate"`
	CPU          int       `json:"cpu"`
	Memory       int       `json:"memory"`
	Timestamp    time.Time `json:"timestamp"`
}

// Deployment is a simulated rollout record. CompletedAt is nil until the
// deployment first transitions into a terminal status.
type Deployment struct {
	ID          int        `json:"id"`
	ServiceID   *int       `json:"serviceId"`
	Version     string     `json:"version"`
	Status      string     `json:"status"`
	Strategy    *string    `json:"strategy"`
	Progress    *int       `json:"progress"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// APIRoute is a simulated gateway routing rule.
type APIRoute struct {
	ID            int    `json:"id"`
	GatewayID     *int   `json:"gatewayId"`
	Path          string `json:"path"`
	Method        string `json:"method"`
	TargetService string `json:"targetService"`
	IsActive      *bool  `json:"isActive"`
	RateLimit     *int   `json:"rateLimit"`
	Timeout       *int   `json:"timeout"`
}

// TestResult records one simulated test run. Append-only.
type TestResult struct {
	ID        int       `json:"id"`
	ServiceID *int      `json:"serviceId"`
	Framework string    `json:"framework"`
	TestType  string    `json:"testType"`
	Passed    *int      `json:"passed"`
	Failed    *int      `json:"failed"`
	Coverage  *int      `json:"coverage"`
	Duration  *int      `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
}

// Activity is an audit-log entry describing a notable state change.
type Activity struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	ServiceID *int      `json:"serviceId"`
	Message   string    `json:"message"`
	Severity  *string   `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardStats is the aggregate projection served by /api/stats. It is
// recomputed from the store on every call.
type DashboardStats struct {
	ActiveServices int    `json:"activeServices"`
	APIRequests    int    `json:"apiRequests"`
	ResponseTime   string `json:"responseTime"`
	ErrorRate      string `json:"errorRate"`
	ErrorCount     int    `json:"errorCount"`
}

// StatsSnapshot is the randomly sampled figure set broadcast with
// metrics_update events. It is intentionally not derived from
// DashboardStats; the active service count is the only real value.
type StatsSnapshot struct {
	ActiveServices int    `json:"activeServices"`
	APIRequests    int    `json:"apiRequests"`
	ResponseTime   string `json:"responseTime"`
	ErrorRate      string `json:"errorRate"`
}

// ErrorResponse is the JSON body written for failed API requests.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// CORSConfig defines allowed origins for both the REST surface and the
// WebSocket upgrade check.
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
}
