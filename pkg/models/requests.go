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

package models

// ServiceInput is the payload for creating a service. Name, Type and Status
// are required; the store fills documented defaults for the rest.
type ServiceInput struct {
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
}

// ServiceUpdate is a partial patch for a service. Nil fields are left
// untouched by the merge.
type ServiceUpdate struct {
	Name              *string                `json:"name"`
	Type              *string                `json:"type"`
	Status            *string                `json:"status"`
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
}

// MetricInput is the payload for recording a metric sample.
type MetricInput struct {
	ServiceID    *int `json:"serviceId"`
	RequestCount int  `json:"requestCount"`
	ResponseTime int  `json:"responseTime"`
	ErrorRate    int  `json:"errorRate"`
	CPU          int  `json:"cpu"`
	Memory       int  `json:"memory"`
}

// DeploymentInput is the payload for creating a deployment.
type DeploymentInput struct {
	ServiceID *int    `json:"serviceId"`
	Version   string  `json:"version"`
	Status    string  `json:"status"`
	Strategy  *string `json:"strategy"`
	Progress  *int    `json:"progress"`
}

// DeploymentUpdate is a partial patch for a deployment. Setting Status to a
// terminal value stamps CompletedAt.
type DeploymentUpdate struct {
	ServiceID *int    `json:"serviceId"`
	Version   *string `json:"version"`
	Status    *string `json:"status"`
	Strategy  *string `json:"strategy"`
	Progress  *int    `json:"progress"`
}

// APIRouteInput is the payload for creating a gateway route.
type APIRouteInput struct {
	GatewayID     *int   `json:"gatewayId"`
	Path          string `json:"path"`
	Method        string `json:"method"`
	TargetService string `json:"targetService"`
	IsActive      *bool  `json:"isActive"`
	RateLimit     *int   `json:"rateLimit"`
	Timeout       *int   `json:"timeout"`
}

// APIRouteUpdate is a partial patch for a gateway route.
type APIRouteUpdate struct {
	GatewayID     *int    `json:"gatewayId"`
	Path          *string `json:"path"`
	Method        *string `json:"method"`
	TargetService *string `json:"targetService"`
	IsActive      *bool   `json:"isActive"`
	RateLimit     *int    `json:"rateLimit"`
	Timeout       *int    `json:"timeout"`
}

// TestResultInput is the payload for recording a test run.
type TestResultInput struct {
	ServiceID *int   `json:"serviceId"`
	Framework string `json:"framework"`
	TestType  string `json:"testType"`
	Passed    *int   `json:"passed"`
	Failed    *int   `json:"failed"`
	Coverage  *int   `json:"coverage"`
	Duration  *int   `json:"duration"`
}

// ActivityInput is the payload for appending an audit-log entry.
type ActivityInput struct {
	Type      string  `json:"type"`
	ServiceID *int    `json:"serviceId"`
	Message   string  `json:"message"`
	Severity  *string `json:"severity"`
}
