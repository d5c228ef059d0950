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
	"fmt"
	"net/http"
	"strings"

	"github.com/simboard/simboard/pkg/models"
)

// actuatorMetricNames is the fixed catalog reported by the metrics
// endpoint, mirroring a typical Micrometer registry.
var actuatorMetricNames = []string{
	"jvm.memory.used",
	"jvm.memory.max",
	"jvm.gc.memory.allocated",
	"process.cpu.usage",
	"system.cpu.usage",
	"http.server.requests",
	"spring.data.repository.invocations",
	"cache.gets",
	"cache.puts",
	"datasource.active.connections",
}

// springServices returns the subset of services simulated as Spring Boot
// or Spring Cloud applications, in store order.
func (s *APIServer) springServices() []*models.Service {
	var out []*models.Service

	for _, svc := range s.store.Services() {
		if svc.Framework == nil {
			continue
		}

		if *svc.Framework == "spring-boot" || *svc.Framework == "spring-cloud" {
			out = append(out, svc)
		}
	}

	return out
}

// contextName converts a display name into the lowercase hyphenated form
// used as an application context key.
func contextName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// beanName strips whitespace so the name can be embedded in a Java class
// identifier.
func beanName(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

func (s *APIServer) getActuatorHealth(w http.ResponseWriter, _ *http.Request) {
	springSvcs := s.springServices()

	status := "UP"
	components := make(map[string]interface{}, len(springSvcs))

	for _, svc := range springSvcs {
		componentStatus := "UP"
		if svc.Status != models.ServiceStatusRunning {
			componentStatus = "DOWN"
			status = "DOWN"
		}

		components[contextName(svc.Name)] = map[string]interface{}{
			"status": componentStatus,
			"details": map[string]interface{}{
				"port":              svc.Port,
				"instances":         svc.Instances,
				"version":           svc.Version,
				"springBootVersion": svc.SpringBootVersion,
				"javaVersion":       svc.JavaVersion,
				"profiles":          svc.Profiles,
			},
		}
	}

	resp := map[string]interface{}{
		"status":     status,
		"components": components,
		"groups":     []string{"liveness", "readiness"},
	}

	if err := s.encodeJSONResponse(w, resp); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode health status")
	}
}

func (s *APIServer) getActuatorInfo(w http.ResponseWriter, _ *http.Request) {
	springSvcs := s.springServices()

	services := make([]map[string]interface{}, 0, len(springSvcs))
	for _, svc := range springSvcs {
		services = append(services, map[string]interface{}{
			"name":              svc.Name,
			"version":           svc.Version,
			"springBootVersion": svc.SpringBootVersion,
			"javaVersion":       svc.JavaVersion,
			"status":            svc.Status,
			"port":              svc.Port,
			"actuatorPort":      svc.ActuatorPort,
		})
	}

	resp := map[string]interface{}{
		"app": map[string]interface{}{
			"name":        "Spring Boot Microservices Architecture",
			"version":     "1.0.0",
			"description": "Microservices architecture built with Spring Boot",
		},
		"build": map[string]interface{}{
			"version":  "1.0.0",
			"artifact": "microservices-architecture",
			"name":     "Spring Boot Microservices",
			"time":     "2024-01-15T10:30:00Z",
			"group":    "com.example",
		},
		"git": map[string]interface{}{
			"branch": "main",
			"commit": map[string]interface{}{
				"id":   "abc123def456",
				"time": "2024-01-15T10:00:00Z",
			},
		},
		"services": services,
	}

	if err := s.encodeJSONResponse(w, resp); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode application info")
	}
}

func (s *APIServer) getActuatorMetrics(w http.ResponseWriter, _ *http.Request) {
	resp := map[string]interface{}{"names": actuatorMetricNames}

	if err := s.encodeJSONResponse(w, resp); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode metric names")
	}
}

func (s *APIServer) getActuatorEnv(w http.ResponseWriter, _ *http.Request) {
	springSvcs := s.springServices()

	propertySources := make([]map[string]interface{}, 0, len(springSvcs))
	for _, svc := range springSvcs {
		propertySources = append(propertySources, map[string]interface{}{
			"name": contextName(svc.Name) + "-application.properties",
			"properties": map[string]interface{}{
				"server.port":             map[string]interface{}{"value": svc.Port},
				"spring.profiles.active":  map[string]interface{}{"value": svc.Profiles},
				"spring.application.name": map[string]interface{}{"value": svc.Name},
				"spring.boot.version":     map[string]interface{}{"value": svc.SpringBootVersion},
				"java.version":            map[string]interface{}{"value": svc.JavaVersion},
				"management.endpoints.web.exposure.include": map[string]interface{}{"value": "*"},
				"management.endpoint.health.show-details":   map[string]interface{}{"value": "always"},
			},
		})
	}

	resp := map[string]interface{}{
		"activeProfiles":  []string{"production"},
		"propertySources": propertySources,
	}

	if err := s.encodeJSONResponse(w, resp); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode environment")
	}
}

func (s *APIServer) getActuatorBeans(w http.ResponseWriter, _ *http.Request) {
	contexts := make(map[string]interface{})

	for _, svc := range s.springServices() {
		ctxName := contextName(svc.Name)
		bean := beanName(svc.Name)

		contexts[ctxName] = map[string]interface{}{
			"beans": map[string]interface{}{
				ctxName + "Controller": map[string]interface{}{
					"aliases":      []string{},
					"scope":        "singleton",
					"type":         fmt.Sprintf("com.example.%s.controller.%sController", ctxName, bean),
					"resource":     fmt.Sprintf("file [/app/target/classes/com/example/%s/controller/%sController.class]", ctxName, bean),
					"dependencies": []string{ctxName + "Service"},
				},
				ctxName + "Service": map[string]interface{}{
					"aliases":      []string{},
					"scope":        "singleton",
					"type":         fmt.Sprintf("com.example.%s.service.%sService", ctxName, bean),
					"resource":     fmt.Sprintf("file [/app/target/classes/com/example/%s/service/%sService.class]", ctxName, bean),
					"dependencies": []string{ctxName + "Repository"},
				},
				ctxName + "Repository": map[string]interface{}{
					"aliases":      []string{},
					"scope":        "singleton",
					"type":         fmt.Sprintf("com.example.%s.repository.%sRepository", ctxName, bean),
					"resource":     fmt.Sprintf("file [/app/target/classes/com/example/%s/repository/%sRepository.class]", ctxName, bean),
					"dependencies": []string{},
				},
			},
		}
	}

	if err := s.encodeJSONResponse(w, map[string]interface{}{"contexts": contexts}); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode beans")
	}
}

func (s *APIServer) getActuatorConfigProps(w http.ResponseWriter, _ *http.Request) {
	contexts := make(map[string]interface{})

	for _, svc := range s.springServices() {
		datasource := map[string]interface{}{}
		if spring, ok := svc.Config["spring"].(map[string]interface{}); ok {
			if ds, ok := spring["datasource"].(map[string]interface{}); ok {
				datasource = ds
			}
		}

		contexts[contextName(svc.Name)] = map[string]interface{}{
			"beans": map[string]interface{}{
				"serverProperties": map[string]interface{}{
					"prefix": "server",
					"properties": map[string]interface{}{
						"port": svc.Port,
						"servlet": map[string]interface{}{
							"contextPath": "/",
						},
					},
				},
				"springDataSourceProperties": map[string]interface{}{
					"prefix":     "spring.datasource",
					"properties": datasource,
				},
				"managementServerProperties": map[string]interface{}{
					"prefix": "management.server",
					"properties": map[string]interface{}{
						"port": svc.ActuatorPort,
					},
				},
			},
		}
	}

	if err := s.encodeJSONResponse(w, map[string]interface{}{"contexts": contexts}); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode configuration properties")
	}
}
