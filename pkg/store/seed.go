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

import "github.com/simboard/simboard/pkg/models"

// Seed loads the fixture deployment the dashboard presents at startup: an
// API gateway, three microservices, a database, a message queue and a
// discovery service. Safe to call once on an empty store.
func (s *MemStore) Seed() {
	fixtures := []*models.ServiceInput{
		{
			Name:              "API Gateway",
			Type:              models.ServiceTypeGateway,
			Status:            models.ServiceStatusRunning,
			Port:              intPtr(8080),
			CPU:               intPtr(25),
			Memory:            intPtr(45),
			Instances:         intPtr(2),
			Version:           strPtr("1.2.0"),
			SpringBootVersion: strPtr("3.2.0"),
			JavaVersion:       strPtr("17"),
			Framework:         strPtr("spring-cloud"),
			Profiles:          strPtr("production"),
			ActuatorPort:      intPtr(8081),
			Config: map[string]interface{}{
				"rateLimit": 1000,
				"timeout":   30000,
				"eureka":    map[string]interface{}{"client": map[string]interface{}{"enabled": true}},
				"management": map[string]interface{}{
					"endpoints": map[string]interface{}{
						"web": map[string]interface{}{"exposure": map[string]interface{}{"include": "*"}},
					},
				},
			},
		},
		{
			Name:              "User Service",
			Type:              models.ServiceTypeMicroservice,
			Status:            models.ServiceStatusRunning,
			Port:              intPtr(8082),
			CPU:               intPtr(45),
			Memory:            intPtr(67),
			Instances:         intPtr(3),
			Version:           strPtr("1.1.0"),
			SpringBootVersion: strPtr("3.2.0"),
			JavaVersion:       strPtr("17"),
			Framework:         strPtr("spring-boot"),
			Profiles:          strPtr("production"),
			ActuatorPort:      intPtr(8083),
			Config: map[string]interface{}{
				"database": "users_db",
				"spring": map[string]interface{}{
					"datasource": map[string]interface{}{"url": "jdbc:postgresql://localhost:5432/users_db"},
					"jpa":        map[string]interface{}{"hibernate": map[string]interface{}{"ddl_auto": "validate"}},
				},
			},
		},
		{
			Name:              "Order Service",
			Type:              models.ServiceTypeMicroservice,
			Status:            models.ServiceStatusRunning,
			Port:              intPtr(8084),
			CPU:               intPtr(23),
			Memory:            intPtr(45),
			Instances:         intPtr(2),
			Version:           strPtr("1.0.5"),
			SpringBootVersion: strPtr("3.1.5"),
			JavaVersion:       strPtr("17"),
			Framework:         strPtr("spring-boot"),
			Profiles:          strPtr("production"),
			ActuatorPort:      intPtr(8085),
			Config: map[string]interface{}{
				"database": "orders_db",
				"spring": map[string]interface{}{
					"datasource": map[string]interface{}{"url": "jdbc:postgresql://localhost:5432/orders_db"},
					"kafka":      map[string]interface{}{"bootstrap_servers": "localhost:9092"},
				},
			},
		},
		{
			Name:              "Payment Service",
			Type:              models.ServiceTypeMicroservice,
			Status:            models.ServiceStatusRunning,
			Port:              intPtr(8086),
			CPU:               intPtr(78),
			Memory:            intPtr(89),
			Instances:         intPtr(2),
			Version:           strPtr("1.0.3"),
			SpringBootVersion: strPtr("3.2.0"),
			JavaVersion:       strPtr("17"),
			Framework:         strPtr("spring-boot"),
			Profiles:          strPtr("production"),
			ActuatorPort:      intPtr(8087),
			Config: map[string]interface{}{
				"provider": "stripe",
				"spring": map[string]interface{}{
					"datasource": map[string]interface{}{"url": "jdbc:postgresql://localhost:5432/payments_db"},
					"security":   map[string]interface{}{"oauth2": map[string]interface{}{"enabled": true}},
				},
			},
		},
		{
			Name:      "Database",
			Type:      models.ServiceTypeDatabase,
			Status:    models.ServiceStatusRunning,
			Port:      intPtr(5432),
			CPU:       intPtr(35),
			Memory:    intPtr(60),
			Instances: intPtr(1),
			Version:   strPtr("14.0"),
			Framework: strPtr("postgresql"),
			Profiles:  strPtr("production"),
			Config: map[string]interface{}{
				"type":            "postgresql",
				"max_connections": 200,
			},
		},
		{
			Name:      "Message Queue",
			Type:      models.ServiceTypeQueue,
			Status:    models.ServiceStatusRunning,
			Port:      intPtr(9092),
			CPU:       intPtr(15),
			Memory:    intPtr(30),
			Instances: intPtr(1),
			Version:   strPtr("3.6.0"),
			Framework: strPtr("kafka"),
			Profiles:  strPtr("production"),
			Config: map[string]interface{}{
				"type":               "kafka",
				"partitions":         3,
				"replication_factor": 1,
			},
		},
		{
			Name:              "Service Discovery",
			Type:              models.ServiceTypeMonitoring,
			Status:            models.ServiceStatusRunning,
			Port:              intPtr(8761),
			CPU:               intPtr(20),
			Memory:            intPtr(40),
			Instances:         intPtr(1),
			Version:           strPtr("2023.0.0"),
			SpringBootVersion: strPtr("3.2.0"),
			JavaVersion:       strPtr("17"),
			Framework:         strPtr("spring-cloud"),
			Profiles:          strPtr("production"),
			ActuatorPort:      intPtr(8762),
			Config: map[string]interface{}{
				"type": "eureka",
				"eureka": map[string]interface{}{
					"client": map[string]interface{}{"register_with_eureka": false, "fetch_registry": false},
					"server": map[string]interface{}{"enable_self_preservation": false},
				},
			},
		},
	}

	for _, fixture := range fixtures {
		s.CreateService(fixture)
	}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
