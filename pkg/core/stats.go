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

package core

import (
	"fmt"
	"math"

	"github.com/simboard/simboard/pkg/models"
)

// errorWindowSize caps how far back the error count looks in the activity
// log.
const errorWindowSize = 100

// DashboardStats recomputes the aggregate projection from the current
// store contents. Averages are taken over the latest-metric-per-service
// projection, not over all historical samples.
func (s *Server) DashboardStats() *models.DashboardStats {
	services := s.store.Services()
	latest := s.store.LatestMetrics()
	recent := s.store.Activities(errorWindowSize)

	active := 0

	for _, svc := range services {
		if svc.Status == models.ServiceStatusRunning {
			active++
		}
	}

	totalRequests := 0
	totalResponseTime := 0
	totalErrorRate := 0

	for _, m := range latest {
		totalRequests += m.RequestCount
		totalResponseTime += m.ResponseTime
		totalErrorRate += m.ErrorRate
	}

	avgResponseTime := 0
	avgErrorRate := 0.0

	if len(latest) > 0 {
		avgResponseTime = int(math.Round(float64(totalResponseTime) / float64(len(latest))))
		// Error rates are stored in basis points; divide back to percent.
		avgErrorRate = float64(totalErrorRate) / float64(len(latest)) / 100
	}

	errorCount := 0

	for _, a := range recent {
		if a.Severity != nil && *a.Severity == models.SeverityError {
			errorCount++
		}
	}

	return &models.DashboardStats{
		ActiveServices: active,
		APIRequests:    totalRequests,
		ResponseTime:   fmt.Sprintf("%dms", avgResponseTime),
		ErrorRate:      fmt.Sprintf("%.1f%%", avgErrorRate),
		ErrorCount:     errorCount,
	}
}
