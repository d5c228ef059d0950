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
	"math/rand"

	"github.com/simboard/simboard/pkg/models"
)

// Bounds for the synthetic per-service metric samples.
const (
	requestCountBase = 50
	requestCountSpan = 100
	responseTimeBase = 50
	responseTimeSpan = 200
	errorRateSpanBp  = 500
	cpuBase          = 20
	cpuSpan          = 50
	memoryBase       = 30
	memorySpan       = 40
)

// Bounds for the broadcast stats snapshot.
const (
	snapshotRequestsBase     = 1000
	snapshotRequestsSpan     = 500
	snapshotResponseTimeBase = 100
	snapshotResponseTimeSpan = 50
	snapshotErrorRateSpanPct = 0.5
)

// GenerateTelemetry fabricates one metric sample per running service and
// returns a stats snapshot for broadcast. The snapshot's request, response
// time and error rate figures are freshly randomized rather than derived
// from the samples just written; only the active service count is real.
func (s *Server) GenerateTelemetry() *models.StatsSnapshot {
	services := s.store.Services()

	active := 0

	for _, svc := range services {
		if svc.Status != models.ServiceStatusRunning {
			continue
		}

		active++
		s.recordSample(svc)
	}

	return &models.StatsSnapshot{
		ActiveServices: active,
		APIRequests:    snapshotRequestsBase + rand.Intn(snapshotRequestsSpan),
		ResponseTime:   fmt.Sprintf("%dms", snapshotResponseTimeBase+rand.Intn(snapshotResponseTimeSpan)),
		ErrorRate:      fmt.Sprintf("%.1f%%", rand.Float64()*snapshotErrorRateSpanPct),
	}
}

func (s *Server) recordSample(svc *models.Service) {
	s.store.CreateMetric(&models.MetricInput{
		ServiceID:    &svc.ID,
		RequestCount: requestCountBase + rand.Intn(requestCountSpan),
		ResponseTime: responseTimeBase + rand.Intn(responseTimeSpan),
		ErrorRate:    rand.Intn(errorRateSpanBp),
		CPU:          cpuBase + rand.Intn(cpuSpan),
		Memory:       memoryBase + rand.Intn(memorySpan),
	})
}
