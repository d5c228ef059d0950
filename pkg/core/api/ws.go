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
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// StreamMessage represents a message sent over the WebSocket.
type StreamMessage struct {
	Type    string      `json:"type"` // "connected", "metrics_update", "services_update"
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// handleWebSocket upgrades the connection and pushes periodic snapshots
// to the client. Each connection gets its own timers so clients that
// connect at different times see independently phased updates.
func (s *APIServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return s.checkWebSocketOrigin(r)
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("remote_addr", r.RemoteAddr).
			Str("origin", r.Header.Get("Origin")).
			Msg("Failed to upgrade to WebSocket")

		return
	}

	connID := uuid.New().String()

	s.logger.Info().
		Str("connection_id", connID).
		Str("remote_addr", r.RemoteAddr).
		Msg("WebSocket connection established")

	defer func() {
		s.logger.Debug().
			Str("connection_id", connID).
			Msg("Closing WebSocket connection")
		conn.Close()
	}()

	if err := conn.WriteJSON(StreamMessage{Type: "connected", Message: "WebSocket connected"}); err != nil {
		s.logger.Error().
			Err(err).
			Str("connection_id", connID).
			Msg("Failed to send connected message")

		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader goroutine detects disconnects; incoming payloads are
	// drained and ignored.
	go s.readClientMessages(conn, connID, cancel)

	metricsTicker := time.NewTicker(s.metricsInterval)
	defer metricsTicker.Stop()

	servicesTicker := time.NewTicker(s.servicesInterval)
	defer servicesTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-metricsTicker.C:
			snapshot := s.core.GenerateTelemetry()

			if err := conn.WriteJSON(StreamMessage{Type: "metrics_update", Data: snapshot}); err != nil {
				s.logger.Debug().
					Err(err).
					Str("connection_id", connID).
					Msg("Failed to send metrics update")

				return
			}
		case <-servicesTicker.C:
			if err := conn.WriteJSON(StreamMessage{Type: "services_update", Data: s.store.Services()}); err != nil {
				s.logger.Debug().
					Err(err).
					Str("connection_id", connID).
					Msg("Failed to send services update")

				return
			}
		}
	}
}

// readClientMessages reads messages from the client for disconnect
// detection and cancels the stream when the connection drops. Clients
// are not expected to send anything; whatever arrives is discarded.
func (s *APIServer) readClientMessages(conn *websocket.Conn, connID string, cancel context.CancelFunc) {
	defer cancel()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn().
					Err(err).
					Str("connection_id", connID).
					Msg("WebSocket closed unexpectedly")
			} else {
				s.logger.Debug().
					Str("connection_id", connID).
					Msg("WebSocket client disconnected")
			}

			return
		}
	}
}

// checkWebSocketOrigin validates the WebSocket origin against the CORS
// configuration, matching the middleware logic for plain HTTP requests.
func (s *APIServer) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	for _, allowed := range s.corsConfig.AllowedOrigins {
		if allowed == origin || allowed == "*" {
			return true
		}
	}

	s.logger.Warn().
		Str("origin", origin).
		Interface("allowed_origins", s.corsConfig.AllowedOrigins).
		Msg("WebSocket origin not allowed")

	return false
}
