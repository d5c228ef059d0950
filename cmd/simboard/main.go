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

package main

import (
	"context"
	"errors"
	"flag"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simboard/simboard/pkg/config"
	"github.com/simboard/simboard/pkg/core"
	"github.com/simboard/simboard/pkg/core/api"
	"github.com/simboard/simboard/pkg/logger"
	"github.com/simboard/simboard/pkg/store"
	"github.com/simboard/simboard/pkg/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		stdlog.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to config file (optional)")
	flag.Parse()

	var cfg config.Config

	if *configPath != "" {
		if err := config.LoadFile(*configPath, &cfg); err != nil {
			return err
		}
	} else if err := cfg.Normalize(); err != nil {
		return err
	}

	logCfg := cfg.Logging
	if logCfg == nil {
		logCfg = logger.DefaultConfig()
	}

	log, err := logger.NewLogger(logCfg)
	if err != nil {
		return err
	}

	log.Info().Str("version", version.GetFullVersion()).Msg("Starting simboard")

	st := store.NewMemStore()
	st.Seed()

	coreSrv := core.NewServer(st, log,
		core.WithRestartDelay(time.Duration(cfg.RestartDelay)))
	defer coreSrv.Close()

	apiSrv := api.NewAPIServer(coreSrv, cfg.CORS,
		api.WithLogger(log),
		api.WithBroadcastIntervals(
			time.Duration(cfg.MetricsInterval),
			time.Duration(cfg.ServicesInterval)))

	errCh := make(chan error, 1)

	go func() {
		if srvErr := apiSrv.Start(cfg.ListenAddr); srvErr != nil && !errors.Is(srvErr, http.ErrServerClosed) {
			errCh <- srvErr
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return apiSrv.Shutdown(ctx)
}
