// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/constants"
	"github.com/taibuivan/bookshelf/internal/platform/respond"
)

var errEmptyCatalog = errors.New("catalog has no books")

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthDependencies holds the dependency checkers for the /ready endpoint.
// A nil checker means the dependency is not configured and is skipped.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase HealthCheck

	// CheckCache pings the Redis client.
	CheckCache HealthCheck

	// CatalogSize reports how many books are loaded.
	CatalogSize func() int
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		"status":  "ok",
		"app":     constants.AppName,
		"version": constants.AppVersion,
	})
}

// readiness handles GET /ready (Readiness probe).
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 3)
	var failures []apperr.FieldError

	record := func(name string, err error) {
		result := checkResult{Name: name, IsOK: err == nil}
		if err != nil {
			result.Error = err.Error()
			failures = append(failures, apperr.FieldError{Field: name, Message: err.Error()})
			handler.logger.Error("readiness_check_failed", slog.String("dependency", name), slog.Any("error", err))
		}
		results = append(results, result)
	}

	if handler.dependencies.CatalogSize != nil {
		var err error
		if handler.dependencies.CatalogSize() == 0 {
			err = errEmptyCatalog
		}
		record("catalog", err)
	}

	for _, dependency := range []struct {
		name  string
		check HealthCheck
	}{
		{"postgres", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
	} {
		if dependency.check == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(request.Context(), constants.ReadinessTimeout)
		record(dependency.name, dependency.check(ctx))
		cancel()
	}

	if len(failures) > 0 {
		respond.Error(writer, request, apperr.ServiceUnavailable("Service is degraded", failures...))
		return
	}

	respond.OK(writer, map[string]any{"status": "ready", "checks": results})
}
