// Package middleware provides HTTP middleware for the preview server:
// Prometheus request metrics and OpenTelemetry tracing.
//
// Both middlewares follow the functional-option pattern and plug into
// any chi router:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus())
//	r.Use(middleware.OpenTelemetry())
package middleware
