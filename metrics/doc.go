// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics defines the Prometheus collectors and the HTTP metrics
// middleware. Collectors register on the default registry and are served
// at GET /metrics.
package metrics
