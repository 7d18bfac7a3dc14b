// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Tracing

RequestID stores an X-Request-ID in the request context so that
logger.FromContext tags every line with it. WithLogging logs request start
and completion (status, duration_ms):

	r.Use(middleware.RequestID, middleware.WithLogging)

# CORS Middleware

CORS allows cross-origin access from the frontend, including the
X-Session-Key and Authorization headers.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "session not found")
	middleware.FieldErrorResponse(w, http.StatusBadRequest, "validation failed", fields)

ParseJSONBody decodes a request body of at most 1 MiB.
*/
package middleware
