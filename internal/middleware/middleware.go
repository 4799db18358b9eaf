// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request IDs, request-scoped logging, CORS, body
// limits, rate limiting, secure headers, panic recovery and the final
// translation of errors into API responses.
package middleware
