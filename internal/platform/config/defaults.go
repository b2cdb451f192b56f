package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitPerSecond = 10.0
	defaultRateLimitBurst     = 5

	defaultMaxAttachmentBytes = 8 << 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"registry.base_url":                        "http://localhost:8081",
		"registry.timeout":                         "30s",
		"registry.retry.max_attempts":              defaultRetryMaxAttempts,
		"registry.retry.initial_interval":          "100ms",
		"registry.retry.max_interval":              "10s",
		"registry.retry.multiplier":                defaultRetryMultiplier,
		"registry.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"registry.circuit_breaker.timeout":         "30s",
		"registry.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"registry.rate_limit.requests_per_second":  defaultRateLimitPerSecond,
		"registry.rate_limit.burst_size":           defaultRateLimitBurst,

		"uploads.max_attachment_bytes": defaultMaxAttachmentBytes,

		"export.filename_prefix": "glow_tours",

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
