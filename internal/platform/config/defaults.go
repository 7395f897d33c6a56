package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultDatabasePort     = 5432
	defaultDatabaseMaxConns = 10
	defaultDatabaseMinConns = 2
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.enabled":            false,
		"database.host":               "localhost",
		"database.port":               defaultDatabasePort,
		"database.user":               "lifecycle",
		"database.password":           "",
		"database.name":               "lifecycle",
		"database.ssl_mode":           "disable",
		"database.max_conns":          defaultDatabaseMaxConns,
		"database.min_conns":          defaultDatabaseMinConns,
		"database.conn_max_lifetime":  "30m",
		"database.conn_max_idle_time": "5m",

		"sweep.enabled":  true,
		"sweep.interval": "1h",

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}

	clientDefaults(d, "directory", "http://localhost:8081")
	clientDefaults(d, "payroll", "http://localhost:8082")
	clientDefaults(d, "templates", "http://localhost:8083")
	d["clients.directory.enabled"] = true
	d["clients.payroll.enabled"] = true
	d["clients.templates.enabled"] = false

	return d
}

func clientDefaults(d map[string]any, name, baseURL string) {
	prefix := "clients." + name

	d[prefix+".base_url"] = baseURL
	d[prefix+".timeout"] = "30s"
	d[prefix+".retry.max_attempts"] = defaultRetryMaxAttempts
	d[prefix+".retry.initial_interval"] = "100ms"
	d[prefix+".retry.max_interval"] = "10s"
	d[prefix+".retry.multiplier"] = defaultRetryMultiplier
	d[prefix+".circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
	d[prefix+".circuit_breaker.timeout"] = "30s"
	d[prefix+".circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
	d[prefix+".rate_limit.requests_per_second"] = 0.0
	d[prefix+".rate_limit.burst_size"] = 1
}
