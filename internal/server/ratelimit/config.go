package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the request budget for one endpoint: Limit requests per
// Window, with Burst as the bucket capacity (Limit when zero). A path ending
// in "/" matches as a prefix, covering routes like /export/{format}.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config is the limiter's full configuration. Endpoints without an explicit
// budget fall back to DefaultLimit per DefaultWindow.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// match returns the budget for a request: exact path match first, then
// prefix rules, then the default budget. The health check is never limited,
// so liveness checks keep working while a client is throttled.
func (c *Config) match(path, method string) EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		return EndpointConfig{}
	}
	for _, budget := range c.EndpointConfigs {
		if budget.Method == method && budget.Path == path {
			return budget
		}
	}
	for _, budget := range c.EndpointConfigs {
		if budget.Method == method && strings.HasSuffix(budget.Path, "/") &&
			strings.HasPrefix(path, budget.Path) {
			return budget
		}
	}
	return EndpointConfig{Limit: c.DefaultLimit, Window: c.DefaultWindow}
}

// LoadConfig reads the limiter settings from RATE_LIMIT_* environment
// variables, falling back to the built-in budgets.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       clientSet(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       clientSet(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: Parse-heavy operations (strictest limits)
		{Path: "/parse", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/score/advanced", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/export/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Tier 2: Write operations (moderate limits)
		{Path: "/resumes", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/resumes", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/resumes/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 3: Auth (throttled against key guessing)
		{Path: "/auth/token", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Read operations are handled by the default limit; the health check
		// is unlimited via a special case in the matcher.
	}
}

// Unparseable values fall back to the default rather than failing startup.

func envBool(key string, fallback bool) bool {
	parsed, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func envInt(key string, fallback int) int {
	parsed, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	parsed, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

// clientSet parses a comma-separated list of client IPs into a lookup set.
func clientSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, client := range strings.Split(list, ",") {
		if client = strings.TrimSpace(client); client != "" {
			set[client] = true
		}
	}
	return set
}

