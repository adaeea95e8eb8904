package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Tier describes the limit applied to a group of endpoints.
type Tier struct {
	Name     string
	Limit    int // requests per Window; 0 means unlimited
	Window   time.Duration
	Burst    int // bucket capacity; defaults to Limit when 0
	Prefixes []string
	Methods  []string // empty means all methods
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	Tiers           []Tier
	Default         Tier
	Whitelist       map[string]bool
	CleanupInterval time.Duration
}

// DefaultConfig returns the built-in tiers: gap analysis requests are
// expensive (document parsing, optional LLM calls) and get a strict limit,
// history reads get a generous one, and the health check is unlimited.
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Tiers: []Tier{
			{
				Name:     "analyze",
				Limit:    10,
				Window:   time.Minute,
				Burst:    3,
				Prefixes: []string{"/api/v1/analyze-gap"},
				Methods:  []string{"POST"},
			},
			{
				Name:     "history",
				Limit:    60,
				Window:   time.Minute,
				Prefixes: []string{"/api/v1/analyses"},
			},
			{
				Name:     "health",
				Limit:    0,
				Window:   time.Minute,
				Prefixes: []string{"/health"},
			},
		},
		Default: Tier{
			Name:   "default",
			Limit:  30,
			Window: time.Minute,
		},
		Whitelist:       make(map[string]bool),
		CleanupInterval: 5 * time.Minute,
	}
}

// LoadConfig builds a Config from the environment, falling back to the
// defaults for anything unset.
//
//	RATE_LIMIT_ENABLED        - "false" disables limiting
//	RATE_LIMIT_ANALYZE_RPM    - analyze tier requests per minute
//	RATE_LIMIT_DEFAULT_RPM    - default tier requests per minute
//	RATE_LIMIT_WHITELIST      - comma-separated client IDs exempt from limits
func LoadConfig() *Config {
	config := DefaultConfig()

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		config.Enabled = v != "false" && v != "0"
	}
	if rpm := envInt("RATE_LIMIT_ANALYZE_RPM"); rpm > 0 {
		for i := range config.Tiers {
			if config.Tiers[i].Name == "analyze" {
				config.Tiers[i].Limit = rpm
			}
		}
	}
	if rpm := envInt("RATE_LIMIT_DEFAULT_RPM"); rpm > 0 {
		config.Default.Limit = rpm
	}
	if v := os.Getenv("RATE_LIMIT_WHITELIST"); v != "" {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				config.Whitelist[id] = true
			}
		}
	}

	return config
}

// tierFor matches a request path and method to a tier by longest prefix.
func (c *Config) tierFor(path, method string) Tier {
	best := c.Default
	bestLen := -1
	for _, tier := range c.Tiers {
		for _, prefix := range tier.Prefixes {
			if !strings.HasPrefix(path, prefix) || len(prefix) <= bestLen {
				continue
			}
			if len(tier.Methods) > 0 && !containsMethod(tier.Methods, method) {
				continue
			}
			best = tier
			bestLen = len(prefix)
		}
	}
	return best
}

func containsMethod(methods []string, method string) bool {
	for _, m := range methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

func envInt(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
