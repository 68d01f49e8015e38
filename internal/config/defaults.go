package config

import "time"

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		SerpAPI: SerpAPIConfig{
			APIKey:    "",
			Endpoint:  "https://serpapi.com/search",
			Timeout:   30 * time.Second,
			UserAgent: "event-finder/1.0 (github.com/pfrederiksen/event-finder)",
		},
		Search: SearchConfig{
			Location: "Dubai",
			Category: "all",
			Days:     30,
		},
		Output: OutputConfig{
			Format: "table",
			Sort:   "",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
