package config

import (
	"strings"
	"time"
)

const (
	defaultAnchor            = "eur"
	defaultCacheTTLHours     = 12
	defaultDataDir           = "data"
	defaultSourceURLTemplate = "https://cdn.jsdelivr.net/gh/henrikroschmann/OpenRates.NET@main/data/{segment}.json"
)

// Where the bot reads published tables from.
const (
	SourceHTTP     = "http"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type AppConfig struct {
	AnchorCurrency      string `yaml:"anchor-currency"`
	CacheTTLHours       int64  `yaml:"cache-ttl-hours"`
	SourceURL           string `yaml:"source-url-template"`
	Dir                 string `yaml:"data-dir"`
	PublishDelayMinutes int64  `yaml:"publish-delay-minutes"`
	TableSource         string `yaml:"source"`
}

func (s *AppConfig) Anchor() string {
	if strings.TrimSpace(s.AnchorCurrency) == "" {
		return defaultAnchor
	}
	return strings.ToLower(strings.TrimSpace(s.AnchorCurrency))
}

func (s *AppConfig) CacheTTL() time.Duration {
	if s.CacheTTLHours <= 0 {
		return defaultCacheTTLHours * time.Hour
	}
	return time.Duration(s.CacheTTLHours) * time.Hour
}

func (s *AppConfig) SourceURLTemplate() string {
	if s.SourceURL == "" {
		return defaultSourceURLTemplate
	}
	return s.SourceURL
}

func (s *AppConfig) DataDir() string {
	if s.Dir == "" {
		return defaultDataDir
	}
	return s.Dir
}

func (s *AppConfig) PublishDelay() time.Duration {
	return time.Duration(s.PublishDelayMinutes) * time.Minute
}

func (s *AppConfig) Source() string {
	switch src := strings.ToLower(strings.TrimSpace(s.TableSource)); src {
	case SourceFile, SourcePostgres:
		return src
	default:
		return SourceHTTP
	}
}
