package config

import (
	"os"
	"time"
)

// Config carries the remote endpoints for toolchain discovery and download.
// Pagination is index-specific, so the page parameters live here instead of
// being hardcoded at the call sites.
type Config struct {
	TagsURL         string // paginated tag index endpoint
	DownloadBaseURL string // binary distribution host
	PageSize        int    // entries requested per index page
	PageParam       string // query parameter naming the page number
	PerPageParam    string // query parameter naming the page size
	AuthToken       string // optional bearer token for index requests
	RequestTimeout  time.Duration
	ResolveLimit    int // how many candidates resolvers collect before picking a maximum
}

func baseConfig() Config {
	return Config{
		TagsURL:         "https://api.github.com/repos/swiftlang/swift/tags",
		DownloadBaseURL: "https://download.swift.org",
		PageSize:        100,
		PageParam:       "page",
		PerPageParam:    "per_page",
		RequestTimeout:  30 * time.Second,
		ResolveLimit:    100,
	}
}

// DefaultIndexConfig returns the production configuration. A token in
// SWIFTUP_INDEX_TOKEN is attached to index requests; its absence is fine,
// unauthenticated requests just run into the index's own rate limits.
func DefaultIndexConfig() Config {
	cfg := baseConfig()
	cfg.AuthToken = os.Getenv("SWIFTUP_INDEX_TOKEN")
	return cfg
}
