package config

import "os"

// TMDBDefaultBaseURL is the production TMDB v3 API root. Override via
// TMDB_API_BASE_URL (mainly for tests and self-hosted relays).
const TMDBDefaultBaseURL = "https://api.themoviedb.org/3"

// Config holds everything read from the environment at startup. It is
// loaded once in main and treated as read-only afterwards.
type Config struct {
	Port        string
	TMDBAPIKey  string
	TMDBBaseURL string

	// EmbedOverrides maps a provider domain to a custom base URL.
	// Empty values mean "use the hardcoded default".
	EmbedOverrides map[string]string
}

func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "8080"),
		TMDBAPIKey:  os.Getenv("TMDB_API_KEY"),
		TMDBBaseURL: getenv("TMDB_API_BASE_URL", TMDBDefaultBaseURL),
		EmbedOverrides: map[string]string{
			"vidsrc.cc":   os.Getenv("VIDSRC_CC_URL"),
			"vidrock.net": os.Getenv("VIDROCK_NET_URL"),
			"vidsrc.me":   os.Getenv("VIDSRC_ME_URL"),
			"vidfast.pro": os.Getenv("VIDFAST_PRO_URL"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
