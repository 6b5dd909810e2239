package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TMDB_API_KEY", "TMDB_API_BASE_URL", "VIDSRC_CC_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TMDBBaseURL != TMDBDefaultBaseURL {
		t.Errorf("TMDBBaseURL = %q, want default", cfg.TMDBBaseURL)
	}
	if cfg.TMDBAPIKey != "" {
		t.Errorf("TMDBAPIKey = %q, want empty", cfg.TMDBAPIKey)
	}
	if len(cfg.EmbedOverrides) != 4 {
		t.Errorf("expected 4 override slots, got %d", len(cfg.EmbedOverrides))
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TMDB_API_KEY", "abc123")
	t.Setenv("TMDB_API_BASE_URL", "http://localhost:1234/3")
	t.Setenv("VIDFAST_PRO_URL", "https://mirror.example/")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.TMDBAPIKey != "abc123" {
		t.Errorf("TMDBAPIKey = %q", cfg.TMDBAPIKey)
	}
	if cfg.TMDBBaseURL != "http://localhost:1234/3" {
		t.Errorf("TMDBBaseURL = %q", cfg.TMDBBaseURL)
	}
	if cfg.EmbedOverrides["vidfast.pro"] != "https://mirror.example/" {
		t.Errorf("vidfast override = %q", cfg.EmbedOverrides["vidfast.pro"])
	}
}
