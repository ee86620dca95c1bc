package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DateBounds.MinYear != 2020 || cfg.DateBounds.MaxYear != 2030 {
		t.Errorf("date bounds = %+v", cfg.DateBounds)
	}
	if cfg.RequireKey {
		t.Error("RequireKey must default off")
	}
	if cfg.FeedSource() != "" {
		t.Errorf("feed source = %q, want empty when unconfigured", cfg.FeedSource())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("FEED_URL", "https://example.com/feed.csv")
	t.Setenv("FEED_PATH", "/data/feed.xlsx")
	t.Setenv("FEED_MIN_YEAR", "2018")
	t.Setenv("FEED_MAX_YEAR", "2032")
	t.Setenv("REQUIRE_KEY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DateBounds.MinYear != 2018 || cfg.DateBounds.MaxYear != 2032 {
		t.Errorf("date bounds = %+v", cfg.DateBounds)
	}
	if !cfg.RequireKey {
		t.Error("REQUIRE_KEY=true must enable the key policy")
	}
	// The explicit path wins over the URL.
	if cfg.FeedSource() != "/data/feed.xlsx" {
		t.Errorf("feed source = %q", cfg.FeedSource())
	}
}

// A single-quoted FEED_URL in .env must reach the config with its inner
// double quotes intact; feed URLs can carry quoted query values.
func TestLoadQuotedFeedURL(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("FEED_URL", "")
	os.Unsetenv("FEED_URL")

	dir := t.TempDir()
	env := `FEED_URL='https://tracker.example.com/export?view="portafolio"&fmt=csv'`
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	// t.Chdir needs Go 1.24; do the equivalent manually.
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restoring wd: %v", err)
		}
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := `https://tracker.example.com/export?view="portafolio"&fmt=csv`
	if cfg.FeedURL != want {
		t.Errorf("FeedURL = %q, want %q", cfg.FeedURL, want)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("FEED_MIN_YEAR", "hace poco")
	if got := getEnvInt("FEED_MIN_YEAR", 2020); got != 2020 {
		t.Errorf("got %d, want fallback", got)
	}
}
