package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPPort != "8080" || cfg.ProfileStore != ProfileStoreBolt || cfg.BoltPath != "swasthya.db" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.ReplyDelayMin() != time.Second || cfg.ReplyDelayMax() != 2*time.Second || cfg.QuestionDelay() != 600*time.Millisecond {
		t.Fatalf("unexpected pacing defaults %+v", cfg)
	}
	if cfg.SessionTokenTTL() != 2*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.SessionTokenTTL())
	}
}

func TestLoadConfig_NormalizesStore(t *testing.T) {
	t.Setenv("PROFILE_STORE", " Memory ")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ProfileStore != ProfileStoreMemory {
		t.Fatalf("expected memory store, got %q", cfg.ProfileStore)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			ProfileStore:       ProfileStoreMemory,
			ReplyDelayMinMS:    1000,
			ReplyDelayMaxMS:    2000,
			QuestionDelayMS:    600,
			SessionIdleMinutes: 60,
			AITimeoutSeconds:   30,
		}
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"ok", func(*Config) {}, ""},
		{"unknown store", func(c *Config) { c.ProfileStore = "mongo" }, "unknown PROFILE_STORE"},
		{"postgres without url", func(c *Config) { c.ProfileStore = ProfileStorePostgres }, "DATABASE_URL"},
		{"redis without addr", func(c *Config) { c.ProfileStore = ProfileStoreRedis }, "REDIS_ADDR"},
		{"min above max", func(c *Config) { c.ReplyDelayMinMS = 3000 }, "REPLY_DELAY_MIN_MS"},
		{"idle zero", func(c *Config) { c.SessionIdleMinutes = 0 }, "SESSION_IDLE_MINUTES"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
