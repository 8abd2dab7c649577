package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 4000 {
		t.Fatalf("port = %d, want 4000", cfg.Port)
	}
	if cfg.StoreDriver != StoreMongo {
		t.Fatalf("store driver = %q, want %q", cfg.StoreDriver, StoreMongo)
	}
	if cfg.MongoDB != "alumni-db" {
		t.Fatalf("mongo db = %q", cfg.MongoDB)
	}
	if cfg.JWTTTL() != 30*24*time.Hour {
		t.Fatalf("jwt ttl = %s, want 720h", cfg.JWTTTL())
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("cors origins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_RequiredKeys(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		wantOK bool
	}{
		{
			name:   "missing mongo uri",
			env:    map[string]string{"JWT_SECRET": "s", "MONGO_URI": "", "STORE_DRIVER": "mongo"},
			wantOK: false,
		},
		{
			name:   "missing jwt secret",
			env:    map[string]string{"JWT_SECRET": "", "MONGO_URI": "mongodb://x"},
			wantOK: false,
		},
		{
			name:   "memory store needs no uri",
			env:    map[string]string{"JWT_SECRET": "s", "MONGO_URI": "", "STORE_DRIVER": "memory"},
			wantOK: true,
		},
		{
			name:   "unknown driver",
			env:    map[string]string{"JWT_SECRET": "s", "STORE_DRIVER": "sqlite"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORE_DRIVER", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if tt.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a.test , ,http://b.test")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("splitList = %v", got)
	}
}
