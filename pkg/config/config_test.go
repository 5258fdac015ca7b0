package config

import (
	"os"
	"testing"
)

// clearEnv unsets a variable for the duration of the test. t.Setenv
// registers the restore; os.Unsetenv makes the value truly absent so
// envconfig falls back to struct defaults.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t,
		"PORT", "HOST", "ENVIRONMENT", "ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
		"NEO4J_URI", "NEO4J_USER", "NEO4J_PASSWORD",
		"ANTHROPIC_API_KEY", "CLAUDE_MODEL", "CLAUDE_BASE_URL",
		"STORAGE_TYPE", "UPLOAD_DIR", "STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY",
		"STORAGE_SECRET_KEY", "STORAGE_BUCKET", "STORAGE_USE_SSL",
	)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Server.Port)
	}
	if cfg.Neo4j.URI != "bolt://localhost:7687" {
		t.Errorf("expected default neo4j uri, got %s", cfg.Neo4j.URI)
	}
	if cfg.Neo4j.User != "neo4j" {
		t.Errorf("expected default neo4j user, got %s", cfg.Neo4j.User)
	}
	if cfg.Claude.Model != "claude-3-7-sonnet-20250219" {
		t.Errorf("expected default model, got %s", cfg.Claude.Model)
	}
	if cfg.Claude.BaseURL != "https://api.anthropic.com" {
		t.Errorf("expected default base url, got %s", cfg.Claude.BaseURL)
	}
	if cfg.Storage.Type != "local" {
		t.Errorf("expected default storage type local, got %s", cfg.Storage.Type)
	}
	if cfg.Storage.UploadDir != "uploads" {
		t.Errorf("expected default upload dir, got %s", cfg.Storage.UploadDir)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NEO4J_URI", "neo4j://db.internal:7687")
	t.Setenv("NEO4J_USER", "svc")
	t.Setenv("NEO4J_PASSWORD", "s3cr3t")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test-key")
	t.Setenv("CLAUDE_MODEL", "claude-3-5-haiku-20241022")
	t.Setenv("CLAUDE_BASE_URL", "http://localhost:9999")
	t.Setenv("STORAGE_TYPE", "minio")
	t.Setenv("STORAGE_BUCKET", "raw-transcripts")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Neo4j.URI != "neo4j://db.internal:7687" {
		t.Errorf("expected custom neo4j uri, got %s", cfg.Neo4j.URI)
	}
	if cfg.Neo4j.Password != "s3cr3t" {
		t.Errorf("expected custom password, got %s", cfg.Neo4j.Password)
	}
	if cfg.Claude.APIKey != "sk-test-key" {
		t.Errorf("expected custom api key, got %s", cfg.Claude.APIKey)
	}
	if cfg.Claude.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("expected custom model, got %s", cfg.Claude.Model)
	}
	if cfg.Storage.Type != "minio" {
		t.Errorf("expected storage type minio, got %s", cfg.Storage.Type)
	}
	if cfg.Storage.BucketName != "raw-transcripts" {
		t.Errorf("expected custom bucket, got %s", cfg.Storage.BucketName)
	}
}

func TestLoad_InvalidStorageType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "s3")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported storage type")
	}
}
