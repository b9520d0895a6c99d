package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Fatalf("expected default port 5000, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Database.Path != "meetings.db" {
		t.Fatalf("unexpected db path %s", cfg.Database.Path)
	}
	if cfg.Groq.Model != "llama3-8b-8192" {
		t.Fatalf("unexpected model %s", cfg.Groq.Model)
	}
	if cfg.Email.SMTPHost != "smtp.gmail.com" || cfg.Email.SMTPPort != 587 {
		t.Fatalf("unexpected smtp defaults %s:%d", cfg.Email.SMTPHost, cfg.Email.SMTPPort)
	}
}

func TestLoadPlaceholdersTreatedAsUnset(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "your_groq_api_key_here")
	t.Setenv("EMAIL_PASS", "your_gmail_app_password_here")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Groq.APIKey != "" {
		t.Fatalf("placeholder groq key should be cleared, got %q", cfg.Groq.APIKey)
	}
	if cfg.Email.Pass != "" {
		t.Fatalf("placeholder email pass should be cleared, got %q", cfg.Email.Pass)
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "meetings")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	dsn := cfg.GetDatabaseDSN()
	want := "host=db.internal port=5432 user=postgres password=postgres dbname=meetings sslmode=disable"
	if dsn != want {
		t.Fatalf("unexpected dsn %q", dsn)
	}
}
