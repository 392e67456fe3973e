package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		TelegramToken:   "token",
		ModeratorChatID: "-100200300",
		DatabaseURL:     "postgres://localhost:5432/faqbot",
		SheetID:         "sheet-id",
		FuzzyThreshold:  75,
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() on complete config error = %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := validConfig()
	cfg.TelegramToken = ""
	cfg.SheetID = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() accepted missing credentials")
	}
	for _, want := range []string{"TELEGRAM_TOKEN", "SHEET_ID"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not name %s", err, want)
		}
	}
}

func TestValidate_ThresholdRange(t *testing.T) {
	for _, threshold := range []int{-1, 101} {
		cfg := validConfig()
		cfg.FuzzyThreshold = threshold
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate() accepted threshold %d", threshold)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr)
	}
	if cfg.FuzzyThreshold != 75 {
		t.Errorf("FuzzyThreshold = %d", cfg.FuzzyThreshold)
	}
	if cfg.ReloadInterval != 6*time.Hour {
		t.Errorf("ReloadInterval = %v", cfg.ReloadInterval)
	}
	if cfg.SheetRange != "Sheet1!A2:D" {
		t.Errorf("SheetRange = %q", cfg.SheetRange)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FUZZY_THRESHOLD", "80")
	t.Setenv("RELOAD_INTERVAL", "30m")

	cfg := Load()
	if cfg.FuzzyThreshold != 80 {
		t.Errorf("FuzzyThreshold = %d, want 80", cfg.FuzzyThreshold)
	}
	if cfg.ReloadInterval != 30*time.Minute {
		t.Errorf("ReloadInterval = %v, want 30m", cfg.ReloadInterval)
	}
}

func TestModeratorEmails(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"mod@example.org", 1},
		{" Mod@Example.org , other@example.org,", 2},
	}

	for _, tt := range tests {
		cfg := &Config{DashboardEmails: tt.in}
		got := cfg.ModeratorEmails()
		if len(got) != tt.want {
			t.Errorf("ModeratorEmails(%q) = %v, want %d entries", tt.in, got, tt.want)
		}
		for _, e := range got {
			if e != strings.ToLower(strings.TrimSpace(e)) {
				t.Errorf("ModeratorEmails(%q) entry %q not normalized", tt.in, e)
			}
		}
	}
}
