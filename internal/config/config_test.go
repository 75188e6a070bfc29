package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"chatdeck/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg.ReplyDelayMS != DefaultReplyDelayMS {
		t.Errorf("ReplyDelayMS = %d, want default %d", cfg.ReplyDelayMS, DefaultReplyDelayMS)
	}
	if cfg.GetTheme() != "" {
		t.Errorf("Theme = %q, want empty", cfg.GetTheme())
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}

	cfg.SetTheme("light")
	cfg.SetReplyDelayMS(250)
	cfg.SetNotificationsEnabled(true)
	cfg.SetWelcomeShown()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := loadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.GetTheme() != "light" {
		t.Errorf("Theme = %q, want light", loaded.GetTheme())
	}
	if got := loaded.ReplyDelay(); got != 250*time.Millisecond {
		t.Errorf("ReplyDelay = %v, want 250ms", got)
	}
	if !loaded.GetNotificationsEnabled() {
		t.Error("NotificationsEnabled not persisted")
	}
	if !loaded.GetWelcomeShown() {
		t.Error("WelcomeShown not persisted")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := loadFrom(path)
	if err == nil {
		t.Fatal("loadFrom accepted malformed JSON")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("error kind = %v, want KindConfig", errors.GetKind(err))
	}
}

func TestLoadRejectsNegativeDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"reply_delay_ms": -5}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := loadFrom(path)
	if err == nil {
		t.Fatal("loadFrom accepted negative delay")
	}
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("error kind = %v, want KindInvalid", errors.GetKind(err))
	}
}

func TestSetReplyDelayIgnoresNonPositive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg.SetReplyDelayMS(0)
	if cfg.ReplyDelayMS != DefaultReplyDelayMS {
		t.Errorf("zero delay accepted: %d", cfg.ReplyDelayMS)
	}
	cfg.SetReplyDelayMS(-10)
	if cfg.ReplyDelayMS != DefaultReplyDelayMS {
		t.Errorf("negative delay accepted: %d", cfg.ReplyDelayMS)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory contents = %v, want only config.json", names)
	}
}
