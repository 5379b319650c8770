package config

import (
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != DefaultWidth {
		t.Errorf("expected width %d, got %d", DefaultWidth, cfg.Width)
	}
	if cfg.Height != DefaultHeight {
		t.Errorf("expected height %d, got %d", DefaultHeight, cfg.Height)
	}
	if cfg.Gravity != DefaultGravity {
		t.Errorf("expected gravity %f, got %f", DefaultGravity, cfg.Gravity)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.StartLevel != DefaultLevel {
		t.Errorf("expected level %d, got %d", DefaultLevel, cfg.StartLevel)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected data dir %q, got %q", DefaultDataDir, cfg.DataDir)
	}
	if cfg.Mute {
		t.Error("expected sound enabled by default")
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--width", "1024", "--height", "768", "--gravity", "1.2", "--fps", "30", "--level", "3", "--data", "/tmp/saves", "--mute"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Width)
	}
	if cfg.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Height)
	}
	if cfg.Gravity != 1.2 {
		t.Errorf("expected gravity 1.2, got %f", cfg.Gravity)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.FPS)
	}
	if cfg.StartLevel != 3 {
		t.Errorf("expected level 3, got %d", cfg.StartLevel)
	}
	if cfg.DataDir != "/tmp/saves" {
		t.Errorf("expected data dir '/tmp/saves', got %q", cfg.DataDir)
	}
	if !cfg.Mute {
		t.Error("expected mute to be set")
	}
}

func TestParseArgs_InvalidWorldSize(t *testing.T) {
	if _, err := ParseArgs([]string{"--width", "50"}); err == nil {
		t.Error("expected error for width 50")
	}
	if _, err := ParseArgs([]string{"--height", "0"}); err == nil {
		t.Error("expected error for height 0")
	}
}

func TestParseArgs_InvalidGravity(t *testing.T) {
	if _, err := ParseArgs([]string{"--gravity", "0"}); err == nil {
		t.Error("expected error for gravity 0")
	}
	if _, err := ParseArgs([]string{"--gravity", "-0.8"}); err == nil {
		t.Error("expected error for negative gravity")
	}
}

func TestParseArgs_InvalidFPS(t *testing.T) {
	if _, err := ParseArgs([]string{"--fps", "0"}); err == nil {
		t.Error("expected error for fps 0")
	}
	if _, err := ParseArgs([]string{"--fps", "241"}); err == nil {
		t.Error("expected error for fps 241")
	}
}

func TestParseArgs_InvalidLevel(t *testing.T) {
	if _, err := ParseArgs([]string{"--level", "0"}); err == nil {
		t.Error("expected error for level 0")
	}
	if _, err := ParseArgs([]string{"--level", "4"}); err == nil {
		t.Error("expected error for level 4")
	}
}

func TestParseArgs_EmptyDataDir(t *testing.T) {
	if _, err := ParseArgs([]string{"--data", ""}); err == nil {
		t.Error("expected error for an empty data directory")
	}
}

func TestParseArgs_ValidLevelBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  int
	}{
		{"minimum level", "1", 1},
		{"maximum level", "3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArgs([]string{"--level", tt.level})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.StartLevel != tt.want {
				t.Errorf("expected level %d, got %d", tt.want, cfg.StartLevel)
			}
		})
	}
}
