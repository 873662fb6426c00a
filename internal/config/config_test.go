package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("embedded YAML and DefaultBreakoutConfig differ:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
}

func TestArenaWidthDynamic(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	if got := cfg.ArenaWidth(); got != 772 {
		t.Errorf("ArenaWidth() = %g, expected 772", got)
	}
	cfg.Arena.Width = 500
	if got := cfg.ArenaWidth(); got != 500 {
		t.Errorf("ArenaWidth() = %g, expected explicit 500", got)
	}
}

func TestParseOverridesOnlyGivenFields(t *testing.T) {
	cfg, err := Parse([]byte("ball:\n  initial_speed: 420\ngameplay:\n  start_lives: 1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Ball.InitialSpeed != 420 || cfg.Gameplay.StartLives != 1 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Ball, cfg.Gameplay)
	}
	if cfg.Ball.Radius != 5 || cfg.Bricks.Rows != 8 {
		t.Error("unspecified fields should keep defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		want   string
	}{
		{"values length", func(c *BreakoutConfig) { c.Bricks.Values = c.Bricks.Values[:3] }, "3 values for 8 rows"},
		{"accelerations length", func(c *BreakoutConfig) { c.Bricks.Rows = 7; c.Bricks.Values = c.Bricks.Values[:7] }, "8 accelerations for 7 rows"},
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }, "radius must be positive"},
		{"bad color", func(c *BreakoutConfig) { c.Paddle.Color = "yellow" }, "paddle: bad color"},
		{"paddle below floor", func(c *BreakoutConfig) { c.Paddle.Y = 800 }, "must lie between"},
		{"no lives", func(c *BreakoutConfig) { c.Gameplay.StartLives = 0 }, "start_lives"},
		{"grid overlaps paddle", func(c *BreakoutConfig) { c.Bricks.YOffset = 500 }, "below the paddle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Ball.Radius = -1
	cfg.Gameplay.TickRate = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "radius") || !strings.Contains(msg, "tick_rate") {
		t.Errorf("both problems should be reported, got %q", msg)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  width: 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Paddle.Width != 80 {
		t.Errorf("paddle width = %g, expected 80", cfg.Paddle.Width)
	}

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	if err := os.WriteFile(path, []byte("ball:\n  radius: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config should fail validation, got %v", err)
	}
}

func TestLoadBreakoutSearchPath(t *testing.T) {
	tests := []struct {
		name      string
		user      string // ~/.breakout/configs/breakout.yaml, empty for none
		local     string // ./configs/breakout.yaml, empty for none
		wantWidth float64
		wantErr   bool
	}{
		{"no files uses embedded default", "", "", 60, false},
		{"user file", "paddle:\n  width: 70\n", "", 70, false},
		{"user file wins over local", "paddle:\n  width: 70\n", "paddle:\n  width: 80\n", 70, false},
		{"local file", "", "paddle:\n  width: 80\n", 80, false},
		{"invalid user file", "bricks: {values: [1, 2, 3]}\n", "paddle:\n  width: 80\n", 0, true},
		{"invalid local file", "", "ball:\n  radius: 0\n", 0, true},
		{"malformed yaml", "paddle: [\n", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			work := t.TempDir()
			t.Chdir(work)

			writeConfig(t, filepath.Join(home, ".breakout", "configs"), tt.user)
			writeConfig(t, filepath.Join(work, "configs"), tt.local)

			cfg, err := LoadBreakout("")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error for an invalid config in the search path")
				}
				if !strings.Contains(err.Error(), FileName) {
					t.Errorf("error %q should name the config file", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadBreakout: %v", err)
			}
			if cfg.Paddle.Width != tt.wantWidth {
				t.Errorf("paddle width = %g, expected %g", cfg.Paddle.Width, tt.wantWidth)
			}
		})
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if content == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyPreset(easy, ParsePreset("easy"))
	hard := DefaultBreakoutConfig()
	ApplyPreset(hard, ParsePreset("hard"))
	normal := DefaultBreakoutConfig()
	ApplyPreset(normal, ParsePreset("normal"))

	if easy.Paddle.Width <= normal.Paddle.Width || hard.Paddle.Width >= normal.Paddle.Width {
		t.Error("presets should widen (easy) or narrow (hard) the paddle")
	}
	if easy.Gameplay.StartLives <= hard.Gameplay.StartLives {
		t.Error("easy should start with more lives than hard")
	}
	if !reflect.DeepEqual(normal, DefaultBreakoutConfig()) {
		t.Error("normal preset should not change the config")
	}
	for _, cfg := range []*BreakoutConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	clone := cfg.Clone()
	clone.Bricks.Values[0] = 99
	clone.Gameplay.CeilingShrink = false
	if cfg.Bricks.Values[0] == 99 || !cfg.Gameplay.CeilingShrink {
		t.Error("Clone should not share state with the original")
	}
}
