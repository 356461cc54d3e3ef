package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultFlappyBallConfig() {
		t.Errorf("embedded defaults drifted from DefaultFlappyBallConfig:\n got %+v\nwant %+v", cfg, DefaultFlappyBallConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestDerivedGeometry(t *testing.T) {
	cfg := DefaultFlappyBallConfig()

	if got := cfg.GroundTop(); got != 585 {
		t.Errorf("GroundTop() = %v, expected 585", got)
	}
	lo, hi := cfg.GapTopRange()
	if lo != 50 || hi != 350 {
		t.Errorf("GapTopRange() = [%v, %v], expected [50, 350]", lo, hi)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FlappyBallConfig)
		wantErr string
	}{
		{"defaults", func(*FlappyBallConfig) {}, ""},
		{"zero width", func(c *FlappyBallConfig) { c.Screen.Width = 0 }, "screen.width"},
		{"upward gravity", func(c *FlappyBallConfig) { c.Physics.Gravity = -1 }, "physics.gravity"},
		{"downward jump", func(c *FlappyBallConfig) { c.Physics.JumpImpulse = 5 }, "physics.jump_impulse"},
		{"restitution of one", func(c *FlappyBallConfig) { c.Physics.Restitution = 1 }, "physics.restitution"},
		{"gap too tall", func(c *FlappyBallConfig) { c.Obstacles.GapHeight = 580 }, "does not fit"},
		{"no spawn interval", func(c *FlappyBallConfig) { c.Obstacles.SpawnIntervalMs = 0 }, "spawn_interval_ms"},
		{"no idle period", func(c *FlappyBallConfig) { c.Idle.PeriodMs = 0 }, "idle.period_ms"},
		{"ball off screen", func(c *FlappyBallConfig) { c.Ball.X = 500 }, "ball.x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyBallConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected error mentioning %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultFlappyBallConfig() {
		t.Errorf("Load() without files should return defaults, got %+v", cfg)
	}
}

func TestLoadDiscoveredFiles(t *testing.T) {
	writeUserConfig := func(t *testing.T, data string) {
		t.Helper()
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv(EnvConfigPath, "")
		dir := filepath.Join(home, ".flappyball")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "flappyball.yaml"), []byte(data), 0o600); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	t.Run("user file is used", func(t *testing.T) {
		writeUserConfig(t, "obstacles:\n  speed: 5\n")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.Obstacles.Speed != 5 {
			t.Errorf("obstacle speed = %v, expected 5 from the user file", cfg.Obstacles.Speed)
		}
	})

	t.Run("malformed user file is reported", func(t *testing.T) {
		writeUserConfig(t, "screen: [not, a, map")
		_, err := Load("")
		if err == nil {
			t.Fatal("Load() should fail on a malformed discovered file")
		}
		if !strings.Contains(err.Error(), "failed to parse") {
			t.Errorf("Load() error = %v, expected a parse error", err)
		}
	})
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.5\nobstacles:\n  spawn_interval_ms: 2000\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.SpawnIntervalMs != 2000 {
		t.Errorf("spawn interval = %d, expected 2000", cfg.Obstacles.SpawnIntervalMs)
	}
	if cfg.Physics.Restitution != 0.85 {
		t.Errorf("unset restitution should keep default 0.85, got %v", cfg.Physics.Restitution)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  radius: 10\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ball.Radius != 10 {
		t.Errorf("radius = %v, expected 10 from $%s", cfg.Ball.Radius, EnvConfigPath)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	invalidYAML := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(invalidYAML, []byte("screen: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	badValues := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badValues, []byte("physics:\n  restitution: 1.5\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"broken yaml", invalidYAML, "failed to parse"},
		{"invalid values", badValues, "restitution"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatalf("Load(%q) should fail", tc.path)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Load(%q) error = %v, expected it to mention %q", tc.path, err, tc.wantErr)
			}
		})
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultFlappyBallConfig()
	cfg.Physics.Gravity = 1.25

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "gravity: 1.25") {
		t.Errorf("marshalled yaml should contain the gravity override:\n%s", data)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FLAPPYBALL_TEST_VALUE", "set")
	if got := GetEnv("FLAPPYBALL_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, expected %q", got, "set")
	}
	if got := GetEnv("FLAPPYBALL_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected %q", got, "fallback")
	}
}
