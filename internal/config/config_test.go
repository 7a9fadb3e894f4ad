package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Mode != ModeInteractive {
		t.Fatalf("unexpected mode: %s", cfg.Mode)
	}
	if cfg.MinLength != 1 || cfg.MaxLength != 100 {
		t.Fatalf("unexpected length bounds: %d..%d", cfg.MinLength, cfg.MaxLength)
	}
	if cfg.Sweep.Start != 4 || cfg.Sweep.End != 64 || cfg.Sweep.Step != 2 {
		t.Fatalf("unexpected sweep: %+v", cfg.Sweep)
	}
	if cfg.Classifier.Policy != "exhaustive" || cfg.Classifier.MaxLength != classifierMaxDefault {
		t.Fatalf("unexpected classifier: %+v", cfg.Classifier)
	}
	if cfg.Quantum.Executor != "ideal" || cfg.Quantum.Shots != 1024 {
		t.Fatalf("unexpected quantum: %+v", cfg.Quantum)
	}
	if !cfg.Report.Enabled || cfg.Report.OutputDir != "reports" {
		t.Fatalf("unexpected report: %+v", cfg.Report)
	}
	if cfg.Logging.LogFile != "logs/jozsa.log" {
		t.Fatalf("unexpected log file: %s", cfg.Logging.LogFile)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Classifier.Policy != "exhaustive" {
		t.Fatalf("unexpected policy: %s", cfg.Classifier.Policy)
	}
}

func TestLoadOverrides(t *testing.T) {
	content := `seed: 42
mode: Sweep
cheat: true
sweep:
  start: 2
  end: 9
  step: 3
classifier:
  policy: " MAJORITY "
  short_circuit_constant: true
  max_length: 12
quantum:
  shots: 0
storage:
  s3:
    enabled: true
    bucket: runs
    prefix: dj
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Seed != 42 || !cfg.Cheat {
		t.Fatalf("unexpected seed/cheat: %d %t", cfg.Seed, cfg.Cheat)
	}
	if cfg.Mode != ModeSweep {
		t.Fatalf("mode not normalized: %q", cfg.Mode)
	}
	if cfg.Classifier.Policy != "majority" || !cfg.Classifier.ShortCircuitConstant || cfg.Classifier.MaxLength != 12 {
		t.Fatalf("unexpected classifier: %+v", cfg.Classifier)
	}
	if cfg.Quantum.Shots != 1024 {
		t.Fatalf("shots not defaulted: %d", cfg.Quantum.Shots)
	}
	lengths := cfg.Sweep.Lengths()
	if len(lengths) != 3 || lengths[0] != 2 || lengths[1] != 5 || lengths[2] != 8 {
		t.Fatalf("unexpected sweep lengths: %v", lengths)
	}
	if !cfg.Storage.CloudEnabled() || cfg.Storage.S3.Bucket != "runs" {
		t.Fatalf("unexpected storage: %+v", cfg.Storage)
	}
}

func TestDefaultSweepLengths(t *testing.T) {
	lengths := defaultConfig().Sweep.Lengths()
	if len(lengths) != 30 || lengths[0] != 4 || lengths[len(lengths)-1] != 62 {
		t.Fatalf("unexpected default sweep: %v", lengths)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"mode":         "mode: batch\n",
		"length":       "length: 101\n",
		"bounds":       "min_length: 10\nmax_length: 5\n",
		"empty sweep":  "mode: sweep\nsweep:\n  start: 10\n  end: 4\n",
		"s3 bucket":    "storage:\n  s3:\n    enabled: true\n",
		"gcs bucket":   "storage:\n  gcs:\n    enabled: true\n",
		"invalid yaml": "mode: [\n",
	}
	for name, content := range cases {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read error, got %v", err)
	}
}
