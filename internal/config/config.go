package config

import (
	"os"
	"strings"

	"jozsa/internal/runinfo"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Run modes.
const (
	ModeInteractive = "interactive"
	ModeSweep       = "sweep"
)

// Config captures all runtime options for an experiment run.
type Config struct {
	Seed       int64              `yaml:"seed"`
	Mode       string             `yaml:"mode"`
	Length     int                `yaml:"length"`
	MinLength  int                `yaml:"min_length"`
	MaxLength  int                `yaml:"max_length"`
	Cheat      bool               `yaml:"cheat"`
	Sweep      SweepConfig        `yaml:"sweep"`
	Classifier ClassifierConfig   `yaml:"classifier"`
	Quantum    QuantumConfig      `yaml:"quantum"`
	Report     ReportConfig       `yaml:"report"`
	Storage    StorageConfig      `yaml:"storage"`
	Logging    Logging            `yaml:"logging"`
	Metrics    MetricsConfig      `yaml:"metrics"`
	RunInfo    *runinfo.BasicInfo `yaml:"-"`
}

// SweepConfig sets the lengths visited in sweep mode: Start, Start+Step, ...
// while below End.
type SweepConfig struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
	Step  int `yaml:"step"`
}

// Lengths expands the sweep into the visited lengths.
func (s SweepConfig) Lengths() []int {
	if s.Step <= 0 {
		return nil
	}
	var out []int
	for n := s.Start; n < s.End; n += s.Step {
		out = append(out, n)
	}
	return out
}

// ClassifierConfig selects the brute-force decision policy.
type ClassifierConfig struct {
	Policy               string `yaml:"policy"`
	ShortCircuitConstant bool   `yaml:"short_circuit_constant"`
	// MaxLength skips brute force above this length; the loop is
	// exponential and stops being practical in the mid twenties.
	MaxLength int `yaml:"max_length"`
}

// QuantumConfig configures the quantum execution collaborator.
type QuantumConfig struct {
	Executor string `yaml:"executor"`
	Shots    int    `yaml:"shots"`
}

// ReportConfig controls per-run artifacts.
type ReportConfig struct {
	Enabled     bool   `yaml:"enabled"`
	OutputDir   string `yaml:"output_dir"`
	Archive     bool   `yaml:"archive"`
	UseUUIDPath bool   `yaml:"use_uuid_path"`
}

// Logging controls stdout logging behavior.
type Logging struct {
	Verbose bool   `yaml:"verbose"`
	LogFile string `yaml:"log_file"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

// StorageConfig holds external storage settings.
type StorageConfig struct {
	S3  S3Config  `yaml:"s3"`
	GCS GCSConfig `yaml:"gcs"`
}

// CloudEnabled reports whether any cloud storage backend is enabled.
func (s StorageConfig) CloudEnabled() bool {
	return s.GCS.Enabled || s.S3.Enabled
}

// S3Config configures S3 uploads (AWS and S3-compatible endpoints).
type S3Config struct {
	Enabled         bool   `yaml:"enabled"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token"`
	UsePathStyle    bool   `yaml:"use_path_style"`
}

// GCSConfig configures GCS uploads.
type GCSConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

const (
	minLengthDefault     = 1
	maxLengthDefault     = 100
	sweepStartDefault    = 4
	sweepEndDefault      = 64
	sweepStepDefault     = 2
	classifierMaxDefault = 24
	shotsDefault         = 1024
)

// Load reads configuration from a YAML file. An empty path yields defaults.
func Load(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}
	normalizeConfig(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.RunInfo = runinfo.FromEnv()
	return cfg, nil
}

// Validate reports option combinations that cannot run.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeInteractive, ModeSweep:
	default:
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	if c.MinLength > c.MaxLength {
		return errors.Errorf("min_length %d exceeds max_length %d", c.MinLength, c.MaxLength)
	}
	if c.Length != 0 && (c.Length < c.MinLength || c.Length > c.MaxLength) {
		return errors.Errorf("length %d outside [%d, %d]", c.Length, c.MinLength, c.MaxLength)
	}
	if c.Mode == ModeSweep && len(c.Sweep.Lengths()) == 0 {
		return errors.Errorf("sweep %d..%d step %d visits no length", c.Sweep.Start, c.Sweep.End, c.Sweep.Step)
	}
	if c.Storage.S3.Enabled && c.Storage.S3.Bucket == "" {
		return errors.New("storage.s3.bucket is required when s3 is enabled")
	}
	if c.Storage.GCS.Enabled && c.Storage.GCS.Bucket == "" {
		return errors.New("storage.gcs.bucket is required when gcs is enabled")
	}
	return nil
}

func normalizeConfig(cfg *Config) {
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	if cfg.Mode == "" {
		cfg.Mode = ModeInteractive
	}
	cfg.Classifier.Policy = strings.ToLower(strings.TrimSpace(cfg.Classifier.Policy))
	if cfg.MinLength <= 0 {
		cfg.MinLength = minLengthDefault
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = maxLengthDefault
	}
	if cfg.Sweep.Step <= 0 {
		cfg.Sweep.Step = sweepStepDefault
	}
	if cfg.Sweep.Start <= 0 {
		cfg.Sweep.Start = sweepStartDefault
	}
	if cfg.Sweep.End <= 0 {
		cfg.Sweep.End = sweepEndDefault
	}
	if cfg.Classifier.MaxLength <= 0 {
		cfg.Classifier.MaxLength = classifierMaxDefault
	}
	if cfg.Quantum.Shots <= 0 {
		cfg.Quantum.Shots = shotsDefault
	}
	if cfg.Report.OutputDir == "" {
		cfg.Report.OutputDir = "reports"
	}
}

func defaultConfig() Config {
	return Config{
		Mode:      ModeInteractive,
		MinLength: minLengthDefault,
		MaxLength: maxLengthDefault,
		Sweep: SweepConfig{
			Start: sweepStartDefault,
			End:   sweepEndDefault,
			Step:  sweepStepDefault,
		},
		Classifier: ClassifierConfig{
			Policy:    "exhaustive",
			MaxLength: classifierMaxDefault,
		},
		Quantum: QuantumConfig{
			Executor: "ideal",
			Shots:    shotsDefault,
		},
		Report: ReportConfig{
			Enabled:   true,
			OutputDir: "reports",
			Archive:   true,
		},
		Logging: Logging{
			LogFile: "logs/jozsa.log",
		},
	}
}
