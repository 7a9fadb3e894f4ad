package report

import (
	"archive/tar"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"jozsa/internal/runinfo"
	"jozsa/internal/util"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Artifact names inside a run directory.
const (
	SummaryName      = "summary.json"
	CircuitName      = "circuit.qasm"
	RunArchiveName   = "run.tar.zst"
	RunArchiveCodec  = "zstd"
	runReadmeContent = "# Deutsch-Jozsa run\n\n- summary.json: oracle, classical verdict, quantum histogram\n- circuit.qasm: OpenQASM 2.0 circuit submitted to the executor\n"
)

// Reporter writes run artifacts to disk.
type Reporter struct {
	OutputDir   string
	UseUUIDPath bool
	runSeq      int
}

// Run describes a report directory.
type Run struct {
	ID  string
	Dir string
}

// Summary captures the persisted metadata for one experiment run.
type Summary struct {
	RunID          string             `json:"run_id"`
	RunDir         string             `json:"run_dir"`
	Seed           int64              `json:"seed"`
	Timestamp      string             `json:"timestamp"`
	Oracle         OracleSummary      `json:"oracle"`
	Classical      ClassicalSummary   `json:"classical"`
	Quantum        QuantumSummary     `json:"quantum"`
	Agreement      bool               `json:"agreement"`
	Mismatch       string             `json:"mismatch,omitempty"`
	UploadLocation string             `json:"upload_location,omitempty"`
	ArchiveName    string             `json:"archive_name,omitempty"`
	ArchiveCodec   string             `json:"archive_codec,omitempty"`
	RunInfo        *runinfo.BasicInfo `json:"run_info,omitempty"`
}

// OracleSummary records the generated definition.
type OracleSummary struct {
	Length   int    `json:"length"`
	Doors    string `json:"doors"`
	Constant bool   `json:"constant"`
}

// ClassicalSummary records the brute-force verdict. Sum and Samples are
// decimal strings since they can exceed 64 bits.
type ClassicalSummary struct {
	Classifier     string  `json:"classifier"`
	Property       string  `json:"property"`
	Verdict        bool    `json:"verdict"`
	Balanced       bool    `json:"balanced"`
	Sum            string  `json:"sum"`
	Samples        string  `json:"samples"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Skipped        bool    `json:"skipped,omitempty"`
	SkipReason     string  `json:"skip_reason,omitempty"`
}

// QuantumSummary records the executor outcome.
type QuantumSummary struct {
	Executor  string         `json:"executor"`
	Shots     int            `json:"shots"`
	Ops       map[string]int `json:"ops"`
	Histogram map[string]int `json:"histogram"`
	Constant  bool           `json:"constant"`
	Error     string         `json:"error,omitempty"`
}

// New creates a reporter that writes to outputDir.
func New(outputDir string) *Reporter {
	return &Reporter{OutputDir: outputDir}
}

// NewRun allocates a new run directory.
func (r *Reporter) NewRun() (Run, error) {
	r.runSeq++
	runID := uuid.New().String()
	if v7, err := uuid.NewV7(); err == nil {
		runID = v7.String()
	}
	runDir := fmt.Sprintf("run_%04d_%s", r.runSeq, runID)
	if r.UseUUIDPath {
		runDir = runID
	}
	dir := filepath.Join(r.OutputDir, runDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Run{}, errors.Wrapf(err, "create run dir %s", dir)
	}
	_ = os.WriteFile(filepath.Join(dir, "README.md"), []byte(runReadmeContent), 0o644)
	return Run{ID: runID, Dir: dir}, nil
}

// WriteSummary writes summary.json into the run directory.
func (r *Reporter) WriteSummary(run Run, summary Summary) error {
	f, err := os.Create(filepath.Join(run.Dir, SummaryName))
	if err != nil {
		return err
	}
	defer util.CloseWithErr(f, "summary output")
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(summary)
}

// WriteText writes raw text content into the run directory.
func (r *Reporter) WriteText(run Run, name string, content string) error {
	path := filepath.Join(run.Dir, name)
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// WriteRunArchive creates a compressed archive of the run directory.
func (r *Reporter) WriteRunArchive(run Run) (name string, codec string, err error) {
	archivePath := filepath.Join(run.Dir, RunArchiveName)
	if removeErr := os.Remove(archivePath); removeErr != nil && !os.IsNotExist(removeErr) {
		return "", "", removeErr
	}
	defer func() {
		if err != nil {
			_ = os.Remove(archivePath)
		}
	}()
	file, err := os.Create(archivePath)
	if err != nil {
		return "", "", err
	}
	defer util.CloseWithErr(file, "archive output")

	zw, err := zstd.NewWriter(file)
	if err != nil {
		return "", "", err
	}
	defer func() {
		if closeErr := zw.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	tw := tar.NewWriter(zw)
	defer func() {
		if closeErr := tw.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	walkErr := filepath.WalkDir(run.Dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || path == archivePath {
			return nil
		}
		return addToArchive(tw, run.Dir, path, d)
	})
	if walkErr != nil {
		return "", "", walkErr
	}
	return RunArchiveName, RunArchiveCodec, nil
}

func addToArchive(tw *tar.Writer, root, path string, d fs.DirEntry) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return err
	}
	info, err := d.Info()
	if err != nil {
		return err
	}
	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = filepath.ToSlash(rel)
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer util.CloseWithErr(src, "archive source")
	_, err = io.Copy(tw, src)
	return err
}

// LoadSummaries reads every run summary below dir, oldest first.
func LoadSummaries(dir string) ([]Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read report dir %s", dir)
	}
	var out []Summary
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name(), SummaryName)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		var summary Summary
		if err := json.Unmarshal(data, &summary); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
		out = append(out, summary)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].RunDir < out[j].RunDir
	})
	return out, nil
}
