package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"jozsa/internal/config"
	"jozsa/internal/report"
	"jozsa/internal/uploader"
	"jozsa/internal/util"

	"github.com/markkurossi/tabulate"
)

// LengthStats aggregates the runs for one oracle length.
type LengthStats struct {
	Length         int     `json:"length"`
	Runs           int     `json:"runs"`
	Classified     int     `json:"classified"`
	Skipped        int     `json:"skipped"`
	Agreed         int     `json:"agreed"`
	MeanSeconds    float64 `json:"mean_seconds"`
	MaxSeconds     float64 `json:"max_seconds"`
	QuantumQueries int     `json:"quantum_queries"`
}

// Manifest is the JSON payload written to the output directory.
type Manifest struct {
	GeneratedAt string           `json:"generated_at"`
	Source      string           `json:"source"`
	ByLength    []LengthStats    `json:"by_length"`
	Runs        []report.Summary `json:"runs"`
}

func main() {
	input := flag.String("input", "reports", "directory holding run_* report directories")
	output := flag.String("output", "web/public", "output directory for report.json")
	configPath := flag.String("config", "", "path to config file (for storage access)")
	publish := flag.Bool("publish", false, "upload the output directory to the configured storage")
	flag.Parse()

	summaries, err := report.LoadSummaries(*input)
	if err != nil {
		fail("load runs: %v", err)
	}
	manifest := Manifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Source:      *input,
		ByLength:    aggregate(summaries),
		Runs:        summaries,
	}
	printStats(os.Stdout, manifest.ByLength)
	if err := writeJSON(*output, manifest); err != nil {
		fail("write json: %v", err)
	}
	fmt.Printf("report json written to %s\n", filepath.Join(*output, "report.json"))

	if !*publish {
		return
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fail("load config: %v", err)
	}
	up, err := uploader.New(cfg.Storage)
	if err != nil {
		fail("build uploader: %v", err)
	}
	if !up.Enabled() {
		fail("publish requested but no storage backend is enabled")
	}
	location, err := up.UploadDir(context.Background(), *output)
	if err != nil {
		fail("publish: %v", err)
	}
	fmt.Printf("published report manifest to %s\n", location)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// aggregate groups summaries by oracle length in ascending order.
func aggregate(summaries []report.Summary) []LengthStats {
	byLength := map[int]*LengthStats{}
	totals := map[int]float64{}
	for _, s := range summaries {
		st, ok := byLength[s.Oracle.Length]
		if !ok {
			st = &LengthStats{Length: s.Oracle.Length}
			byLength[s.Oracle.Length] = st
		}
		st.Runs++
		// Deutsch–Jozsa needs a single oracle query regardless of length.
		st.QuantumQueries++
		if s.Agreement {
			st.Agreed++
		}
		if s.Classical.Skipped {
			st.Skipped++
			continue
		}
		st.Classified++
		totals[s.Oracle.Length] += s.Classical.ElapsedSeconds
		if s.Classical.ElapsedSeconds > st.MaxSeconds {
			st.MaxSeconds = s.Classical.ElapsedSeconds
		}
	}
	out := make([]LengthStats, 0, len(byLength))
	for length, st := range byLength {
		if st.Classified > 0 {
			st.MeanSeconds = totals[length] / float64(st.Classified)
		}
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Length < out[j].Length
	})
	return out
}

func printStats(w io.Writer, stats []LengthStats) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Qubits").SetAlign(tabulate.MR)
	tab.Header("Runs").SetAlign(tabulate.MR)
	tab.Header("Classified").SetAlign(tabulate.MR)
	tab.Header("Mean s").SetAlign(tabulate.MR)
	tab.Header("Max s").SetAlign(tabulate.MR)
	tab.Header("Agreed").SetAlign(tabulate.MR)
	for _, st := range stats {
		row := tab.Row()
		row.Column(strconv.Itoa(st.Length))
		row.Column(strconv.Itoa(st.Runs))
		row.Column(strconv.Itoa(st.Classified))
		if st.Classified == 0 {
			row.Column("-").SetFormat(tabulate.FmtItalic)
			row.Column("-").SetFormat(tabulate.FmtItalic)
		} else {
			row.Column(fmt.Sprintf("%.6f", st.MeanSeconds))
			row.Column(fmt.Sprintf("%.6f", st.MaxSeconds))
		}
		row.Column(fmt.Sprintf("%d/%d", st.Agreed, st.Runs))
	}
	tab.Print(w)
}

func writeJSON(output string, manifest Manifest) error {
	if err := os.MkdirAll(output, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(output, "report.json"))
	if err != nil {
		return err
	}
	defer util.CloseWithErr(f, "report output")
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(manifest)
}
