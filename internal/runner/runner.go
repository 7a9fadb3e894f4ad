package runner

import (
	"context"
	"fmt"
	"io"

	"jozsa/internal/config"
	"jozsa/internal/generator"
	"jozsa/internal/oracle"
	"jozsa/internal/prompt"
	"jozsa/internal/quantum"
	"jozsa/internal/report"
	"jozsa/internal/uploader"
	"jozsa/internal/util"

	"github.com/pkg/errors"
)

// Runner drives experiment runs: generation, quantum execution, brute-force
// classification, cross-checking and reporting. Runs are strictly sequential.
type Runner struct {
	cfg        config.Config
	gen        *generator.Generator
	classifier oracle.Classifier
	executor   quantum.Executor
	reporter   *report.Reporter
	uploader   uploader.Uploader
	in         io.Reader
	out        io.Writer
	outcomes   []Outcome
}

// New constructs a Runner. in feeds the interactive prompt and out receives
// the per-run result lines.
func New(cfg config.Config, in io.Reader, out io.Writer) (*Runner, error) {
	classifier, err := oracle.NewClassifier(cfg.Classifier.Policy, cfg.Classifier.ShortCircuitConstant)
	if err != nil {
		return nil, err
	}
	executor, err := quantum.NewExecutor(cfg.Quantum.Executor)
	if err != nil {
		return nil, err
	}
	var up uploader.Uploader = uploader.NoopUploader{}
	if cfg.Storage.CloudEnabled() {
		cloud, err := uploader.New(cfg.Storage)
		if err != nil {
			util.Warnf("cloud uploader disabled err=%v", err)
		} else {
			up = cloud
		}
	}
	reporter := report.New(cfg.Report.OutputDir)
	reporter.UseUUIDPath = cfg.Report.UseUUIDPath
	return &Runner{
		cfg:        cfg,
		gen:        generator.New(cfg.Seed),
		classifier: classifier,
		executor:   executor,
		reporter:   reporter,
		uploader:   up,
		in:         in,
		out:        out,
	}, nil
}

// Seed returns the effective generator seed.
func (r *Runner) Seed() int64 {
	return r.gen.Seed
}

// Outcomes returns the results of finished runs in order.
func (r *Runner) Outcomes() []Outcome {
	return r.outcomes
}

// Run executes every run the configured mode asks for. Cancellation is
// honored between runs; a classification in progress always completes.
func (r *Runner) Run(ctx context.Context) error {
	lengths, err := r.lengths()
	if err != nil {
		return err
	}
	util.Infof("runner start mode=%s policy=%s executor=%s seed=%d runs=%d",
		r.cfg.Mode, r.classifier.Name(), r.executor.Name(), r.gen.Seed, len(lengths))
	for _, length := range lengths {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "runner stopped")
		}
		outcome, err := r.runOnce(ctx, length)
		if err != nil {
			return err
		}
		r.outcomes = append(r.outcomes, outcome)
	}
	if len(r.outcomes) > 1 {
		printOutcomeTable(r.out, r.outcomes)
	}
	return nil
}

func (r *Runner) lengths() ([]int, error) {
	if r.cfg.Mode == config.ModeSweep {
		return r.cfg.Sweep.Lengths(), nil
	}
	if r.cfg.Length > 0 {
		return []int{r.cfg.Length}, nil
	}
	n, err := prompt.ReadLength(r.in, r.out, r.cfg.MinLength, r.cfg.MaxLength)
	if err != nil {
		return nil, err
	}
	return []int{n}, nil
}

func (r *Runner) runOnce(ctx context.Context, length int) (Outcome, error) {
	def, err := r.gen.Generate(length)
	if err != nil {
		return Outcome{}, err
	}
	fmt.Fprintf(r.out, "Number of qubits: %d\n", length)
	if r.cfg.Cheat {
		fmt.Fprintf(r.out, "CNOT doors bitstring: %s\n", def)
		fmt.Fprintf(r.out, "Constant function: %t\n", def.Constant)
	}

	circuit := quantum.Build(def)
	util.Debugf("circuit ops length=%d %s", length, circuit.FormatCounts())
	outcome := Outcome{Definition: def, Circuit: circuit}
	outcome.Histogram, outcome.QuantumErr = r.executor.Run(ctx, circuit, r.cfg.Quantum.Shots)
	if outcome.QuantumErr != nil {
		util.Warnf("quantum execution failed length=%d err=%v", length, outcome.QuantumErr)
	} else {
		fmt.Fprintf(r.out, "Constant (quantum): %t. Top outcome: %s\n", outcome.Histogram.Constant(), outcome.Histogram.MostFrequent())
	}

	if length <= r.cfg.Classifier.MaxLength {
		res := r.classifier.Classify(def)
		outcome.Classical = &res
		fmt.Fprintf(r.out, "%s (classic): %t. Took %v seconds.\n", verdictLabel(res.Property), res.Verdict, res.ElapsedSeconds())
	} else {
		outcome.SkipReason = fmt.Sprintf("length %d exceeds brute-force ceiling %d (2^%d evaluations)", length, r.cfg.Classifier.MaxLength, length)
		util.Warnf("classical check skipped: %s", outcome.SkipReason)
	}

	outcome.Agreement, outcome.Mismatch = crossCheck(outcome)
	observeOutcome(r.classifier.Name(), outcome)
	if !outcome.Agreement {
		util.Errorf("cross-check mismatch length=%d doors=%s: %s", length, def, outcome.Mismatch)
	}
	if r.cfg.Report.Enabled {
		r.writeReport(ctx, &outcome)
	}
	return outcome, nil
}

func verdictLabel(property string) string {
	if property == oracle.PropertyConstant {
		return "Constant"
	}
	return "Balanced"
}
