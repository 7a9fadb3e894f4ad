package runner

import (
	"context"
	"time"

	"jozsa/internal/report"
	"jozsa/internal/util"
)

func (r *Runner) buildSummary(run report.Run, o Outcome) report.Summary {
	summary := report.Summary{
		RunID:     run.ID,
		RunDir:    run.Dir,
		Seed:      r.gen.Seed,
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Oracle: report.OracleSummary{
			Length:   o.Definition.Length,
			Doors:    o.Definition.String(),
			Constant: o.Definition.Constant,
		},
		Classical: report.ClassicalSummary{
			Classifier: r.classifier.Name(),
			Property:   r.classifier.Property(),
			Skipped:    o.Classical == nil,
			SkipReason: o.SkipReason,
		},
		Quantum: report.QuantumSummary{
			Executor:  r.executor.Name(),
			Shots:     r.cfg.Quantum.Shots,
			Histogram: o.Histogram,
			Constant:  o.QuantumErr == nil && o.Histogram.Constant(),
		},
		Agreement: o.Agreement,
		Mismatch:  o.Mismatch,
		RunInfo:   r.cfg.RunInfo,
	}
	if o.Circuit != nil {
		summary.Quantum.Ops = o.Circuit.CountOps()
	}
	if o.QuantumErr != nil {
		summary.Quantum.Error = o.QuantumErr.Error()
	}
	if res := o.Classical; res != nil {
		summary.Classical.Verdict = res.Verdict
		summary.Classical.Balanced = res.Balanced()
		summary.Classical.Sum = res.Sum.String()
		summary.Classical.Samples = res.Samples.String()
		summary.Classical.ElapsedSeconds = res.ElapsedSeconds()
	}
	return summary
}

// writeReport persists the run directory, archives and uploads it. Failures
// are logged; a run is never failed by its report.
func (r *Runner) writeReport(ctx context.Context, o *Outcome) {
	run, err := r.reporter.NewRun()
	if err != nil {
		util.Warnf("report dir failed err=%v", err)
		return
	}
	o.RunDir = run.Dir
	if o.Circuit != nil {
		if err := r.reporter.WriteText(run, report.CircuitName, o.Circuit.QASM()); err != nil {
			util.Warnf("write circuit failed dir=%s err=%v", run.Dir, err)
		}
	}
	summary := r.buildSummary(run, *o)
	if r.cfg.Report.Archive {
		summary.ArchiveName, summary.ArchiveCodec = report.RunArchiveName, report.RunArchiveCodec
	}
	if err := r.reporter.WriteSummary(run, summary); err != nil {
		util.Warnf("write summary failed dir=%s err=%v", run.Dir, err)
		return
	}
	// The archived summary never carries the upload location.
	if r.cfg.Report.Archive {
		if _, _, err := r.reporter.WriteRunArchive(run); err != nil {
			util.Warnf("archive failed dir=%s err=%v", run.Dir, err)
			summary.ArchiveName, summary.ArchiveCodec = "", ""
			if err := r.reporter.WriteSummary(run, summary); err != nil {
				util.Warnf("rewrite summary failed dir=%s err=%v", run.Dir, err)
			}
		}
	}
	if r.uploader.Enabled() {
		location, err := r.uploader.UploadDir(ctx, run.Dir)
		if err != nil {
			util.Warnf("upload failed dir=%s err=%v", run.Dir, err)
		} else {
			summary.UploadLocation = location
			o.Upload = location
			util.Infof("run uploaded to %s", location)
		}
	}
	if summary.UploadLocation != "" {
		if err := r.reporter.WriteSummary(run, summary); err != nil {
			util.Warnf("rewrite summary failed dir=%s err=%v", run.Dir, err)
		}
	}
	util.Debugf("run report written dir=%s", run.Dir)
}
