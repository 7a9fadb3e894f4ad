package runner

import (
	"fmt"
	"strings"

	"jozsa/internal/metrics"
	"jozsa/internal/oracle"
	"jozsa/internal/quantum"
)

// Outcome is everything one run produced.
type Outcome struct {
	Definition oracle.Definition
	Circuit    *quantum.Circuit
	Histogram  quantum.Histogram
	QuantumErr error
	Classical  *oracle.Result
	SkipReason string
	Agreement  bool
	Mismatch   string
	RunDir     string
	Upload     string
}

// crossCheck compares every available verdict against the generated
// definition. Missing verdicts are not counted as disagreement.
func crossCheck(o Outcome) (bool, string) {
	var problems []string
	truthBalanced := !o.Definition.Constant
	if o.Classical != nil && o.Classical.Balanced() != truthBalanced {
		problems = append(problems, fmt.Sprintf("classical balanced=%t, generated balanced=%t", o.Classical.Balanced(), truthBalanced))
	}
	if o.QuantumErr == nil && o.Histogram != nil && o.Histogram.Constant() == truthBalanced {
		problems = append(problems, fmt.Sprintf("quantum constant=%t, generated constant=%t", o.Histogram.Constant(), o.Definition.Constant))
	}
	if len(problems) == 0 {
		return true, ""
	}
	return false, strings.Join(problems, "; ")
}

func observeOutcome(policy string, o Outcome) {
	if o.Classical != nil {
		metrics.ObserveClassification(policy, o.Classical.Balanced(), o.Classical.Elapsed)
	} else {
		metrics.ObserveSkipped(policy)
	}
	if !o.Agreement {
		metrics.ObserveMismatch()
	}
}
