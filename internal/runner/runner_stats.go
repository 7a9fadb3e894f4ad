package runner

import (
	"fmt"
	"io"
	"strconv"

	"github.com/markkurossi/tabulate"
)

// printOutcomeTable renders one row per run, comparing classical and quantum
// verdicts with the generated truth.
func printOutcomeTable(w io.Writer, outcomes []Outcome) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Qubits").SetAlign(tabulate.MR)
	tab.Header("Constant").SetAlign(tabulate.MC)
	tab.Header("Classic").SetAlign(tabulate.MC)
	tab.Header("Seconds").SetAlign(tabulate.MR)
	tab.Header("Quantum").SetAlign(tabulate.MC)
	tab.Header("Agree").SetAlign(tabulate.MC)

	agreed := 0
	for _, o := range outcomes {
		row := tab.Row()
		row.Column(strconv.Itoa(o.Definition.Length))
		row.Column(strconv.FormatBool(o.Definition.Constant))
		if o.Classical != nil {
			row.Column(balanceLabel(o.Classical.Balanced()))
			row.Column(fmt.Sprintf("%.6f", o.Classical.ElapsedSeconds()))
		} else {
			row.Column("skipped").SetFormat(tabulate.FmtItalic)
			row.Column("-")
		}
		if o.QuantumErr != nil {
			row.Column("error").SetFormat(tabulate.FmtItalic)
		} else {
			row.Column(balanceLabel(!o.Histogram.Constant()))
		}
		row.Column(strconv.FormatBool(o.Agreement))
		if o.Agreement {
			agreed++
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column("")
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%d/%d", agreed, len(outcomes))).SetFormat(tabulate.FmtBold)
	tab.Print(w)
}

func balanceLabel(balanced bool) string {
	if balanced {
		return "balanced"
	}
	return "constant"
}
