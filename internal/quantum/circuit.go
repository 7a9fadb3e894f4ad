// Package quantum describes the Deutsch–Jozsa circuit handed to a quantum
// execution service and the executors that run it.
package quantum

import (
	"fmt"
	"sort"
	"strings"

	"jozsa/internal/oracle"
)

// Gate names as they appear in OpenQASM and in CountOps.
const (
	GateX       = "x"
	GateH       = "h"
	GateCX      = "cx"
	GateBarrier = "barrier"
	GateMeasure = "measure"
)

// Op is one instruction on the circuit's qubits.
type Op struct {
	Name   string
	Qubits []int
	// Oracle marks instructions emitted inside the oracle block.
	Oracle bool
}

// Circuit is a Deutsch–Jozsa circuit over Inputs qubits plus one ancilla,
// which sits at index Inputs.
type Circuit struct {
	Inputs int
	Ops    []Op
}

// Build lays out the Deutsch–Jozsa experiment for def.
func Build(def oracle.Definition) *Circuit {
	n := def.Length
	c := &Circuit{Inputs: n}
	c.add(Op{Name: GateX, Qubits: []int{n}})
	for i := 0; i <= n; i++ {
		c.add(Op{Name: GateH, Qubits: []int{i}})
	}
	c.add(Op{Name: GateBarrier})
	if !def.Constant {
		for _, door := range def.ActiveDoors() {
			c.add(Op{Name: GateCX, Qubits: []int{door, n}, Oracle: true})
		}
	}
	c.add(Op{Name: GateBarrier})
	for i := 0; i < n; i++ {
		c.add(Op{Name: GateH, Qubits: []int{i}})
	}
	for i := 0; i < n; i++ {
		c.add(Op{Name: GateMeasure, Qubits: []int{i}})
	}
	return c
}

func (c *Circuit) add(op Op) {
	c.Ops = append(c.Ops, op)
}

// Qubits returns the total qubit count including the ancilla.
func (c *Circuit) Qubits() int {
	return c.Inputs + 1
}

// Ancilla returns the ancilla qubit index.
func (c *Circuit) Ancilla() int {
	return c.Inputs
}

// CountOps returns instruction counts per gate name.
func (c *Circuit) CountOps() map[string]int {
	counts := make(map[string]int)
	for _, op := range c.Ops {
		counts[op.Name]++
	}
	return counts
}

// FormatCounts renders CountOps with names in sorted order.
func (c *Circuit) FormatCounts() string {
	counts := c.CountOps()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, counts[name]))
	}
	return strings.Join(parts, " ")
}

// OracleControls returns the control qubits of the oracle block.
func (c *Circuit) OracleControls() []int {
	var out []int
	for _, op := range c.Ops {
		if op.Oracle && op.Name == GateCX && len(op.Qubits) == 2 {
			out = append(out, op.Qubits[0])
		}
	}
	return out
}

// QASM exports the circuit as OpenQASM 2.0.
func (c *Circuit) QASM() string {
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", c.Qubits())
	fmt.Fprintf(&b, "creg c[%d];\n", c.Qubits())
	for _, op := range c.Ops {
		switch op.Name {
		case GateBarrier:
			b.WriteString("barrier q;\n")
		case GateMeasure:
			fmt.Fprintf(&b, "measure q[%d] -> c[%d];\n", op.Qubits[0], op.Qubits[0])
		default:
			args := make([]string, 0, len(op.Qubits))
			for _, q := range op.Qubits {
				args = append(args, fmt.Sprintf("q[%d]", q))
			}
			fmt.Fprintf(&b, "%s %s;\n", op.Name, strings.Join(args, ","))
		}
	}
	return b.String()
}
