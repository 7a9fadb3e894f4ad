package quantum

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// Executor names.
const (
	ExecutorIdeal = "ideal"
)

// Histogram maps measured bit-strings to shot counts. Keys list the
// classical register most-significant bit first, so clbit 0 is rightmost.
type Histogram map[string]int

// Executor runs a circuit and returns its measurement histogram.
type Executor interface {
	Name() string
	Run(ctx context.Context, c *Circuit, shots int) (Histogram, error)
}

// NewExecutor returns the executor registered under name.
func NewExecutor(name string) (Executor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ExecutorIdeal:
		return Ideal{}, nil
	default:
		return nil, errors.Errorf("unknown quantum executor %q", name)
	}
}

// Ideal is a noiseless executor. A Deutsch–Jozsa circuit with an XOR-subset
// oracle measures exactly the door mask, so every shot lands on one key.
type Ideal struct{}

// Name implements Executor.
func (Ideal) Name() string { return ExecutorIdeal }

// Run implements Executor.
func (Ideal) Run(ctx context.Context, c *Circuit, shots int) (Histogram, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if shots <= 0 {
		return nil, errors.Errorf("shots must be positive, got %d", shots)
	}
	clbits := make([]byte, c.Qubits())
	for i := range clbits {
		clbits[i] = '0'
	}
	// Two CX gates on the same control cancel.
	for _, q := range c.OracleControls() {
		pos := len(clbits) - 1 - q
		if clbits[pos] == '0' {
			clbits[pos] = '1'
		} else {
			clbits[pos] = '0'
		}
	}
	return Histogram{string(clbits): shots}, nil
}

// Shots returns the total shot count.
func (h Histogram) Shots() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Constant reports whether every shot measured all zeros, which is the
// Deutsch–Jozsa signature of a constant oracle.
func (h Histogram) Constant() bool {
	if len(h) == 0 {
		return false
	}
	for key, n := range h {
		if n == 0 {
			continue
		}
		if strings.ContainsRune(key, '1') {
			return false
		}
	}
	return true
}

// MostFrequent returns the key with the highest count, lowest key on ties.
func (h Histogram) MostFrequent() string {
	best, bestN := "", -1
	for key, n := range h {
		if n > bestN || (n == bestN && key < best) {
			best, bestN = key, n
		}
	}
	return best
}
