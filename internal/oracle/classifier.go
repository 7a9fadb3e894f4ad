package oracle

import (
	"math/big"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Classifier policy names.
const (
	PolicyExhaustive = "exhaustive"
	PolicyMajority   = "majority"
)

// Properties a verdict can assert.
const (
	PropertyBalanced = "balanced"
	PropertyConstant = "constant"
)

// fastPathLimit bounds the sample counts iterated with machine integers; the
// signed sum must stay inside int64.
const fastPathLimit = uint64(1) << 62

// Result is the outcome of one classification.
type Result struct {
	Classifier string
	// Property is what Verdict asserts: PropertyBalanced or PropertyConstant.
	Property string
	Verdict  bool
	Sum      *big.Int
	Samples  *big.Int
	Elapsed  time.Duration
}

// ElapsedSeconds returns the wall-clock time of the evaluation loop.
func (r Result) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// Balanced maps the verdict onto "is the oracle balanced". A majority
// verdict of "not constant" reads as balanced, since the oracle is promised
// to be one or the other.
func (r Result) Balanced() bool {
	if r.Property == PropertyConstant {
		return !r.Verdict
	}
	return r.Verdict
}

// Classifier decides whether an oracle is constant or balanced by evaluating it.
// Classification cost is exponential in the definition length; it runs to
// completion and has no partial result.
type Classifier interface {
	Name() string
	Property() string
	Classify(def Definition) Result
}

// NewClassifier builds the classifier for policy.
func NewClassifier(policy string, shortCircuitConstant bool) (Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", PolicyExhaustive:
		return Exhaustive{ShortCircuitConstant: shortCircuitConstant}, nil
	case PolicyMajority:
		return Majority{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownPolicy, "policy %q", policy)
	}
}

// Exhaustive evaluates the whole domain and reports balanced iff the signed
// sum is zero.
type Exhaustive struct {
	// ShortCircuitConstant returns "not balanced" for constant definitions
	// without evaluating anything.
	ShortCircuitConstant bool
}

// Name implements Classifier.
func (Exhaustive) Name() string { return PolicyExhaustive }

// Property implements Classifier.
func (Exhaustive) Property() string { return PropertyBalanced }

// Classify implements Classifier.
func (e Exhaustive) Classify(def Definition) Result {
	res := Result{Classifier: e.Name(), Property: e.Property(), Sum: new(big.Int), Samples: new(big.Int)}
	if e.ShortCircuitConstant && def.Constant {
		return res
	}
	start := time.Now()
	samples := DomainSize(def.Length)
	sum := signedSum(def, samples)
	res.Elapsed = time.Since(start)
	res.Sum = sum
	res.Samples = samples
	res.Verdict = sum.Sign() == 0
	return res
}

// Majority evaluates 2^(length-1)+1 points and reports constant iff every
// sampled output agreed. A balanced function cannot agree on a strict
// majority of its domain.
type Majority struct{}

// Name implements Classifier.
func (Majority) Name() string { return PolicyMajority }

// Property implements Classifier.
func (Majority) Property() string { return PropertyConstant }

// Classify implements Classifier.
func (m Majority) Classify(def Definition) Result {
	start := time.Now()
	samples := MajoritySamples(def.Length)
	sum := signedSum(def, samples)
	elapsed := time.Since(start)
	return Result{
		Classifier: m.Name(),
		Property:   m.Property(),
		Verdict:    new(big.Int).Abs(sum).Cmp(samples) == 0,
		Sum:        sum,
		Samples:    samples,
		Elapsed:    elapsed,
	}
}

// signedSum adds +1 for every true output and -1 for every false one over
// indexes [0, n).
func signedSum(def Definition, n *big.Int) *big.Int {
	if !n.IsUint64() || n.Uint64() > fastPathLimit {
		return signedSumBig(def, n)
	}
	limit := n.Uint64()
	var sum int64
	for i := uint64(0); i < limit; i++ {
		if Evaluate(def, DecodeWord(i, def.Length)) {
			sum++
		} else {
			sum--
		}
	}
	return big.NewInt(sum)
}

// signedSumBig is signedSum with arbitrary-precision counters, used once the
// sample count no longer fits an int64 sum.
func signedSumBig(def Definition, n *big.Int) *big.Int {
	sum := new(big.Int)
	one := big.NewInt(1)
	for i := new(big.Int); i.Cmp(n) < 0; i.Add(i, one) {
		if Evaluate(def, DecodeWordBig(i, def.Length)) {
			sum.Add(sum, one)
		} else {
			sum.Sub(sum, one)
		}
	}
	return sum
}
