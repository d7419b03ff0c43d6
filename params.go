package postag

import (
	"fmt"
	"math"
)

// Params holds the probability tables of a trained model.
//
// All probabilities are stored in the natural-log domain; a
// probability of exactly zero is stored as -Inf, which
// permanently excludes the corresponding transition or
// emission during decoding. Tables are dense and indexed by
// tag/word ids; they are never mutated after construction.
type Params struct {
	// Init[t] is log P(t starts a sentence), normalized by the
	// tag's unigram count rather than the sentence count.
	Init []float64

	// Final[t] is log P(t ends a sentence), with the same
	// normalization as Init.
	Final []float64

	// Trans[t1][t2] is log P(t2 | t1).
	Trans [][]float64

	// Emit[t][w] is log P(w | t).
	Emit [][]float64
}

// NewParams converts frequency counts into maximum-likelihood
// probability tables.
//
// No smoothing is applied: any zero count maps to a zero
// probability. A tag with a zero unigram count cannot be
// parameterized at all and fails with ErrConfiguration.
func NewParams(c *Counts) (*Params, error) {
	for t, n := range c.Unigram {
		if n == 0 {
			return nil, fmt.Errorf("estimate parameters: %w: tag id %d", ErrConfiguration, t)
		}
	}
	numTags := len(c.Unigram)
	p := &Params{
		Init:  make([]float64, numTags),
		Final: make([]float64, numTags),
		Trans: make([][]float64, numTags),
		Emit:  make([][]float64, numTags),
	}
	for t, n := range c.Unigram {
		p.Init[t] = logRatio(c.Starting[t], n)
		p.Final[t] = logRatio(c.Ending[t], n)
		p.Trans[t] = make([]float64, numTags)
		for t2, count := range c.Bigram[t] {
			p.Trans[t][t2] = logRatio(count, n)
		}
		p.Emit[t] = make([]float64, len(c.Emission[t]))
		for w, count := range c.Emission[t] {
			p.Emit[t][w] = logRatio(count, n)
		}
	}
	return p, nil
}

// logRatio converts a ratio of counts to the log domain.
// A zero numerator maps to -Inf rather than an error.
func logRatio(num, den int) float64 {
	if num == 0 {
		return math.Inf(-1)
	}
	return math.Log(float64(num) / float64(den))
}
