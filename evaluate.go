package postag

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Evaluate decodes every observation sequence and returns the
// token-level accuracy against the gold tags, in [0, 1].
//
// A sequence that cannot be decoded at all contributes zero
// correct predictions, but its tokens still count toward the
// denominator; an impossible sequence never aborts the batch.
// Mismatched collection or sequence lengths fail with
// ErrAlignment before any decoding starts.
//
// Sequences are decoded in parallel. The model is read-only,
// so the workers share it without locking.
func (m *Model) Evaluate(words, tags [][]string) (float64, error) {
	if len(words) != len(tags) {
		return 0, fmt.Errorf("evaluate: %w: %d observation sequences vs %d gold sequences",
			ErrAlignment, len(words), len(tags))
	}
	var total int
	for i := range words {
		if len(words[i]) != len(tags[i]) {
			return 0, fmt.Errorf("evaluate: sequence %d: %w: %d words vs %d tags",
				i, ErrAlignment, len(words[i]), len(tags[i]))
		}
		total += len(words[i])
	}
	if total == 0 {
		return 0, nil
	}

	correct := make([]int, len(words))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range words {
		i := i
		g.Go(func() error {
			predicted, err := m.Decode(words[i])
			if IsImpossible(err) {
				return nil
			} else if err != nil {
				return err
			}
			for j, tag := range predicted {
				if tag == tags[i][j] {
					correct[i]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var sum int
	for _, n := range correct {
		sum += n
	}
	return float64(sum) / float64(total), nil
}
