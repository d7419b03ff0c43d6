package postag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaikhzhas/postag/corpus"
)

func TestEvaluatePerfect(t *testing.T) {
	model := trainOn(t,
		corpus.Sentence{ID: "s1", Words: []string{"a", "b"}, Tags: []string{"X", "Y"}},
		corpus.Sentence{ID: "s2", Words: []string{"b", "a"}, Tags: []string{"Y", "X"}},
	)
	acc, err := model.Evaluate(
		[][]string{{"a", "b"}},
		[][]string{{"X", "Y"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)
}

func TestEvaluateImpossibleCountsDenominator(t *testing.T) {
	model := trainOn(t, corpus.Sentence{
		ID:    "s1",
		Words: []string{"a", "b"},
		Tags:  []string{"X", "Y"},
	})

	// The second sequence is impossible (see
	// TestDecodeImpossible): it contributes zero correct
	// tokens but both of its tokens to the denominator.
	acc, err := model.Evaluate(
		[][]string{{"a", "b"}, {"b", "a"}},
		[][]string{{"X", "Y"}, {"Y", "X"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 0.5, acc)
}

func TestEvaluatePartialCredit(t *testing.T) {
	model := trainOn(t,
		corpus.Sentence{ID: "s1", Words: []string{"a", "b"}, Tags: []string{"X", "Y"}},
		corpus.Sentence{ID: "s2", Words: []string{"a", "b"}, Tags: []string{"X", "Y"}},
	)

	// Gold labels disagree with the model on the second
	// position only.
	acc, err := model.Evaluate(
		[][]string{{"a", "b"}},
		[][]string{{"X", "X"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 0.5, acc)
}

func TestEvaluateMisaligned(t *testing.T) {
	model := trainOn(t, corpus.Sentence{
		ID:    "s1",
		Words: []string{"a"},
		Tags:  []string{"X"},
	})

	_, err := model.Evaluate([][]string{{"a"}}, nil)
	require.ErrorIs(t, err, ErrAlignment)

	_, err = model.Evaluate([][]string{{"a", "a"}}, [][]string{{"X"}})
	require.ErrorIs(t, err, ErrAlignment)
}

func TestEvaluateLargeBatch(t *testing.T) {
	model := trainOn(t,
		corpus.Sentence{ID: "s1", Words: []string{"a", "b"}, Tags: []string{"X", "Y"}},
		corpus.Sentence{ID: "s2", Words: []string{"b", "a"}, Tags: []string{"Y", "X"}},
	)

	// Enough sequences to exercise the parallel fan-out.
	var words [][]string
	var tags [][]string
	for i := 0; i < 200; i++ {
		words = append(words, []string{"a", "b"})
		tags = append(tags, []string{"X", "Y"})
	}
	acc, err := model.Evaluate(words, tags)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)
}
