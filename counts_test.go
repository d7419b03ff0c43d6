package postag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnigramCounts(t *testing.T) {
	seqs := [][]TagID{{0, 1, 0}, {1, 1}}
	counts := UnigramCounts(3, seqs)
	assert.Equal(t, []int{2, 3, 0}, counts)
}

func TestBigramCounts(t *testing.T) {
	seqs := [][]TagID{{0, 1, 1}, {1, 0}}
	counts := BigramCounts(2, seqs)
	assert.Equal(t, 1, counts[0][1])
	assert.Equal(t, 1, counts[1][1])
	assert.Equal(t, 1, counts[1][0])
	assert.Equal(t, 0, counts[0][0])
}

func TestBigramCountsSentenceBoundary(t *testing.T) {
	// Tag 1 ends the first sentence and tag 0 starts the
	// second; the pair must not be counted.
	seqs := [][]TagID{{0, 1}, {0, 1}}
	counts := BigramCounts(2, seqs)
	assert.Equal(t, 2, counts[0][1])
	assert.Equal(t, 0, counts[1][0])
}

func TestStartingEndingCounts(t *testing.T) {
	seqs := [][]TagID{{0, 1, 2}, {0, 2}, {1}}
	assert.Equal(t, []int{2, 1, 0}, StartingCounts(3, seqs))
	assert.Equal(t, []int{0, 1, 2}, EndingCounts(3, seqs))
}

func TestPairCounts(t *testing.T) {
	tagSeqs := [][]TagID{{0, 1}, {1}}
	wordSeqs := [][]WordID{{1, 0}, {0}}
	counts, err := PairCounts(2, 2, tagSeqs, wordSeqs)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[0][1])
	assert.Equal(t, 2, counts[1][0])
	assert.Equal(t, 0, counts[0][0])
}

func TestPairCountsMisaligned(t *testing.T) {
	_, err := PairCounts(2, 2, [][]TagID{{0, 1}}, [][]WordID{{0}})
	require.ErrorIs(t, err, ErrAlignment)

	_, err = PairCounts(2, 2, [][]TagID{{0}, {1}}, [][]WordID{{0}})
	require.ErrorIs(t, err, ErrAlignment)
}

func TestEmissionPartitionsUnigram(t *testing.T) {
	tagSeqs := [][]TagID{{0, 1, 0, 2}, {2, 2, 1}, {0}}
	wordSeqs := [][]WordID{{3, 1, 0, 2}, {2, 3, 1}, {3}}
	counts, err := NewCounts(3, 4, tagSeqs, wordSeqs)
	require.NoError(t, err)

	for tag, unigram := range counts.Unigram {
		var sum int
		for _, n := range counts.Emission[tag] {
			sum += n
		}
		assert.Equal(t, unigram, sum, "tag %d", tag)
	}
}

func TestBigramRowBoundedByUnigram(t *testing.T) {
	tagSeqs := [][]TagID{{0, 1, 0, 2}, {2, 2, 1}, {0}}
	wordSeqs := [][]WordID{{0, 0, 0, 0}, {0, 0, 0}, {0}}
	counts, err := NewCounts(3, 1, tagSeqs, wordSeqs)
	require.NoError(t, err)

	for tag, unigram := range counts.Unigram {
		var sum int
		for _, n := range counts.Bigram[tag] {
			sum += n
		}
		assert.LessOrEqual(t, sum, unigram, "tag %d", tag)
	}
}
