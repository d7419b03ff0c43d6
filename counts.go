package postag

import "fmt"

// Counts holds the raw frequency tables computed from a
// labeled training corpus. All tables are indexed by dense
// tag/word ids and are never mutated after construction.
type Counts struct {
	// Unigram[t] is the total number of occurrences of tag t.
	Unigram []int

	// Bigram[t1][t2] is the number of times t2 immediately
	// follows t1 within a sentence. Pairs never span a
	// sentence boundary.
	Bigram [][]int

	// Starting[t] and Ending[t] count how many sentences begin
	// and end with tag t.
	Starting []int
	Ending   []int

	// Emission[t][w] is the number of times word w was labeled
	// with tag t.
	Emission [][]int
}

// NewCounts computes all frequency tables for a training set
// of parallel tag and word id sequences.
//
// The two outer collections and every inner pair of sequences
// must have equal lengths; otherwise NewCounts fails with
// ErrAlignment.
func NewCounts(numTags, numWords int, tagSeqs [][]TagID, wordSeqs [][]WordID) (*Counts, error) {
	emission, err := PairCounts(numTags, numWords, tagSeqs, wordSeqs)
	if err != nil {
		return nil, err
	}
	return &Counts{
		Unigram:  UnigramCounts(numTags, tagSeqs),
		Bigram:   BigramCounts(numTags, tagSeqs),
		Starting: StartingCounts(numTags, tagSeqs),
		Ending:   EndingCounts(numTags, tagSeqs),
		Emission: emission,
	}, nil
}

// UnigramCounts counts the occurrences of each tag across all
// sentences.
func UnigramCounts(numTags int, tagSeqs [][]TagID) []int {
	res := make([]int, numTags)
	for _, seq := range tagSeqs {
		for _, tag := range seq {
			res[tag]++
		}
	}
	return res
}

// BigramCounts counts adjacent tag pairs within each sentence.
// A pair whose first tag ends one sentence and whose second
// tag starts the next contributes nothing.
func BigramCounts(numTags int, tagSeqs [][]TagID) [][]int {
	res := intMatrix(numTags, numTags)
	for _, seq := range tagSeqs {
		for i := 1; i < len(seq); i++ {
			res[seq[i-1]][seq[i]]++
		}
	}
	return res
}

// StartingCounts counts, for each tag, the sentences whose
// first token carries that tag.
func StartingCounts(numTags int, tagSeqs [][]TagID) []int {
	res := make([]int, numTags)
	for _, seq := range tagSeqs {
		if len(seq) > 0 {
			res[seq[0]]++
		}
	}
	return res
}

// EndingCounts counts, for each tag, the sentences whose last
// token carries that tag.
func EndingCounts(numTags int, tagSeqs [][]TagID) []int {
	res := make([]int, numTags)
	for _, seq := range tagSeqs {
		if len(seq) > 0 {
			res[seq[len(seq)-1]]++
		}
	}
	return res
}

// PairCounts counts (tag, word) co-occurrences position by
// position. It fails with ErrAlignment if the outer
// collections or any sentence's tag and word sequences differ
// in length.
func PairCounts(numTags, numWords int, tagSeqs [][]TagID, wordSeqs [][]WordID) ([][]int, error) {
	if len(tagSeqs) != len(wordSeqs) {
		return nil, fmt.Errorf("pair counts: %w: %d tag sequences vs %d word sequences",
			ErrAlignment, len(tagSeqs), len(wordSeqs))
	}
	res := intMatrix(numTags, numWords)
	for i, tags := range tagSeqs {
		words := wordSeqs[i]
		if len(tags) != len(words) {
			return nil, fmt.Errorf("pair counts: sequence %d: %w: %d tags vs %d words",
				i, ErrAlignment, len(tags), len(words))
		}
		for j, tag := range tags {
			res[tag][words[j]]++
		}
	}
	return res, nil
}

func intMatrix(rows, cols int) [][]int {
	res := make([][]int, rows)
	for i := range res {
		res[i] = make([]int, cols)
	}
	return res
}
