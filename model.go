package postag

import (
	"errors"
	"fmt"

	"github.com/unixpickle/essentials"

	"github.com/shaikhzhas/postag/corpus"
)

// A Model is a trained part-of-speech tagging model: the
// tagset and vocabulary observed in training plus the
// estimated probability tables.
//
// A Model is built once by Train and is read-only afterwards,
// so any number of goroutines may decode with it at the same
// time.
type Model struct {
	Tags   *TagSet
	Words  *Vocab
	Params *Params
}

// Train estimates a Model from labeled sentences.
//
// The tagset and vocabulary are derived from the training
// sentences themselves, so every tag in the tagset is
// guaranteed a nonzero unigram count. Sentences with
// mismatched word and tag lengths fail with ErrAlignment;
// an empty training set fails with ErrConfiguration.
func Train(sentences []corpus.Sentence) (m *Model, err error) {
	defer essentials.AddCtxTo("train model", &err)

	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: empty training set", ErrConfiguration)
	}

	var tags, words []string
	for _, s := range sentences {
		if len(s.Words) != len(s.Tags) {
			return nil, fmt.Errorf("sentence %q: %w: %d words vs %d tags",
				s.ID, ErrAlignment, len(s.Words), len(s.Tags))
		}
		if len(s.Words) == 0 {
			return nil, fmt.Errorf("sentence %q: empty sentence", s.ID)
		}
		tags = append(tags, s.Tags...)
		words = append(words, s.Words...)
	}
	tagSet := NewTagSet(tags)
	vocab := NewVocab(words)

	tagSeqs := make([][]TagID, len(sentences))
	wordSeqs := make([][]WordID, len(sentences))
	for i, s := range sentences {
		tagSeqs[i] = make([]TagID, len(s.Tags))
		for j, tag := range s.Tags {
			id, ok := tagSet.ID(tag)
			if !ok {
				return nil, fmt.Errorf("sentence %q: unknown tag %q", s.ID, tag)
			}
			tagSeqs[i][j] = id
		}
		wordSeqs[i] = make([]WordID, len(s.Words))
		for j, word := range s.Words {
			wordSeqs[i][j] = vocab.ID(word)
		}
	}

	counts, err := NewCounts(tagSet.Len(), vocab.Len(), tagSeqs, wordSeqs)
	if err != nil {
		return nil, err
	}
	params, err := NewParams(counts)
	if err != nil {
		return nil, err
	}
	return &Model{Tags: tagSet, Words: vocab, Params: params}, nil
}

// IsImpossible reports whether an error from Decode means that
// no tag sequence can explain the observations.
func IsImpossible(err error) bool {
	return errors.Is(err, ErrImpossible)
}
