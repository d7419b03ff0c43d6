package postag

import "sort"

// WordID is the dense index of a word in a Vocab.
type WordID int

// UnknownWord is the id substituted for any word that does not
// appear in the training vocabulary. It is never the id of a
// real vocabulary entry.
const UnknownWord WordID = -1

// A Vocab maps words from the training corpus to dense integer
// ids. Ids are assigned in sorted word order.
//
// The vocabulary is open at decode time: looking up a word
// that was never seen in training yields UnknownWord rather
// than failing.
type Vocab struct {
	words []string
	ids   map[string]WordID
}

// NewVocab creates a Vocab from a list of words.
// Duplicates are collapsed.
func NewVocab(words []string) *Vocab {
	ids := map[string]WordID{}
	for _, word := range words {
		ids[word] = 0
	}
	unique := make([]string, 0, len(ids))
	for word := range ids {
		unique = append(unique, word)
	}
	sort.Strings(unique)
	for i, word := range unique {
		ids[word] = WordID(i)
	}
	return &Vocab{words: unique, ids: ids}
}

// Len returns the number of words.
func (v *Vocab) Len() int {
	return len(v.words)
}

// ID looks up the id of a word, or UnknownWord if the word is
// not in the vocabulary.
func (v *Vocab) ID(word string) WordID {
	if id, ok := v.ids[word]; ok {
		return id
	}
	return UnknownWord
}

// Word returns the word with the given id.
func (v *Vocab) Word(id WordID) string {
	return v.words[id]
}

// Words returns all words in id order.
// The caller may not modify the result.
func (v *Vocab) Words() []string {
	return v.words
}
