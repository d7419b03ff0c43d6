// Package corpus reads tab-separated part-of-speech corpora
// and partitions them into training and testing subsets.
//
// The on-disk format is line oriented: each sentence starts
// with a unique identifier line, is followed by one
// "word<TAB>tag" line per token, and sentences are separated
// by a single blank line.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/unixpickle/essentials"
)

// A Sentence is a parallel, position-aligned pair of word and
// tag sequences. Both sequences always have the same nonzero
// length.
type Sentence struct {
	ID    string
	Words []string
	Tags  []string
}

// A Corpus is an ordered collection of sentences.
type Corpus struct {
	Sentences []Sentence
}

// A Pair is a single (word, tag) token.
type Pair struct {
	Word string
	Tag  string
}

// ReadFile reads a corpus from a file.
func ReadFile(path string) (c *Corpus, err error) {
	defer essentials.AddCtxTo("read corpus", &err)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read reads a corpus in the tab-separated sentence format.
//
// Every sentence must have at least one token, every token
// line must contain exactly one tab, and sentence identifiers
// must be unique.
func Read(r io.Reader) (*Corpus, error) {
	res := &Corpus{}
	seen := map[string]bool{}

	var cur *Sentence
	flush := func(line int) error {
		if cur == nil {
			return nil
		}
		if len(cur.Words) == 0 {
			return fmt.Errorf("line %d: sentence %q has no tokens", line, cur.ID)
		}
		res.Sentences = append(res.Sentences, *cur)
		cur = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if err := flush(lineNum); err != nil {
				return nil, err
			}
			continue
		}
		if cur == nil {
			if seen[line] {
				return nil, fmt.Errorf("line %d: duplicate sentence id %q", lineNum, line)
			}
			seen[line] = true
			cur = &Sentence{ID: line}
			continue
		}
		word, tag, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: malformed token line %q", lineNum, line)
		}
		cur.Words = append(cur.Words, word)
		cur.Tags = append(cur.Tags, tag)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(lineNum + 1); err != nil {
		return nil, err
	}
	return res, nil
}

// Len returns the number of sentences.
func (c *Corpus) Len() int {
	return len(c.Sentences)
}

// TokenCount returns the total number of tokens across all
// sentences.
func (c *Corpus) TokenCount() int {
	var n int
	for _, s := range c.Sentences {
		n += len(s.Words)
	}
	return n
}

// Words returns the sorted set of distinct words.
func (c *Corpus) Words() []string {
	set := map[string]bool{}
	for _, s := range c.Sentences {
		for _, w := range s.Words {
			set[w] = true
		}
	}
	return sortedKeys(set)
}

// Tags returns the sorted set of distinct tags.
func (c *Corpus) Tags() []string {
	set := map[string]bool{}
	for _, s := range c.Sentences {
		for _, t := range s.Tags {
			set[t] = true
		}
	}
	return sortedKeys(set)
}

// Pairs returns the flat stream of (word, tag) tokens in
// corpus order.
func (c *Corpus) Pairs() []Pair {
	res := make([]Pair, 0, c.TokenCount())
	for _, s := range c.Sentences {
		for i, w := range s.Words {
			res = append(res, Pair{Word: w, Tag: s.Tags[i]})
		}
	}
	return res
}

func sortedKeys(set map[string]bool) []string {
	res := make([]string, 0, len(set))
	for k := range set {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
