package postag

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Decode returns the most probable tag sequence for the given
// words under the model.
//
// Words outside the training vocabulary are replaced by the
// unknown-word sentinel before decoding. An unknown word
// contributes no emission factor for any tag, so the decision
// at that position is driven purely by transition
// probabilities.
//
// Decoding is deterministic: score ties are broken toward the
// lowest tag id. If every candidate tag sequence has zero
// probability, Decode fails with ErrImpossible.
func (m *Model) Decode(words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, errors.New("decode: empty observation sequence")
	}

	obs := make([]WordID, len(words))
	for i, w := range words {
		obs[i] = m.Words.ID(w)
	}

	numTags := m.Tags.Len()
	p := m.Params

	// score[t] is the best log probability of any tag sequence
	// ending in t that explains the observations so far.
	score := make([]float64, numTags)
	next := make([]float64, numTags)
	cand := make([]float64, numTags)
	back := make([][]TagID, len(obs))

	for t := 0; t < numTags; t++ {
		score[t] = p.Init[t] + m.emitLog(TagID(t), obs[0])
	}
	for i := 1; i < len(obs); i++ {
		bp := make([]TagID, numTags)
		for t := 0; t < numTags; t++ {
			for prev := 0; prev < numTags; prev++ {
				cand[prev] = score[prev] + p.Trans[prev][t]
			}
			best := floats.MaxIdx(cand)
			next[t] = cand[best] + m.emitLog(TagID(t), obs[i])
			bp[t] = TagID(best)
		}
		back[i] = bp
		score, next = next, score
	}
	for t := 0; t < numTags; t++ {
		score[t] += p.Final[t]
	}

	best := floats.MaxIdx(score)
	if math.IsInf(score[best], -1) {
		return nil, ErrImpossible
	}

	ids := make([]TagID, len(obs))
	ids[len(obs)-1] = TagID(best)
	for i := len(obs) - 1; i > 0; i-- {
		ids[i-1] = back[i][ids[i]]
	}
	res := make([]string, len(ids))
	for i, id := range ids {
		res[i] = m.Tags.Name(id)
	}
	return res, nil
}

// emitLog returns the log emission probability of a word under
// a tag, or the neutral factor for the unknown-word sentinel.
func (m *Model) emitLog(tag TagID, word WordID) float64 {
	if word == UnknownWord {
		return 0
	}
	return m.Params.Emit[tag][word]
}
