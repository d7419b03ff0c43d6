package corpus

import "math/rand"

// Split partitions the corpus into training and testing
// subsets. frac is the fraction of sentences assigned to the
// training subset.
//
// The partition is a deterministic function of the seed, and
// both subsets preserve the original sentence order.
func (c *Corpus) Split(frac float64, seed int64) (train, test *Corpus) {
	gen := rand.New(rand.NewSource(seed))
	perm := gen.Perm(len(c.Sentences))

	numTrain := int(frac * float64(len(c.Sentences)))
	inTrain := make([]bool, len(c.Sentences))
	for _, idx := range perm[:numTrain] {
		inTrain[idx] = true
	}

	train, test = &Corpus{}, &Corpus{}
	for i, s := range c.Sentences {
		if inTrain[i] {
			train.Sentences = append(train.Sentences, s)
		} else {
			test.Sentences = append(test.Sentences, s)
		}
	}
	return train, test
}
