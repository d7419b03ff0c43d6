package postag

import "errors"

var (
	// ErrAlignment indicates that parallel word and tag
	// sequences disagree in length.
	ErrAlignment = errors.New("word and tag sequences are misaligned")

	// ErrConfiguration indicates that a tag in the tagset has
	// no training occurrences, so its conditional
	// probabilities are undefined.
	ErrConfiguration = errors.New("tag has no training occurrences")

	// ErrImpossible indicates that no tag sequence has nonzero
	// probability for an observation sequence.
	ErrImpossible = errors.New("no tag sequence has nonzero probability")
)
