// Package postag implements a supervised first-order hidden
// Markov model for part-of-speech tagging.
//
// A Model is estimated from a labeled corpus by frequency
// counting (Train), decodes new word sequences with the
// Viterbi algorithm (Decode), and reports token-level accuracy
// over labeled batches (Evaluate).
package postag
