// Package match suggests near-miss names for misspelled type references.
//
// Names are compared after normalization (CamelCase tokenized, separators
// removed, case folded) using a length-normalized Levenshtein similarity.
package match
