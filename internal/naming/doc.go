// Package naming provides the word pools and the identifier synthesizer
// used to fill decoy code templates.
//
// The pools are fixed, ordered word lists, one per semantic category
// (class prefix, class suffix, qualifier, method verb, method object,
// property name, literal word). Selection is uniform-random with small
// probabilistic augmentations (a qualifier prefix, a digit suffix, an
// asynchronous-completion suffix).
//
// All randomness flows through an explicit *rand.Rand handed to the
// Synthesizer at construction. Seeding that source makes every generated
// identifier — and therefore every generated file — reproducible, and
// keeps parallel tests from interfering with each other.
package naming
