// Package decoy holds the template library: a fixed set of hand-authored
// Swift class skeletons and the machinery to fill them with synthesized
// identifiers.
//
// Each skeleton uses {{NAME}} placeholders; a per-template vars function
// builds the record of synthesized identifiers that fills the slots. This
// keeps the mapping from synthesized names to template slots explicit and
// testable in isolation from file orchestration.
//
// Templates are mutually independent. Selecting one is a uniform random
// choice over the fixed registry; no template consumes the output of
// another. The package performs no I/O.
package decoy
