package naming

import (
	"fmt"
	"math/rand"
	"strings"
)

// Default probabilities for the optional augmentation branches. These
// mirror the tuning of the original generator and can be overridden via
// the configuration file.
const (
	// DefaultQualifierProbability is the chance a class name gains an
	// adjective qualifier prefix (e.g. "SecureNetworkManager").
	DefaultQualifierProbability = 0.3

	// DefaultCompletionProbability is the chance a method name gains the
	// "WithCompletion" suffix, suggesting a completion-handler API.
	DefaultCompletionProbability = 0.5

	// DefaultFileQualifierProbability is the chance a filename gains a
	// qualifier word before the extension (e.g. "DataStoreHelper.swift").
	DefaultFileQualifierProbability = 0.4
)

// Synthesizer draws identifiers from the naming pools. It is the single
// source of variability in generated decoy code: every identifier, literal,
// and embedded random number funnels through its *rand.Rand, so seeding
// that source reproduces a run byte for byte.
//
// A Synthesizer is not safe for concurrent use — rand.Rand is not
// goroutine-safe, and the generator is a straight-line tool that never
// needs concurrent synthesis.
type Synthesizer struct {
	rng *rand.Rand

	// qualifierP is the probability of prepending a class qualifier.
	qualifierP float64

	// completionP is the probability of the WithCompletion method suffix.
	completionP float64

	// Extra pool words merged in from configuration. Appended after the
	// built-in pools so that the built-in index order is preserved.
	extraPrefixes []string
	extraSuffixes []string
}

// NewSynthesizer creates a Synthesizer using the given random source and
// the default augmentation probabilities.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{
		rng:         rng,
		qualifierP:  DefaultQualifierProbability,
		completionP: DefaultCompletionProbability,
	}
}

// WithProbabilities overrides the qualifier and completion probabilities.
// Values are expected to be in [0, 1]; range validation happens at config
// load time, not here.
func (s *Synthesizer) WithProbabilities(qualifierP, completionP float64) *Synthesizer {
	s.qualifierP = qualifierP
	s.completionP = completionP
	return s
}

// WithExtraPools appends user-supplied words to the class prefix and
// suffix pools. Used to blend generated names into a specific project's
// vocabulary.
func (s *Synthesizer) WithExtraPools(prefixes, suffixes []string) *Synthesizer {
	s.extraPrefixes = prefixes
	s.extraSuffixes = suffixes
	return s
}

// pick returns a uniformly random element of the pool. Pools are
// statically non-empty, so selection cannot fail.
func (s *Synthesizer) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// classPrefix draws from the built-in prefix pool plus any extras.
func (s *Synthesizer) classPrefix() string {
	n := len(ClassPrefixes) + len(s.extraPrefixes)
	i := s.rng.Intn(n)
	if i < len(ClassPrefixes) {
		return ClassPrefixes[i]
	}
	return s.extraPrefixes[i-len(ClassPrefixes)]
}

// classSuffix draws from the built-in suffix pool plus any extras.
func (s *Synthesizer) classSuffix() string {
	n := len(ClassSuffixes) + len(s.extraSuffixes)
	i := s.rng.Intn(n)
	if i < len(ClassSuffixes) {
		return ClassSuffixes[i]
	}
	return s.extraSuffixes[i-len(ClassSuffixes)]
}

// ClassName generates a realistic class name matching the grammar
//
//	(Qualifier)? Prefix Suffix
//
// The qualifier branch fires with probability qualifierP.
func (s *Synthesizer) ClassName() string {
	prefix := s.classPrefix()
	suffix := s.classSuffix()
	if s.rng.Float64() < s.qualifierP {
		return s.pick(ClassQualifiers) + prefix + suffix
	}
	return prefix + suffix
}

// MethodName generates a realistic method name matching the grammar
//
//	Verb Object (WithCompletion)?
//
// The completion suffix fires with probability completionP, suggesting a
// completion-handler style API common in pre-async/await Swift.
func (s *Synthesizer) MethodName() string {
	verb := s.pick(MethodVerbs)
	obj := s.pick(MethodObjects)
	if s.rng.Float64() < s.completionP {
		return verb + obj + "WithCompletion"
	}
	return verb + obj
}

// PropertyName generates a property identifier: one pool word, with a
// 50% chance of a single trailing digit in 1–9.
func (s *Synthesizer) PropertyName() string {
	name := s.pick(PropertyNames)
	if s.rng.Intn(2) == 0 {
		return name + fmt.Sprintf("%d", 1+s.rng.Intn(9))
	}
	return name
}

// StringLiteral generates a filler string literal: a pool word joined by
// an underscore to six random lowercase letters, e.g. "token_qwpxzr".
func (s *Synthesizer) StringLiteral() string {
	var b strings.Builder
	b.WriteString(s.pick(LiteralWords))
	b.WriteByte('_')
	for i := 0; i < 6; i++ {
		b.WriteByte(byte('a' + s.rng.Intn(26)))
	}
	return b.String()
}

// QueueLabelSuffix returns a random integer in [1000, 9999], used as the
// numeric suffix of dispatch queue labels in the data-manager template.
func (s *Synthesizer) QueueLabelSuffix() int {
	return 1000 + s.rng.Intn(9000)
}

// FileName generates a realistic source filename:
//
//	Prefix Suffix (Helper|Extension|Utils)? <ext>
//
// The qualifier word fires with probability qualifierP (the caller passes
// the filename-specific probability, which differs from the class-name
// one). ext must include the leading dot.
func (s *Synthesizer) FileName(qualifierP float64, ext string) string {
	name := s.classPrefix() + s.classSuffix()
	if s.rng.Float64() < qualifierP {
		name += s.pick(FileQualifiers)
	}
	return name + ext
}
