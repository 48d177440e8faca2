// Package humanid generates human-readable identifiers such as
// "cute-rabbit" or "brave-fox-042" by joining randomly chosen vocabulary
// words, and provides the inverse parse operation plus collision-odds math
// for sizing a deployment.
//
// Identifiers are built from the fixed word categories in pkg/vocab, one
// word per position in the order adjective, noun, verb, adverb,
// preposition. An optional pluggable suffix generator appends a trailing
// part for extra entropy. The package is a pure function library: it never
// stores or checks previously issued identifiers, so collision avoidance is
// probabilistic only.
//
// # Usage
//
// Generate with defaults (two words, hyphen separator):
//
//	id, err := humanid.Generate()
//	// "cute-rabbit"
//
// Customize with functional options:
//
//	id, err := humanid.Generate(
//		humanid.WithWordCount(3),
//		humanid.WithSeparator("_"),
//		humanid.WithSuffix(humanid.Number),
//	)
//	// "bold_fox_swim_042"
//
// Parse an identifier back into components and a numeric suffix:
//
//	p := humanid.Parse("cute-rabbit-042")
//	// p.Components == []string{"cute", "rabbit"}, p.Suffix == "042"
//
// Estimate collision odds before settling on a configuration:
//
//	a, err := humanid.Analyze(2, 1)
//	// a.TotalCombinations == 5304, a.Scenarios[0].SampleSize == 50
//
// # Suffix generators
//
// Built-in SuffixFunc values cover the common shapes: Number (three digits),
// Number4 (four digits), Hex (two lowercase hex digits), Timestamp (last
// four digits of the millisecond clock), and Letter (single a-z). Any
// zero-argument func returning a string works; returning the empty string
// skips the suffix part for that call.
//
// Note the asymmetry with Parse: only all-digit suffixes are detected when
// parsing, so Hex and Letter suffixes come back as ordinary components.
//
// # Error handling
//
// Generate reports ErrInvalidWordCount for word counts outside 1 through 5;
// that is the only validation on the generate path. Parse is total and
// never fails. A panicking user-supplied SuffixFunc propagates to the
// caller unrecovered.
//
// # Thread safety
//
// The shared random source is mutex-guarded, so all functions are safe for
// concurrent use. A source injected via WithRand is used unlocked and must
// be serialized by the caller if shared.
package humanid
