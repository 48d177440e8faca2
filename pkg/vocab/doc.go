// Package vocab holds the fixed word lists that human-readable identifiers
// are built from: adjectives, nouns, verbs, adverbs, and prepositions.
//
// The lists are static, ordered, and never mutated after initialization, so
// every accessor is safe for concurrent use without locking. Category order
// matters: the Nth component of a generated identifier is drawn from the Nth
// category (adjective, noun, verb, adverb, preposition).
//
// # Usage
//
//	import "github.com/dmitrymomot/namekit/pkg/vocab"
//
//	nouns := vocab.Words(vocab.Noun)  // full noun list (a copy)
//	n := vocab.Size(vocab.Adjective)  // 78
//	sizes := vocab.Sizes()            // per-category size summary
//
// The package contains data and trivial accessors only; identifier
// generation, parsing, and collision math live in pkg/humanid.
package vocab
