package humanid

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/namekit/pkg/vocab"
)

var (
	mu  sync.Mutex
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// intn draws from the shared package source under lock.
func intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rnd.Intn(n)
}

// Option configures identifier generation and parsing.
type Option func(*config)

// config holds the per-call configuration. Instances never outlive the call
// that built them.
type config struct {
	wordCount int
	separator string
	suffix    SuffixFunc
	rnd       *rand.Rand
}

// defaultConfig returns the default configuration: two words ("cute-rabbit"
// style), hyphen separator, no suffix, shared random source.
func defaultConfig() *config {
	return &config{
		wordCount: 2,
		separator: "-",
	}
}

// WithWordCount sets how many word components to generate. Valid values are
// 1 through 5; Generate reports ErrInvalidWordCount for anything else.
func WithWordCount(n int) Option {
	return func(c *config) {
		c.wordCount = n
	}
}

// WithSeparator sets the string placed between parts when generating and
// split on when parsing. Default is "-".
func WithSeparator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// WithSuffix sets the generator invoked for the optional trailing part.
// A nil fn disables the suffix.
func WithSuffix(fn SuffixFunc) Option {
	return func(c *config) {
		c.suffix = fn
	}
}

// WithRand sets the random source used for word selection, so tests can
// substitute a deterministic one. The source is used without locking;
// callers sharing a *rand.Rand across goroutines must serialize access.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rnd = r
	}
}

// Generate returns a random human-readable identifier such as "cute-rabbit"
// or, with five words, "bold-fox-swim-gladly-under". Component i is drawn
// uniformly from category i in the fixed order adjective, noun, verb,
// adverb, preposition. Draws are independent per position and per call:
// nothing is deduplicated or remembered, so uniqueness is probabilistic
// only (see Analyze for the odds).
//
// A configured SuffixFunc runs after the words; a non-empty return value is
// appended as the final part. A SuffixFunc that panics propagates to the
// caller unrecovered.
func Generate(opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.wordCount < 1 || cfg.wordCount > 5 {
		return "", ErrInvalidWordCount
	}

	pick := intn
	if cfg.rnd != nil {
		pick = cfg.rnd.Intn
	}

	parts := make([]string, 0, cfg.wordCount+1)
	for _, cat := range vocab.Categories()[:cfg.wordCount] {
		list := vocab.Words(cat)
		if len(list) == 0 {
			return "", fmt.Errorf("%w: %s", ErrEmptyCategory, cat)
		}
		parts = append(parts, list[pick(len(list))])
	}

	if cfg.suffix != nil {
		if s := cfg.suffix(); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, cfg.separator), nil
}
