package humanid

import (
	"regexp"
	"strings"
)

// numericSuffix matches a part made solely of decimal digits.
var numericSuffix = regexp.MustCompile(`^[0-9]+$`)

// Parsed is an identifier split back into its parts. An empty Suffix means
// no numeric suffix was detected.
type Parsed struct {
	Components []string
	Suffix     string
}

// Parse splits identifier on the literal separator (default "-", override
// with WithSeparator) and classifies a trailing all-digit part as the
// suffix. It is total: any input, however malformed, yields a structurally
// valid result, including empty components for adjacent separators and a
// single empty component for the empty string.
//
// Only the all-digit shape is recognized as a suffix. Hex or letter
// suffixes produced by Generate come back as ordinary components, and a
// trailing part like "123abc" is never a suffix.
func Parse(identifier string, opts ...Option) Parsed {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	parts := strings.Split(identifier, cfg.separator)
	if len(parts) == 0 {
		return Parsed{Components: parts}
	}

	last := parts[len(parts)-1]
	if numericSuffix.MatchString(last) {
		return Parsed{Components: parts[:len(parts)-1], Suffix: last}
	}
	return Parsed{Components: parts}
}
