package humanid_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/humanid"
)

func TestSuffixGenerators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		suffix  humanid.SuffixFunc
		pattern string
		max     int
	}{
		{name: "Number", suffix: humanid.Number, pattern: `^\d{3}$`, max: 999},
		{name: "Number4", suffix: humanid.Number4, pattern: `^\d{4}$`, max: 9999},
		{name: "Timestamp", suffix: humanid.Timestamp, pattern: `^\d{1,4}$`, max: 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for i := 0; i < 200; i++ {
				s := tt.suffix()
				require.Regexp(t, tt.pattern, s)

				n, err := strconv.Atoi(s)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, n, 0)
				assert.LessOrEqual(t, n, tt.max)
			}
		})
	}

	t.Run("Hex", func(t *testing.T) {
		t.Parallel()

		for i := 0; i < 200; i++ {
			s := humanid.Hex()
			require.Regexp(t, `^[0-9a-f]{2}$`, s)

			n, err := strconv.ParseInt(s, 16, 64)
			require.NoError(t, err)
			assert.LessOrEqual(t, n, int64(0xff))
		}
	})

	t.Run("Letter", func(t *testing.T) {
		t.Parallel()

		for i := 0; i < 200; i++ {
			assert.Regexp(t, `^[a-z]$`, humanid.Letter())
		}
	})
}

func TestSuffixGenerators_CoverRange(t *testing.T) {
	t.Parallel()

	// 2000 letter draws missing one of 26 values is a ~10^-33 event.
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		seen[humanid.Letter()] = true
	}
	assert.Len(t, seen, 26)
}
