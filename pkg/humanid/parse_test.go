package humanid_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/humanid"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		identifier string
		opts       []humanid.Option
		want       humanid.Parsed
	}{
		{
			name:       "numeric suffix",
			identifier: "cute-rabbit-042",
			want:       humanid.Parsed{Components: []string{"cute", "rabbit"}, Suffix: "042"},
		},
		{
			name:       "no suffix",
			identifier: "large-fox-swim",
			want:       humanid.Parsed{Components: []string{"large", "fox", "swim"}},
		},
		{
			name:       "empty string",
			identifier: "",
			want:       humanid.Parsed{Components: []string{""}},
		},
		{
			name:       "digits only",
			identifier: "123",
			want:       humanid.Parsed{Components: []string{}, Suffix: "123"},
		},
		{
			name:       "alphanumeric tail is not a suffix",
			identifier: "cute-rabbit-123abc",
			want:       humanid.Parsed{Components: []string{"cute", "rabbit", "123abc"}},
		},
		{
			name:       "hex suffix is not detected",
			identifier: "cute-rabbit-a7",
			want:       humanid.Parsed{Components: []string{"cute", "rabbit", "a7"}},
		},
		{
			name:       "adjacent separators keep empty components",
			identifier: "cute--rabbit",
			want:       humanid.Parsed{Components: []string{"cute", "", "rabbit"}},
		},
		{
			name:       "trailing separator",
			identifier: "cute-rabbit-",
			want:       humanid.Parsed{Components: []string{"cute", "rabbit", ""}},
		},
		{
			name:       "leading separator before digits",
			identifier: "-042",
			want:       humanid.Parsed{Components: []string{""}, Suffix: "042"},
		},
		{
			name:       "digit word followed by digit suffix",
			identifier: "42-42",
			want:       humanid.Parsed{Components: []string{"42"}, Suffix: "42"},
		},
		{
			name:       "custom separator",
			identifier: "cute_rabbit_007",
			opts:       []humanid.Option{humanid.WithSeparator("_")},
			want:       humanid.Parsed{Components: []string{"cute", "rabbit"}, Suffix: "007"},
		},
		{
			name:       "separator not present",
			identifier: "cute_rabbit",
			want:       humanid.Parsed{Components: []string{"cute_rabbit"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := humanid.Parse(tt.identifier, tt.opts...)
			assert.Equal(t, tt.want.Components, got.Components)
			assert.Equal(t, tt.want.Suffix, got.Suffix)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for wordCount := 1; wordCount <= 5; wordCount++ {
		t.Run(fmt.Sprintf("%d words", wordCount), func(t *testing.T) {
			t.Parallel()

			id, err := humanid.Generate(humanid.WithWordCount(wordCount))
			require.NoError(t, err)

			got := humanid.Parse(id)
			assert.Len(t, got.Components, wordCount)
			assert.Empty(t, got.Suffix, "no built-in word is purely numeric")
		})
	}
}

func TestParse_SuffixRoundTrip(t *testing.T) {
	t.Parallel()

	id, err := humanid.Generate(
		humanid.WithWordCount(2),
		humanid.WithSuffix(humanid.Number),
	)
	require.NoError(t, err)

	got := humanid.Parse(id)
	assert.Len(t, got.Components, 2)
	assert.Regexp(t, `^\d{3}$`, got.Suffix)
}
