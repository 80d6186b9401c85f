package iterator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(src Source) []string {
	var res []string
	for token, ok := src.Next(); ok; token, ok = src.Next() {
		res = append(res, token)
	}
	return res
}

func TestTokenizer(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "only_spaces",
			input:    " \t\n  ",
			expected: nil,
		},
		{
			name:     "flags_and_values",
			input:    "-l -p 1080 -d /hola/mundo",
			expected: []string{"-l", "-p", "1080", "-d", "/hola/mundo"},
		},
		{
			name:     "repeated_whitespace",
			input:    "  -p\t\t-1080 \n -d   -hola_mundo  ",
			expected: []string{"-p", "-1080", "-d", "-hola_mundo"},
		},
		{
			name:     "hyphens_are_not_special",
			input:    "- -- --x=1 a-b",
			expected: []string{"-", "--", "--x=1", "a-b"},
		},
		{
			name:     "unicode_spaces",
			input:    "añb\u00a0-ç\u2003z",
			expected: []string{"añb", "-ç", "z"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, collect(NewTokenizer(tc.input)))
		})
	}
}

func TestTokenizer_Exhausted(t *testing.T) {
	t.Parallel()

	tokenizer := NewTokenizer("-d x")
	token, ok := tokenizer.Next()
	require.True(t, ok)
	require.Equal(t, "-d", token)
	token, ok = tokenizer.Next()
	require.True(t, ok)
	require.Equal(t, "x", token)

	for i := 0; i < 3; i++ {
		token, ok = tokenizer.Next()
		require.False(t, ok)
		require.Empty(t, token)
	}
}

func TestTokenizer_Resumes(t *testing.T) {
	t.Parallel()

	tokenizer := NewTokenizer("a b c d")
	token, ok := tokenizer.Next()
	require.True(t, ok)
	require.Equal(t, "a", token)

	// the source is not restarted
	require.Equal(t, []string{"b", "c", "d"}, collect(tokenizer))
}

func TestFromArgs(t *testing.T) {
	t.Parallel()

	args := []string{"-d", "with space", "", "-p"}
	require.Equal(t, args, collect(FromArgs(args)))
	require.Nil(t, collect(FromArgs(nil)))
}
