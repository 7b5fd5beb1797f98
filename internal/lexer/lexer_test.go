package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func literals(t *testing.T, source string) []string {
	t.Helper()
	tokens, err := Tokenize(source)
	require.NoError(t, err)
	var out []string
	for _, tok := range tokens {
		out = append(out, tok.Literal)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \t\n , ,", nil},
		{"number", "42", []string{"42"}},
		{"symbol with punctuation", "swap!", []string{"swap!"}},
		{"list", "(+ 1 2)", []string{"(", "+", "1", "2", ")"}},
		{"vector and map", "[1 {:a 2}]", []string{"[", "1", "{", ":a", "2", "}", "]"}},
		{"quote sugar", "'x", []string{"'", "x"}},
		{"quasiquote sugar", "`(a)", []string{"`", "(", "a", ")"}},
		{"unquote", "~x", []string{"~", "x"}},
		{"splice unquote", "~@xs", []string{"~@", "xs"}},
		{"deref", "@a", []string{"@", "a"}},
		{"meta", "^{:a 1} [1]", []string{"^", "{", ":a", "1", "}", "[", "1", "]"}},
		{"string", `"hi there"`, []string{`"hi there"`}},
		{"string with escapes", `"a\"b\\c"`, []string{`"a\"b\\c"`}},
		{"comment skipped", "1 ; the rest is ignored\n2", []string{"1", "2"}},
		{"commas are whitespace", "(1, 2,3)", []string{"(", "1", "2", "3", ")"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, literals(t, tt.source))
		})
	}
}

func TestLineTracking(t *testing.T) {
	tokens, err := Tokenize("a\nb\n\nc")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, 1, tokens[0].Line)
	require.Equal(t, 2, tokens[1].Line)
	require.Equal(t, 4, tokens[2].Line)
}

func TestUnterminatedString(t *testing.T) {
	_, err := Tokenize("\n\"oops")
	require.Error(t, err)

	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	require.Equal(t, 2, scanErr.Line)
	require.Contains(t, err.Error(), "no match '\"' found!")
}
