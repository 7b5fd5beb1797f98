package reader

import (
	"testing"

	"github.com/cwbudde/go-lisp/internal/runtime"
	"github.com/stretchr/testify/require"
)

func readPrinted(t *testing.T, h *runtime.Heap, source string) string {
	t.Helper()
	v, err := Read(h, source)
	require.NoError(t, err)
	return runtime.ToString(h, v, true).String()
}

func TestReadAtoms(t *testing.T) {
	h := runtime.NewHeap()

	tests := []struct {
		source string
		want   string
	}{
		{"nil", "nil"},
		{"true", "true"},
		{"false", "false"},
		{"42", "42"},
		{"-7", "-7"},
		{"2.5", "2.500000"},
		{"a-symbol", "a-symbol"},
		{"-", "-"},
		{":kw", ":kw"},
		{`"hello"`, `"hello"`},
		{`"tab\there"`, `"tab\there"`},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			require.Equal(t, tt.want, readPrinted(t, h, tt.source))
		})
	}
}

func TestReadComposites(t *testing.T) {
	h := runtime.NewHeap()

	tests := []struct {
		source string
		want   string
	}{
		{"()", "()"},
		{"(1 2 3)", "(1 2 3)"},
		{"(+ 1 (* 2 3))", "(+ 1 (* 2 3))"},
		{"[1 2]", "[1, 2]"},
		{"{:a 1}", "{:a 1}"},
		{"( 1, 2 ,3 )", "(1 2 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			require.Equal(t, tt.want, readPrinted(t, h, tt.source))
		})
	}
}

func TestSugarLowering(t *testing.T) {
	h := runtime.NewHeap()

	tests := []struct {
		source string
		want   string
	}{
		{"'x", "(quote x)"},
		{"`x", "(quasiquote x)"},
		{"~x", "(unquote x)"},
		{"~@xs", "(splice-unquote xs)"},
		{"@a", "(deref a)"},
		{"^{:doc 1} [1]", "(with-meta [1] {:doc 1})"},
		{"'(1 2)", "(quote (1 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			require.Equal(t, tt.want, readPrinted(t, h, tt.source))
		})
	}
}

func TestStringLiteralsAreInterned(t *testing.T) {
	h := runtime.NewHeap()

	a, err := Read(h, `"same"`)
	require.NoError(t, err)
	b, err := Read(h, `"same"`)
	require.NoError(t, err)

	require.Same(t, a.Str(), b.Str(), "two reads of one literal share the heap object")
}

func TestEmptyInputReturnsNone(t *testing.T) {
	h := runtime.NewHeap()

	for _, source := range []string{"", "   ", "; just a comment"} {
		v, err := Read(h, source)
		require.NoError(t, err)
		require.True(t, v.IsNone())
	}
}

func TestParseErrors(t *testing.T) {
	h := runtime.NewHeap()

	tests := []struct {
		source string
		want   string
	}{
		{"(1 2", "no match ')' found!"},
		{"[1", "no match ']' found!"},
		{"{:a 1", "no match '}' found!"},
		{")", "no match '(' found!"},
		{"]", "no match '[' found!"},
		{"}", "no match '{' found!"},
		{`"unterminated`, `no match '"' found!`},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			_, err := Read(h, tt.source)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
			require.Contains(t, err.Error(), "ParseError:")
		})
	}
}

func TestParseErrorCarriesLine(t *testing.T) {
	h := runtime.NewHeap()

	_, err := Read(h, "(1\n 2\n")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Line)
}

func TestParsedTreeIsCompileRooted(t *testing.T) {
	h := runtime.NewHeap()

	v, err := Read(h, "(a b (c d))")
	require.NoError(t, err)

	// A collection right after the parse must not reclaim the tree: it is
	// pinned by the compile roots until the caller clears them.
	h.Collect()
	require.Equal(t, "(a b (c d))", runtime.ToString(h, v, true).String())
}
