package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func toStr(h *Heap, v Value, readably bool) string {
	return ToString(h, v, readably).String()
}

func TestPrintImmediates(t *testing.T) {
	h := NewHeap()

	tests := []struct {
		value Value
		want  string
	}{
		{Nil(), "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(3), "3"},
		{Number(-7), "-7"},
		{Number(0), "0"},
		{Number(2.5), "2.500000"},
		{None(), ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, toStr(h, tt.value, true))
	}
}

func TestPrintStringModes(t *testing.T) {
	h := NewHeap()

	s := ObjValue(h.InternString("a\"b\n\tc\\"))
	require.Equal(t, "a\"b\n\tc\\", toStr(h, s, false))
	require.Equal(t, `"a\"b\n\tc\\"`, toStr(h, s, true))
}

func TestPrintComposites(t *testing.T) {
	h := NewHeap()

	num := func(n float64) Value { return Number(n) }

	list := ObjValue(h.NewList(num(1), num(2), num(3)))
	require.Equal(t, "(1 2 3)", toStr(h, list, true))

	vec := ObjValue(h.NewVector(num(1), num(2)))
	require.Equal(t, "[1, 2]", toStr(h, vec, true))

	require.Equal(t, "()", toStr(h, ObjValue(h.NewList()), true))
	require.Equal(t, "[]", toStr(h, ObjValue(h.NewVector()), true))
	require.Equal(t, "{}", toStr(h, ObjValue(h.NewMap()), true))

	kw := ObjValue(h.NewKeyword(":a"))
	m := ObjValue(h.NewMapFrom([]Value{kw, num(1)}))
	require.Equal(t, "{:a 1}", toStr(h, m, true))

	nested := ObjValue(h.NewList(ObjValue(h.NewVector(num(1))), ObjValue(h.InternString("x"))))
	require.Equal(t, `([1] "x")`, toStr(h, nested, true))
	require.Equal(t, "([1] x)", toStr(h, nested, false))
}

func TestPrintOpaqueTags(t *testing.T) {
	h := NewHeap()

	fn := ObjValue(h.NewFunc("noop", func(args []Value) (Value, *ExceptionObj) {
		return Nil(), nil
	}))
	require.Contains(t, toStr(h, fn, true), "<function ")

	env := h.NewEnv(nil)
	h.PushRoot(env)
	cl := h.NewClosure(env, Nil(), Nil())
	h.PopRoot()
	require.Contains(t, toStr(h, ObjValue(cl), true), "<closure ")

	cl.MarkMacro()
	require.Contains(t, toStr(h, ObjValue(cl), true), "<macro ")

	atom := ObjValue(h.NewAtom(Number(1)))
	require.Contains(t, toStr(h, atom, true), "<atom ")
}

func TestPrintExceptionPayload(t *testing.T) {
	h := NewHeap()

	e := h.NewException("boom %d", 7)
	require.Equal(t, "boom 7", toStr(h, ObjValue(e), true))
}

func TestEscapeRoundTrip(t *testing.T) {
	raw := []byte("plain \\ \"quoted\"\n\ttab")
	require.Equal(t, raw, UnescapeBytes(EscapeBytes(raw)))
}
