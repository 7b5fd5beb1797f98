package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueEqual(t *testing.T) {
	h := NewHeap()

	num := func(n float64) Value { return Number(n) }
	str := func(s string) Value { return ObjValue(h.InternString(s)) }
	sym := func(s string) Value { return ObjValue(h.NewSymbol(s)) }
	kw := func(s string) Value { return ObjValue(h.NewKeyword(s)) }

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil=nil", Nil(), Nil(), true},
		{"true=true", Bool(true), Bool(true), true},
		{"true!=false", Bool(true), Bool(false), false},
		{"numbers", num(1.5), num(1.5), true},
		{"numbers differ", num(1), num(2), false},
		{"nil!=false", Nil(), Bool(false), false},
		{"string content", str("abc"), str("abc"), true},
		{"string differ", str("abc"), str("abd"), false},
		{"symbol", sym("foo"), sym("foo"), true},
		{"keyword", kw(":k"), kw(":k"), true},
		{"symbol!=string", sym("foo"), str("foo"), false},
		{"symbol!=keyword", sym("k"), kw("k"), false},
		{
			"list=list",
			ObjValue(h.NewList(num(1), num(2))),
			ObjValue(h.NewList(num(1), num(2))),
			true,
		},
		{
			"list=vector cross",
			ObjValue(h.NewList(num(1), num(2), num(3))),
			ObjValue(h.NewVector(num(1), num(2), num(3))),
			true,
		},
		{
			"vector=list cross",
			ObjValue(h.NewVector(num(1))),
			ObjValue(h.NewList(num(1))),
			true,
		},
		{
			"seq length differs",
			ObjValue(h.NewList(num(1))),
			ObjValue(h.NewVector(num(1), num(2))),
			false,
		},
		{
			"nested seq",
			ObjValue(h.NewList(ObjValue(h.NewVector(num(1))), str("x"))),
			ObjValue(h.NewList(ObjValue(h.NewList(num(1))), str("x"))),
			true,
		},
		{
			"map equal regardless of insertion order",
			ObjValue(h.NewMapFrom([]Value{kw(":a"), num(1), kw(":b"), num(2)})),
			ObjValue(h.NewMapFrom([]Value{kw(":b"), num(2), kw(":a"), num(1)})),
			true,
		},
		{
			"map value differs",
			ObjValue(h.NewMapFrom([]Value{kw(":a"), num(1)})),
			ObjValue(h.NewMapFrom([]Value{kw(":a"), num(2)})),
			false,
		},
		{"list!=map", ObjValue(h.NewList()), ObjValue(h.NewMap()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValueEqual(tt.a, tt.b))
			require.Equal(t, tt.want, ValueEqual(tt.b, tt.a), "equality must be symmetric")
		})
	}
}

func TestAtomEqualityIsIdentity(t *testing.T) {
	h := NewHeap()

	a := h.NewAtom(Number(1))
	b := h.NewAtom(Number(1))
	require.True(t, ValueEqual(ObjValue(a), ObjValue(a)))
	require.False(t, ValueEqual(ObjValue(a), ObjValue(b)))
}

// Equal values must hash equal, for every kind and across the list/vector
// cross-equality.
func TestEqualImpliesSameHash(t *testing.T) {
	h := NewHeap()

	num := func(n float64) Value { return Number(n) }
	kw := func(s string) Value { return ObjValue(h.NewKeyword(s)) }

	pairs := [][2]Value{
		{Nil(), Nil()},
		{Bool(true), Bool(true)},
		{num(3.25), num(3.25)},
		{ObjValue(h.InternString("s")), ObjValue(h.InternString("s"))},
		{ObjValue(h.NewSymbol("sym")), ObjValue(h.NewSymbol("sym"))},
		{ObjValue(h.NewKeyword(":kw")), ObjValue(h.NewKeyword(":kw"))},
		{
			ObjValue(h.NewList(num(1), num(2))),
			ObjValue(h.NewVector(num(1), num(2))),
		},
		{
			ObjValue(h.NewMapFrom([]Value{kw(":a"), num(1), kw(":b"), num(2)})),
			ObjValue(h.NewMapFrom([]Value{kw(":b"), num(2), kw(":a"), num(1)})),
		},
	}

	for _, p := range pairs {
		require.True(t, ValueEqual(p[0], p[1]))
		require.Equal(t, ValueHash(p[0]), ValueHash(p[1]))
	}
}

func TestHashMemoized(t *testing.T) {
	h := NewHeap()

	l := h.NewList(Number(1), Number(2))
	first := ValueHash(ObjValue(l))
	require.NotZero(t, first)
	require.Equal(t, first, ValueHash(ObjValue(l)))
	require.Equal(t, first, l.header().hash)
}
