package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroValueIsNil(t *testing.T) {
	var v Value
	require.True(t, v.IsNil())
	require.False(t, v.Truthy())
}

func TestTruthiness(t *testing.T) {
	h := NewHeap()

	tests := []struct {
		name   string
		value  Value
		truthy bool
	}{
		{"nil", Nil(), false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Number(0), true},
		{"negative", Number(-1), true},
		{"empty string", ObjValue(h.InternString("")), true},
		{"empty list", ObjValue(h.NewList()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.truthy, tt.value.Truthy())
		})
	}
}

func TestIsInt(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{Number(0), true},
		{Number(42), true},
		{Number(-3), true},
		{Number(2.5), false},
		{Nil(), false},
		{Bool(true), false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.value.IsInt())
	}
}

func TestKindAccessors(t *testing.T) {
	h := NewHeap()

	list := ObjValue(h.NewList(Number(1)))
	require.NotNil(t, list.List())
	require.Nil(t, list.Vector())
	require.Nil(t, list.Str())
	require.True(t, list.IsSeq())
	require.True(t, list.IsPair())

	empty := ObjValue(h.NewVector())
	require.True(t, empty.IsSeq())
	require.False(t, empty.IsPair())

	require.True(t, ObjValue(h.NewSymbol("x")).SymbolIs("x"))
	require.False(t, ObjValue(h.NewSymbol("x")).SymbolIs("y"))
}

func TestNoneIsInternal(t *testing.T) {
	n := None()
	require.True(t, n.IsNone())
	require.False(t, n.IsNil())
	require.False(t, ValueEqual(n, n), "none never equals anything, itself included")
}
