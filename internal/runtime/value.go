// Package runtime provides the value model and memory manager for the
// go-lisp interpreter: the polymorphic Value cell, the heap object kinds,
// string interning, equality, hashing, printing, and a precise mark-and-sweep
// garbage collector driven by explicit root stacks.
package runtime

import "math"

// ValueKind tags the contents of a Value cell.
type ValueKind int8

// Value kinds. The zero value of Value is Nil; None is the internal
// "no value" sentinel used while an exception is in flight and is never
// observable from user code.
const (
	KindNone ValueKind = iota - 1
	KindNil
	KindBool
	KindNumber
	KindObject
)

// Value is the polymorphic runtime cell. Immediates (none, nil, booleans,
// numbers) live directly in the cell; everything else is a handle to a heap
// Object owned by a Heap. Copying a Value never duplicates heap state.
type Value struct {
	kind ValueKind
	num  float64
	obj  Object
}

// None returns the internal "no value" sentinel.
func None() Value { return Value{kind: KindNone} }

// Nil returns the nil value.
func Nil() Value { return Value{kind: KindNil} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, num: 1}
	}
	return Value{kind: KindBool}
}

// Number returns a numeric value. All numbers are IEEE-754 doubles.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// ObjValue wraps a heap object into a Value handle.
func ObjValue(o Object) Value { return Value{kind: KindObject, obj: o} }

// Kind returns the value kind tag.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNone() bool   { return v.kind == KindNone }
func (v Value) IsNil() bool    { return v.kind == KindNil }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsObject() bool { return v.kind == KindObject }

// AsBool returns the boolean payload. Only meaningful for bool values.
func (v Value) AsBool() bool { return v.num != 0 }

// AsNumber returns the numeric payload. Only meaningful for number values.
func (v Value) AsNumber() float64 { return v.num }

// AsObject returns the object handle. Only meaningful for object values.
func (v Value) AsObject() Object { return v.obj }

// Truthy reports whether v counts as true in a conditional position.
// The only falsy values are nil and false.
func (v Value) Truthy() bool {
	return !(v.kind == KindNil || (v.kind == KindBool && v.num == 0))
}

// IsInt reports whether v is a number holding an exactly integral value.
func (v Value) IsInt() bool {
	if v.kind != KindNumber {
		return false
	}
	return v.num == math.Trunc(v.num) && !math.IsInf(v.num, 0)
}

// Str returns the string object behind v, or nil when v is not a string.
func (v Value) Str() *StringObj {
	if v.kind != KindObject {
		return nil
	}
	s, _ := v.obj.(*StringObj)
	return s
}

// Symbol returns the symbol object behind v, or nil.
func (v Value) Symbol() *SymbolObj {
	if v.kind != KindObject {
		return nil
	}
	s, _ := v.obj.(*SymbolObj)
	return s
}

// Keyword returns the keyword object behind v, or nil.
func (v Value) Keyword() *KeywordObj {
	if v.kind != KindObject {
		return nil
	}
	k, _ := v.obj.(*KeywordObj)
	return k
}

// List returns the list object behind v, or nil.
func (v Value) List() *ListObj {
	if v.kind != KindObject {
		return nil
	}
	l, _ := v.obj.(*ListObj)
	return l
}

// Vector returns the vector object behind v, or nil.
func (v Value) Vector() *VectorObj {
	if v.kind != KindObject {
		return nil
	}
	vec, _ := v.obj.(*VectorObj)
	return vec
}

// Map returns the map object behind v, or nil.
func (v Value) Map() *MapObj {
	if v.kind != KindObject {
		return nil
	}
	m, _ := v.obj.(*MapObj)
	return m
}

// Func returns the native-function object behind v, or nil.
func (v Value) Func() *FuncObj {
	if v.kind != KindObject {
		return nil
	}
	f, _ := v.obj.(*FuncObj)
	return f
}

// Closure returns the closure object behind v, or nil.
func (v Value) Closure() *ClosureObj {
	if v.kind != KindObject {
		return nil
	}
	c, _ := v.obj.(*ClosureObj)
	return c
}

// Atom returns the atom object behind v, or nil.
func (v Value) Atom() *AtomObj {
	if v.kind != KindObject {
		return nil
	}
	a, _ := v.obj.(*AtomObj)
	return a
}

// Exception returns the exception object behind v, or nil.
func (v Value) Exception() *ExceptionObj {
	if v.kind != KindObject {
		return nil
	}
	e, _ := v.obj.(*ExceptionObj)
	return e
}

// Env returns the environment object behind v, or nil.
func (v Value) Env() *EnvObj {
	if v.kind != KindObject {
		return nil
	}
	e, _ := v.obj.(*EnvObj)
	return e
}

// SeqItems returns the element slice when v is a list or a vector, nil
// otherwise. The slice aliases the object's storage and must not outlive
// the object's rooting.
func (v Value) SeqItems() []Value {
	if v.kind != KindObject {
		return nil
	}
	switch o := v.obj.(type) {
	case *ListObj:
		return o.items
	case *VectorObj:
		return o.items
	}
	return nil
}

// IsSeq reports whether v is a list or a vector.
func (v Value) IsSeq() bool {
	if v.kind != KindObject {
		return false
	}
	switch v.obj.(type) {
	case *ListObj, *VectorObj:
		return true
	}
	return false
}

// IsPair reports whether v is a non-empty list or vector.
func (v Value) IsPair() bool {
	items := v.SeqItems()
	return v.IsSeq() && len(items) > 0
}

// SymbolIs reports whether v is the symbol with the given name.
func (v Value) SymbolIs(name string) bool {
	s := v.Symbol()
	return s != nil && s.Name() == name
}

// IsCallable reports whether v can be applied to arguments.
func (v Value) IsCallable() bool {
	return v.Func() != nil || v.Closure() != nil
}
