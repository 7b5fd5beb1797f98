package runtime

import "fmt"

// AtomObj is a single mutable value cell, the only mutability primitive the
// language exposes beyond def!.
type AtomObj struct {
	objHeader
	ref Value
}

// Ref returns the current value.
func (a *AtomObj) Ref() Value { return a.ref }

// SetRef replaces the current value.
func (a *AtomObj) SetRef(v Value) { a.ref = v }

func (a *AtomObj) trace(h *Heap) { h.markValue(a.ref) }
func (a *AtomObj) release()      {}

// ExceptionObj carries a runtime failure as it propagates toward the nearest
// try*/catch*. The payload is a human-readable string.
type ExceptionObj struct {
	objHeader
	info *StringObj
}

// Info returns the payload text.
func (e *ExceptionObj) Info() string { return e.info.String() }

// Payload returns the payload string object.
func (e *ExceptionObj) Payload() *StringObj { return e.info }

func (e *ExceptionObj) trace(h *Heap) { h.markObject(e.info) }
func (e *ExceptionObj) release()      {}

// NewAtom allocates an atom holding ref.
func (h *Heap) NewAtom(ref Value) *AtomObj {
	a := &AtomObj{objHeader: objHeader{kind: ObjAtom}, ref: ref}
	a.hash = h.identityHash()
	h.register(a, atomObjSize)
	return a
}

// NewException allocates an exception with a formatted payload.
func (h *Heap) NewException(format string, args ...any) *ExceptionObj {
	e := &ExceptionObj{objHeader: objHeader{kind: ObjException}}
	e.hash = h.identityHash()
	h.register(e, exceptionObjSize)

	// The payload allocation may collect; root the half-built exception.
	h.PushRoot(e)
	e.info = h.InternString(fmt.Sprintf(format, args...))
	h.PopRoot()
	return e
}

// NewExceptionFrom allocates an exception around an existing payload string.
// The payload is rooted across the allocation in case it is not reachable
// from anywhere else yet.
func (h *Heap) NewExceptionFrom(payload *StringObj) *ExceptionObj {
	e := &ExceptionObj{objHeader: objHeader{kind: ObjException}, info: payload}
	e.hash = h.identityHash()
	h.PushRoot(payload)
	h.register(e, exceptionObjSize)
	h.PopRoot()
	return e
}
