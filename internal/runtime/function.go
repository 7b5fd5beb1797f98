package runtime

// NativeFn is the signature every built-in function conforms to. A failing
// native returns the None value together with a non-nil exception; on
// success the exception is nil. Natives may call back into the evaluator and
// may allocate, in which case they follow the rooting protocol.
type NativeFn func(args []Value) (Value, *ExceptionObj)

// FuncObj wraps a native function. The registered name doubles as the
// function's identity for equality.
type FuncObj struct {
	objHeader
	meta Value
	name string
	fn   NativeFn
}

// Name returns the name the function was registered under.
func (f *FuncObj) Name() string { return f.name }

// Fn returns the callable.
func (f *FuncObj) Fn() NativeFn { return f.fn }

// Meta returns the meta value (nil by default).
func (f *FuncObj) Meta() Value { return f.meta }

// SetMeta replaces the meta value.
func (f *FuncObj) SetMeta(m Value) { f.meta = m }

func (f *FuncObj) trace(h *Heap) { h.markValue(f.meta) }
func (f *FuncObj) release()      { f.fn = nil }

// ClosureObj pairs a body with the environment it captured, a parameter
// pattern (a list or vector of symbols, with an optional `&` rest marker),
// and the macro flag that switches argument evaluation off.
type ClosureObj struct {
	objHeader
	meta    Value
	env     *EnvObj
	params  Value
	body    Value
	isMacro bool
}

// Env returns the captured environment.
func (c *ClosureObj) Env() *EnvObj { return c.env }

// Params returns the parameter pattern.
func (c *ClosureObj) Params() Value { return c.params }

// Body returns the body form.
func (c *ClosureObj) Body() Value { return c.body }

// IsMacro reports whether the closure receives its arguments unevaluated.
func (c *ClosureObj) IsMacro() bool { return c.isMacro }

// MarkMacro flips the macro flag on. Used on defmacro! clones only.
func (c *ClosureObj) MarkMacro() { c.isMacro = true }

// Meta returns the meta value (nil by default).
func (c *ClosureObj) Meta() Value { return c.meta }

// SetMeta replaces the meta value.
func (c *ClosureObj) SetMeta(m Value) { c.meta = m }

func (c *ClosureObj) trace(h *Heap) {
	h.markValue(c.meta)
	// Environments chain outward and may be long; walk them iteratively
	// instead of relying on the gray queue alone.
	for env := c.env; env != nil; env = env.outer {
		h.markObject(env)
		if env.data != nil {
			h.markObject(env.data)
		}
	}
	h.markValue(c.params)
	h.markValue(c.body)
}

func (c *ClosureObj) release() {}

// NewFunc allocates a native-function object.
func (h *Heap) NewFunc(name string, fn NativeFn) *FuncObj {
	f := &FuncObj{objHeader: objHeader{kind: ObjFunction}, name: name, fn: fn}
	f.hash = funcNameHash(name)
	h.register(f, funcObjSize)
	return f
}

// CloneFunc allocates a copy of f, sharing its meta value.
func (h *Heap) CloneFunc(f *FuncObj) *FuncObj {
	clone := &FuncObj{objHeader: objHeader{kind: ObjFunction}, name: f.name, fn: f.fn, meta: f.meta}
	clone.hash = funcNameHash(f.name)
	h.register(clone, funcObjSize)
	return clone
}

// NewClosure allocates a closure capturing env.
func (h *Heap) NewClosure(env *EnvObj, params, body Value) *ClosureObj {
	c := &ClosureObj{objHeader: objHeader{kind: ObjClosure}, env: env, params: params, body: body}
	h.register(c, closureObjSize)
	return c
}

// CloneClosure allocates a copy of c, sharing env, params, body, and meta.
func (h *Heap) CloneClosure(c *ClosureObj) *ClosureObj {
	clone := &ClosureObj{
		objHeader: objHeader{kind: ObjClosure},
		env:       c.env,
		params:    c.params,
		body:      c.body,
		meta:      c.meta,
	}
	h.register(clone, closureObjSize)
	return clone
}
