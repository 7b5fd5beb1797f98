package runtime

// EnvObj is a lexical environment: a bindings map plus a handle to the
// enclosing environment. Environments chain outward only and never form
// cycles among themselves, but a closure bound in an environment may capture
// that same environment, which the tracing collector handles natively.
type EnvObj struct {
	objHeader
	outer *EnvObj
	data  *MapObj
}

// Outer returns the enclosing environment, or nil for the global one.
func (e *EnvObj) Outer() *EnvObj { return e.outer }

// Bindings returns the bindings map.
func (e *EnvObj) Bindings() *MapObj { return e.data }

// Define binds key to val in this environment, shadowing any outer binding.
func (e *EnvObj) Define(key, val Value) {
	e.data.Set(key, val)
}

// Get resolves key by walking the environment chain outward.
func (e *EnvObj) Get(key Value) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.data.Get(key); ok {
			return v, true
		}
	}
	return Value{}, false
}

func (e *EnvObj) trace(h *Heap) {
	for env := e; env != nil; env = env.outer {
		h.markObject(env)
		if env.data != nil {
			h.markObject(env.data)
		}
	}
}

func (e *EnvObj) release() {}

// NewEnv allocates an environment enclosed by outer (nil for the global
// environment).
func (h *Heap) NewEnv(outer *EnvObj) *EnvObj {
	e := &EnvObj{objHeader: objHeader{kind: ObjEnv}}
	e.hash = h.identityHash()
	h.register(e, envObjSize)

	// The bindings-map allocation may collect; the half-built environment
	// must be rooted until its map handle is in place.
	h.PushRoot(e)
	e.data = h.NewMap()
	e.outer = outer
	h.PopRoot()
	return e
}
