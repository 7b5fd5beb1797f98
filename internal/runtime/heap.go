package runtime

const (
	heapGrowFactor     = 2
	initialGCThreshold = 1 << 20
)

// Heap owns every heap object the interpreter creates. It keeps the global
// allocation chain, the byte accounting that drives collection, the string
// intern table, and the precise root set: the compile-root stack (used by the
// reader while a parse is in flight), the runtime-root stack (used by the
// evaluator and builtins to pin transients), and the current-environment
// pointer.
//
// Collection is a tri-color mark-and-sweep: roots seed a gray queue, tracing
// blackens objects by marking their children, the intern table drops entries
// for unmarked strings, and the sweep unlinks and releases everything still
// unmarked. A collection may trigger on any allocation once the byte counter
// passes the threshold; after collecting, the threshold resets to the bytes
// still in use times the growth factor.
//
// A Heap is single-threaded; multiple heaps may coexist, one per interpreter.
type Heap struct {
	objs           Object
	bytesAllocated int
	nextGC         int
	idSeq          uint32

	gray    []Object
	strings map[uint32]*StringObj

	compileRoots []Object
	runtimeRoots []Object
	currentEnv   *EnvObj
}

// NewHeap creates an empty heap with the initial collection threshold.
func NewHeap() *Heap {
	return &Heap{
		nextGC:  initialGCThreshold,
		strings: make(map[uint32]*StringObj),
	}
}

// BytesAllocated returns the bytes currently charged to live objects.
func (h *Heap) BytesAllocated() int { return h.bytesAllocated }

// CurrentEnv returns the environment the collector treats as the live scope.
func (h *Heap) CurrentEnv() *EnvObj { return h.currentEnv }

// SetCurrentEnv points the collector at the environment that must stay live.
func (h *Heap) SetCurrentEnv(e *EnvObj) { h.currentEnv = e }

// register charges bytes for a freshly constructed object, collects if the
// threshold is exceeded, and links the object onto the allocation chain. The
// collection runs before the object is linked, so a new object can never be
// swept during its own allocation; any children it already references must
// be rooted by the caller.
func (h *Heap) register(o Object, bytes int) {
	h.bytesAllocated += bytes
	hdr := o.header()
	hdr.accounted = bytes

	if h.bytesAllocated > h.nextGC {
		h.Collect()
	}

	hdr.next = h.objs
	h.objs = o
}

// identityHash hands out a fresh nonzero hash for kinds whose equality is
// object identity. Sequenced per heap, so collection stays deterministic.
func (h *Heap) identityHash() uint32 {
	h.idSeq++
	return hashUint32(h.idSeq)
}

/* ----- rooting ----- */

// PushRoot pins o on the runtime-root stack.
func (h *Heap) PushRoot(o Object) {
	h.runtimeRoots = append(h.runtimeRoots, o)
}

// PopRoot unpins the most recently pushed runtime root.
func (h *Heap) PopRoot() {
	h.runtimeRoots = h.runtimeRoots[:len(h.runtimeRoots)-1]
}

// PushRootValue pins v's object on the runtime-root stack. Values that are
// not heap-backed are silently skipped, so Push/Pop pairs must use the same
// value.
func (h *Heap) PushRootValue(v Value) {
	if v.IsObject() {
		h.PushRoot(v.AsObject())
	}
}

// PopRootValue undoes PushRootValue for the same value.
func (h *Heap) PopRootValue(v Value) {
	if v.IsObject() {
		h.PopRoot()
	}
}

// RootDepth returns the runtime-root stack depth, used as a truncation mark
// for tail-recursion root reclamation.
func (h *Heap) RootDepth() int { return len(h.runtimeRoots) }

// TruncateRoots pops the runtime-root stack back to a recorded depth.
func (h *Heap) TruncateRoots(depth int) {
	if depth < len(h.runtimeRoots) {
		h.runtimeRoots = h.runtimeRoots[:depth]
	}
}

// PushCompileRoot pins o on the compile-root stack for the duration of a
// parse.
func (h *Heap) PushCompileRoot(o Object) {
	h.compileRoots = append(h.compileRoots, o)
}

// PushCompileRootValue pins v's object on the compile-root stack; non-heap
// values are skipped.
func (h *Heap) PushCompileRootValue(v Value) {
	if v.IsObject() {
		h.PushCompileRoot(v.AsObject())
	}
}

// ClearCompileRoots empties the compile-root stack. Called between top-level
// inputs, once the parsed tree is reachable from elsewhere.
func (h *Heap) ClearCompileRoots() {
	h.compileRoots = h.compileRoots[:0]
}

/* ----- collection ----- */

// Collect runs a full mark-and-sweep cycle and resets the threshold.
func (h *Heap) Collect() {
	h.markRoots()
	h.traceReferences()
	h.purgeStrings()
	h.sweep()

	h.nextGC = h.bytesAllocated * heapGrowFactor
}

func (h *Heap) markRoots() {
	if h.currentEnv != nil {
		h.markObject(h.currentEnv)
	}
	for _, o := range h.compileRoots {
		h.markObject(o)
	}
	for _, o := range h.runtimeRoots {
		h.markObject(o)
	}
}

// markValue marks the object behind v, if any.
func (h *Heap) markValue(v Value) {
	if v.IsObject() {
		h.markObject(v.AsObject())
	}
}

// markObject grays o unless it is already marked.
func (h *Heap) markObject(o Object) {
	if o == nil {
		return
	}
	hdr := o.header()
	if hdr.marked {
		return
	}
	hdr.marked = true
	h.gray = append(h.gray, o)
}

func (h *Heap) traceReferences() {
	for len(h.gray) > 0 {
		o := h.gray[len(h.gray)-1]
		h.gray = h.gray[:len(h.gray)-1]
		o.trace(h)
	}
}

// purgeStrings drops intern-table entries whose strings are about to be
// swept, so the table never holds a freed object.
func (h *Heap) purgeStrings() {
	for hash, s := range h.strings {
		if !s.marked {
			delete(h.strings, hash)
		}
	}
}

func (h *Heap) sweep() {
	var prev Object
	o := h.objs
	for o != nil {
		hdr := o.header()
		if hdr.marked {
			hdr.marked = false
			prev = o
			o = hdr.next
			continue
		}

		next := hdr.next
		if prev != nil {
			prev.header().next = next
		} else {
			h.objs = next
		}
		h.bytesAllocated -= hdr.accounted
		o.release()
		o = next
	}
}
