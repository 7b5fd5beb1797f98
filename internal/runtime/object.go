package runtime

// ObjKind enumerates the heap object kinds.
type ObjKind uint8

const (
	ObjString ObjKind = iota
	ObjSymbol
	ObjKeyword
	ObjList
	ObjVector
	ObjMap
	ObjFunction
	ObjClosure
	ObjAtom
	ObjException
	ObjEnv
)

// Approximate per-kind footprints used for byte accounting. The collector
// only needs the numbers to be consistent between allocation and sweep, not
// to match the host allocator exactly.
const (
	objHeaderSize    = 32
	valueSize        = 24
	stringObjSize    = objHeaderSize + 24
	symbolObjSize    = objHeaderSize + 8
	keywordObjSize   = objHeaderSize + 8
	listObjSize      = objHeaderSize + valueSize + 24
	vectorObjSize    = objHeaderSize + valueSize + 24
	mapObjSize       = objHeaderSize + valueSize + 48
	mapEntrySize     = 2*valueSize + 8
	funcObjSize      = objHeaderSize + valueSize + 24
	closureObjSize   = objHeaderSize + 3*valueSize + 16
	atomObjSize      = objHeaderSize + valueSize
	exceptionObjSize = objHeaderSize + 8
	envObjSize       = objHeaderSize + 16
)

// objHeader is embedded in every heap object: the kind tag, the mark bit,
// the memoized content hash (zero means "not yet computed"), the byte count
// charged at allocation, and the intrusive link of the global allocation
// chain.
type objHeader struct {
	kind      ObjKind
	marked    bool
	hash      uint32
	accounted int
	next      Object
}

func (h *objHeader) header() *objHeader { return h }

// Kind returns the object kind tag.
func (h *objHeader) Kind() ObjKind { return h.kind }

// Object is implemented by every heap-allocated entity. All allocation goes
// through a Heap, which owns the object from creation until the sweep that
// reclaims it. Handles held elsewhere are non-owning and must be kept live
// through the rooting protocol.
type Object interface {
	header() *objHeader
	Kind() ObjKind

	// trace marks every object this one references, feeding the gray queue
	// of an in-progress collection.
	trace(h *Heap)

	// release drops owned buffers when the sweep frees the object.
	release()
}
