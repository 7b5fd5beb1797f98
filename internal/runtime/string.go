package runtime

// StringObj is an immutable byte string. Strings are content-interned: the
// heap's intern table guarantees that two strings with equal bytes are the
// same object, which makes identity comparison equivalent to content
// comparison for strings, symbols, and keywords.
type StringObj struct {
	objHeader
	bytes []byte
}

// Bytes returns the raw byte contents. The slice must not be mutated.
func (s *StringObj) Bytes() []byte { return s.bytes }

// Len returns the byte length.
func (s *StringObj) Len() int { return len(s.bytes) }

// String returns the contents as a Go string.
func (s *StringObj) String() string { return string(s.bytes) }

func (s *StringObj) trace(h *Heap) {}
func (s *StringObj) release()      { s.bytes = nil }

// SymbolObj is an identifier. Its name is an interned string, so two symbols
// spelled the same share one name object.
type SymbolObj struct {
	objHeader
	name *StringObj
}

// Name returns the symbol's name.
func (s *SymbolObj) Name() string { return s.name.String() }

// NameObj returns the interned name string.
func (s *SymbolObj) NameObj() *StringObj { return s.name }

func (s *SymbolObj) trace(h *Heap) { h.markObject(s.name) }
func (s *SymbolObj) release()      {}

// KeywordObj is a self-evaluating identifier, distinct from Symbol.
type KeywordObj struct {
	objHeader
	name *StringObj
}

// Name returns the keyword's name.
func (k *KeywordObj) Name() string { return k.name.String() }

// NameObj returns the interned name string.
func (k *KeywordObj) NameObj() *StringObj { return k.name }

func (k *KeywordObj) trace(h *Heap) { h.markObject(k.name) }
func (k *KeywordObj) release()      {}

// Intern returns the interned string for the given bytes, allocating it on
// first sight. The contents are copied.
func (h *Heap) Intern(b []byte) *StringObj {
	hash := hashBytes(b)
	if s, ok := h.strings[hash]; ok {
		return s
	}

	s := &StringObj{objHeader: objHeader{kind: ObjString, hash: hash}}
	s.bytes = append([]byte(nil), b...)
	h.register(s, stringObjSize+len(b))
	h.strings[hash] = s
	return s
}

// InternString is Intern for a Go string.
func (h *Heap) InternString(s string) *StringObj {
	return h.Intern([]byte(s))
}

// NewSymbol allocates a symbol with the given name.
func (h *Heap) NewSymbol(name string) *SymbolObj {
	s := &SymbolObj{objHeader: objHeader{kind: ObjSymbol}}
	h.register(s, symbolObjSize)

	// The name allocation below may collect; the half-built symbol must be
	// rooted until its name handle is in place.
	h.PushRoot(s)
	s.name = h.InternString(name)
	h.PopRoot()
	return s
}

// NewSymbolFrom allocates a symbol around an already interned name.
func (h *Heap) NewSymbolFrom(name *StringObj) *SymbolObj {
	s := &SymbolObj{objHeader: objHeader{kind: ObjSymbol}, name: name}
	h.register(s, symbolObjSize)
	return s
}

// NewKeyword allocates a keyword with the given name.
func (h *Heap) NewKeyword(name string) *KeywordObj {
	k := &KeywordObj{objHeader: objHeader{kind: ObjKeyword}}
	h.register(k, keywordObjSize)

	h.PushRoot(k)
	k.name = h.InternString(name)
	h.PopRoot()
	return k
}

// NewKeywordFrom allocates a keyword around an already interned name.
func (h *Heap) NewKeywordFrom(name *StringObj) *KeywordObj {
	k := &KeywordObj{objHeader: objHeader{kind: ObjKeyword}, name: name}
	h.register(k, keywordObjSize)
	return k
}
