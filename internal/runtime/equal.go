package runtime

// ValueEqual implements the language's = semantics. Cross-kind comparisons
// are false except for the documented list/vector cross-equality; None never
// equals anything, including itself.
func ValueEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNone:
		return false
	case KindNil:
		return true
	case KindBool:
		return a.AsBool() == b.AsBool()
	case KindNumber:
		return a.num == b.num
	default:
		return objectEqual(a.obj, b.obj)
	}
}

func objectEqual(a, b Object) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}

	// Lists and vectors are both sequential and compare element-wise across
	// kinds; every other cross-kind pair is unequal.
	aSeq, aOK := seqItems(a)
	bSeq, bOK := seqItems(b)
	if aOK || bOK {
		if !aOK || !bOK {
			return false
		}
		if len(aSeq) != len(bSeq) {
			return false
		}
		for i := range aSeq {
			if !ValueEqual(aSeq[i], bSeq[i]) {
				return false
			}
		}
		return true
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch ao := a.(type) {
	case *StringObj:
		// interning makes identity equivalent to content equality
		return false
	case *SymbolObj:
		return ao.name == b.(*SymbolObj).name
	case *KeywordObj:
		return ao.name == b.(*KeywordObj).name
	case *FuncObj:
		return ao.name == b.(*FuncObj).name
	case *MapObj:
		bo := b.(*MapObj)
		if len(ao.entries) != len(bo.entries) {
			return false
		}
		for hash, ae := range ao.entries {
			be, ok := bo.entries[hash]
			if !ok {
				return false
			}
			if !ValueEqual(ae.Key, be.Key) || !ValueEqual(ae.Val, be.Val) {
				return false
			}
		}
		return true
	case *ClosureObj:
		bo := b.(*ClosureObj)
		return ao.env == bo.env &&
			ao.isMacro == bo.isMacro &&
			ValueEqual(ao.params, bo.params) &&
			ValueEqual(ao.body, bo.body)
	}

	// atoms, exceptions, and environments compare by identity, handled above
	return false
}

func seqItems(o Object) ([]Value, bool) {
	switch obj := o.(type) {
	case *ListObj:
		return obj.items, true
	case *VectorObj:
		return obj.items, true
	}
	return nil, false
}
