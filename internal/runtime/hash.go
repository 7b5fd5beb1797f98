package runtime

import (
	"encoding/binary"
	"math"
)

// FNV-1a, 32 bit. String hashes are computed at intern time; composite
// hashes are derived from content and memoized in the object header.
const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// Seeds keep kinds with disjoint equality from sharing hash spaces. Lists
// and vectors share the sequence seed because they compare equal cross-kind.
const (
	seqHashSeed     uint32 = 0x9e3779b9
	mapHashSeed     uint32 = 0x85ebca6b
	symbolHashSeed  uint32 = 0xc2b2ae35
	keywordHashSeed uint32 = 0x27d4eb2f
	closureHashSeed uint32 = 0x165667b1
	funcHashSeed    uint32 = 0xd6e8feb8
)

// funcNameHash hashes a native function by its registered name, which is
// also its equality; clones share the name and therefore the hash.
func funcNameHash(name string) uint32 {
	return mixHash(funcHashSeed, hashBytes([]byte(name)))
}

func hashBytes(b []byte) uint32 {
	hash := fnvOffsetBasis
	for _, c := range b {
		hash ^= uint32(c)
		hash *= fnvPrime
	}
	if hash == 0 {
		hash = fnvOffsetBasis
	}
	return hash
}

func hashUint32(v uint32) uint32 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return hashBytes(buf[:])
}

func mixHash(seed uint32, parts ...uint32) uint32 {
	hash := seed
	var buf [4]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint32(buf[:], p)
		for _, c := range buf {
			hash ^= uint32(c)
			hash *= fnvPrime
		}
	}
	if hash == 0 {
		hash = seed
	}
	return hash
}

// Precomputed hashes for the immediates.
var (
	nilHash       = hashBytes([]byte("nil"))
	boolTrueHash  = hashBytes([]byte("true"))
	boolFalseHash = hashBytes([]byte("false"))
)

// ValueHash returns the content hash of v. Equal values hash equal within a
// kind, and across the list/vector cross-equality. Hashing never allocates.
func ValueHash(v Value) uint32 {
	switch v.kind {
	case KindNone:
		return 0
	case KindNil:
		return nilHash
	case KindBool:
		if v.AsBool() {
			return boolTrueHash
		}
		return boolFalseHash
	case KindNumber:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.num))
		return hashBytes(buf[:])
	default:
		return objectHash(v.obj)
	}
}

// objectHash returns the memoized hash of o, computing it on first use.
func objectHash(o Object) uint32 {
	hdr := o.header()
	if hdr.hash != 0 {
		return hdr.hash
	}

	var hash uint32
	switch obj := o.(type) {
	case *StringObj:
		// set at intern time; recompute defensively
		hash = hashBytes(obj.bytes)
	case *SymbolObj:
		hash = mixHash(symbolHashSeed, objectHash(obj.name))
	case *KeywordObj:
		hash = mixHash(keywordHashSeed, objectHash(obj.name))
	case *ListObj:
		hash = seqHash(obj.items)
	case *VectorObj:
		hash = seqHash(obj.items)
	case *MapObj:
		hash = mapHash(obj)
	case *ClosureObj:
		macroBit := uint32(0)
		if obj.isMacro {
			macroBit = 1
		}
		envHash := uint32(0)
		if obj.env != nil {
			envHash = objectHash(obj.env)
		}
		hash = mixHash(closureHashSeed,
			envHash, ValueHash(obj.params), ValueHash(obj.body), macroBit)
	default:
		// Function, atom, exception, and environment hashes are assigned
		// at allocation; reaching here means a zero identity hash, which
		// identityHash never hands out.
		hash = fnvOffsetBasis
	}

	hdr.hash = hash
	return hash
}

func seqHash(items []Value) uint32 {
	parts := make([]uint32, 0, len(items)+1)
	parts = append(parts, uint32(len(items)))
	for _, it := range items {
		parts = append(parts, ValueHash(it))
	}
	return mixHash(seqHashSeed, parts...)
}

// mapHash folds entries order-independently so two maps with the same
// contents hash equal regardless of insertion history.
func mapHash(m *MapObj) uint32 {
	var acc uint32
	for _, e := range m.entries {
		acc ^= mixHash(mapHashSeed, ValueHash(e.Key), ValueHash(e.Val))
	}
	return mixHash(mapHashSeed, acc, uint32(len(m.entries)))
}
