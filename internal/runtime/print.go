package runtime

import (
	"fmt"
	"strconv"
)

// escapePairs maps raw characters onto their two-character escape sequences,
// shared by readable printing and the reader's unescaping.
var escapePairs = []struct {
	raw     byte
	escaped byte
}{
	{'\\', '\\'},
	{'"', '"'},
	{'\'', '\''},
	{'\a', 'a'},
	{'\b', 'b'},
	{'\f', 'f'},
	{'\n', 'n'},
	{'\r', 'r'},
	{'\t', 't'},
	{'\v', 'v'},
	{0, '0'},
}

// EscapeBytes rewrites raw string bytes into their escaped readable form,
// without the surrounding quotes.
func EscapeBytes(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		escaped := false
		for _, p := range escapePairs {
			if c == p.raw {
				out = append(out, '\\', p.escaped)
				escaped = true
				break
			}
		}
		if !escaped {
			out = append(out, c)
		}
	}
	return out
}

// UnescapeBytes resolves backslash escape sequences in string-literal bytes.
// Unknown escapes keep the character after the backslash.
func UnescapeBytes(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		resolved := false
		for _, p := range escapePairs {
			if b[i+1] == p.escaped {
				out = append(out, p.raw)
				resolved = true
				break
			}
		}
		if !resolved {
			out = append(out, b[i+1])
		}
		i++
	}
	return out
}

// ToString renders v as an interned string. In readable mode strings are
// quoted and escaped so the result reads back as an equal value; in raw mode
// string bytes pass through verbatim. None renders as the empty string,
// which the host uses to suppress output.
//
// Rendering composites allocates child strings; each child stays on the
// runtime-root stack until the parent string is built, so a collection
// triggered mid-print cannot reclaim them.
func ToString(h *Heap, v Value, readably bool) *StringObj {
	switch v.kind {
	case KindNone:
		return h.InternString("")
	case KindNil:
		return h.InternString("nil")
	case KindBool:
		if v.AsBool() {
			return h.InternString("true")
		}
		return h.InternString("false")
	case KindNumber:
		return h.InternString(formatNumber(v))
	default:
		return objectToString(h, v.obj, readably)
	}
}

// formatNumber prints integral numbers without a decimal point and
// everything else in fixed-point form.
func formatNumber(v Value) string {
	if v.IsInt() {
		return strconv.FormatInt(int64(v.num), 10)
	}
	return strconv.FormatFloat(v.num, 'f', 6, 64)
}

func objectToString(h *Heap, o Object, readably bool) *StringObj {
	switch obj := o.(type) {
	case *StringObj:
		if !readably {
			return obj
		}
		out := make([]byte, 0, len(obj.bytes)+2)
		out = append(out, '"')
		out = append(out, EscapeBytes(obj.bytes)...)
		out = append(out, '"')
		return h.Intern(out)

	case *SymbolObj:
		return obj.name

	case *KeywordObj:
		return obj.name

	case *ListObj:
		return seqToString(h, obj.items, readably, '(', ')', " ")

	case *VectorObj:
		return seqToString(h, obj.items, readably, '[', ']', ", ")

	case *MapObj:
		return mapToString(h, obj, readably)

	case *FuncObj:
		return h.InternString(fmt.Sprintf("<function %p>", obj))

	case *ClosureObj:
		if obj.isMacro {
			return h.InternString(fmt.Sprintf("<macro %p>", obj))
		}
		return h.InternString(fmt.Sprintf("<closure %p>", obj))

	case *AtomObj:
		return h.InternString(fmt.Sprintf("<atom %p>", obj))

	case *ExceptionObj:
		return obj.info

	case *EnvObj:
		return h.InternString(fmt.Sprintf("<env %p>", obj))
	}

	return h.InternString("")
}

func seqToString(h *Heap, items []Value, readably bool, open, closing byte, sep string) *StringObj {
	if len(items) == 0 {
		return h.Intern([]byte{open, closing})
	}

	children := make([]*StringObj, len(items))
	for i, it := range items {
		children[i] = ToString(h, it, readably)
		h.PushRoot(children[i])
	}

	var out []byte
	out = append(out, open)
	for i, c := range children {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, c.bytes...)
	}
	out = append(out, closing)
	ret := h.Intern(out)

	for range children {
		h.PopRoot()
	}
	return ret
}

func mapToString(h *Heap, m *MapObj, readably bool) *StringObj {
	entries := m.Entries()
	if len(entries) == 0 {
		return h.InternString("{}")
	}

	children := make([]*StringObj, 0, len(entries)*2)
	for _, e := range entries {
		k := ToString(h, e.Key, readably)
		h.PushRoot(k)
		children = append(children, k)

		v := ToString(h, e.Val, readably)
		h.PushRoot(v)
		children = append(children, v)
	}

	var out []byte
	out = append(out, '{')
	for i := 0; i < len(children); i += 2 {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = append(out, children[i].bytes...)
		out = append(out, ' ')
		out = append(out, children[i+1].bytes...)
	}
	out = append(out, '}')
	ret := h.Intern(out)

	for range children {
		h.PopRoot()
	}
	return ret
}
