package interp

import "github.com/cwbudde/go-lisp/internal/runtime"

func (ip *Interp) oneArg(name string, args []runtime.Value) *runtime.ExceptionObj {
	if len(args) != 1 {
		return ip.heap.NewException("RuntimeError: %s only needs one argument", name)
	}
	return nil
}

func (ip *Interp) listFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return runtime.ObjValue(ip.heap.NewListFrom(args)), nil
}

func (ip *Interp) listCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("list?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].List() != nil), nil
}

func (ip *Interp) vectorFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return runtime.ObjValue(ip.heap.NewVectorFrom(args)), nil
}

func (ip *Interp) vectorCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("vector?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].Vector() != nil), nil
}

func (ip *Interp) sequentialCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("sequential?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].IsSeq()), nil
}

func (ip *Interp) emptyCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("empty?", args); exc != nil {
		return runtime.None(), exc
	}
	if args[0].IsSeq() {
		return runtime.Bool(len(args[0].SeqItems()) == 0), nil
	}
	return runtime.Bool(true), nil
}

func (ip *Interp) countFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("count", args); exc != nil {
		return runtime.None(), exc
	}
	if args[0].IsSeq() {
		return runtime.Number(float64(len(args[0].SeqItems()))), nil
	}
	if s := args[0].Str(); s != nil {
		return runtime.Number(float64(s.Len())), nil
	}
	return runtime.Number(0), nil
}

func (ip *Interp) consFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) != 2 || args[1].List() == nil {
		return ip.throwf("RuntimeError: cons 2nd arg is not a list")
	}
	tail := args[1].List()
	ret := ip.heap.NewListNil(tail.Len() + 1)
	ret.SetAt(0, args[0])
	for i, v := range tail.Items() {
		ret.SetAt(i+1, v)
	}
	return runtime.ObjValue(ret), nil
}

// concatValues flattens lists and vectors into one list, skips nils, and
// keeps everything else as a single element.
func (ip *Interp) concatValues(args []runtime.Value) runtime.Value {
	var items []runtime.Value
	for _, a := range args {
		switch {
		case a.IsSeq():
			items = append(items, a.SeqItems()...)
		case a.IsNil():
			// skipped
		default:
			items = append(items, a)
		}
	}
	return runtime.ObjValue(ip.heap.NewListFrom(items))
}

func (ip *Interp) concatFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return ip.concatValues(args), nil
}

func (ip *Interp) nthFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) != 2 || !args[0].IsSeq() {
		return ip.throwf("RuntimeError: nth arg is not listlike")
	}
	if !args[1].IsNumber() {
		return ip.throwf("RuntimeError: nth index is not a number")
	}

	items := args[0].SeqItems()
	index := int(args[1].AsNumber())
	if index < 0 || index >= len(items) {
		return ip.throwf("nth out of range (%d/%d)", index, len(items))
	}
	return items[index], nil
}

func (ip *Interp) firstFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("first", args); exc != nil {
		return runtime.None(), exc
	}
	if args[0].IsNil() {
		return runtime.Nil(), nil
	}
	if !args[0].IsSeq() {
		return ip.throwf("RuntimeError: first arg is not listlike")
	}
	items := args[0].SeqItems()
	if len(items) == 0 {
		return runtime.Nil(), nil
	}
	return items[0], nil
}

func (ip *Interp) restFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("rest", args); exc != nil {
		return runtime.None(), exc
	}
	if args[0].IsNil() {
		return runtime.ObjValue(ip.heap.NewList()), nil
	}
	if !args[0].IsSeq() {
		return ip.throwf("RuntimeError: rest arg is not listlike")
	}
	items := args[0].SeqItems()
	if len(items) <= 1 {
		return runtime.ObjValue(ip.heap.NewList()), nil
	}
	return runtime.ObjValue(ip.heap.NewListFrom(items[1:])), nil
}

func (ip *Interp) conjFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) == 0 || !args[0].IsSeq() {
		return ip.throwf("RuntimeError: conj first argument must be listlike")
	}

	extra := args[1:]
	if lobj := args[0].List(); lobj != nil {
		// lists grow at the front, newest first
		ret := ip.heap.NewListNil(lobj.Len() + len(extra))
		for i, v := range extra {
			ret.SetAt(len(extra)-1-i, v)
		}
		for i, v := range lobj.Items() {
			ret.SetAt(len(extra)+i, v)
		}
		return runtime.ObjValue(ret), nil
	}

	// vectors grow at the back
	vec := args[0].Vector()
	ret := ip.heap.NewVectorNil(vec.Len() + len(extra))
	for i, v := range vec.Items() {
		ret.SetAt(i, v)
	}
	for i, v := range extra {
		ret.SetAt(vec.Len()+i, v)
	}
	return runtime.ObjValue(ret), nil
}

func (ip *Interp) seqFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("seq", args); exc != nil {
		return runtime.None(), exc
	}
	h := ip.heap
	arg := args[0]

	switch {
	case arg.IsNil():
		return arg, nil

	case arg.List() != nil:
		if arg.List().Len() == 0 {
			return runtime.Nil(), nil
		}
		return arg, nil

	case arg.Vector() != nil:
		vec := arg.Vector()
		if vec.Len() == 0 {
			return runtime.Nil(), nil
		}
		return runtime.ObjValue(h.NewListFrom(vec.Items())), nil

	case arg.Str() != nil:
		s := arg.Str()
		if s.Len() == 0 {
			return runtime.Nil(), nil
		}
		lobj := h.NewListNil(s.Len())
		h.PushRoot(lobj)
		for i := 0; i < s.Len(); i++ {
			lobj.SetAt(i, runtime.ObjValue(h.Intern(s.Bytes()[i:i+1])))
		}
		h.PopRoot()
		return runtime.ObjValue(lobj), nil
	}

	return ip.throwf("RuntimeError: seq type not support")
}

func (ip *Interp) hashMapFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return runtime.ObjValue(ip.heap.NewMapFrom(args)), nil
}

func (ip *Interp) mapCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("map?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].Map() != nil), nil
}

func (ip *Interp) assocFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) == 0 || args[0].Map() == nil {
		return ip.throwf("RuntimeError: assoc arg is not a map")
	}
	if len(args) == 1 || (len(args)-1)%2 != 0 {
		return ip.throwf("RuntimeError: assoc needs an even number of key/value args")
	}

	old := args[0].Map()
	newMap := ip.heap.NewMapFrom(args[1:])
	for _, e := range old.Entries() {
		if !newMap.Has(e.Key) {
			newMap.Set(e.Key, e.Val)
		}
	}
	return runtime.ObjValue(newMap), nil
}

func (ip *Interp) dissocFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) == 0 || args[0].Map() == nil {
		return ip.throwf("RuntimeError: dissoc arg is not a map")
	}

	newMap := ip.heap.CloneMap(args[0].Map())
	for _, key := range args[1:] {
		newMap.Delete(key)
	}
	return runtime.ObjValue(newMap), nil
}

func (ip *Interp) getFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) != 2 || args[0].Map() == nil {
		return ip.throwf("RuntimeError: get arg is not a map")
	}
	if v, ok := args[0].Map().Get(args[1]); ok {
		return v, nil
	}
	return runtime.Nil(), nil
}

func (ip *Interp) containsCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) != 2 || args[0].Map() == nil {
		return ip.throwf("RuntimeError: contains? arg is not a map")
	}
	return runtime.Bool(args[0].Map().Has(args[1])), nil
}

func (ip *Interp) keysFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("keys", args); exc != nil {
		return runtime.None(), exc
	}
	if args[0].Map() == nil {
		return ip.throwf("RuntimeError: keys arg is not a map")
	}

	entries := args[0].Map().Entries()
	keys := make([]runtime.Value, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return runtime.ObjValue(ip.heap.NewListFrom(keys)), nil
}

func (ip *Interp) valsFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("vals", args); exc != nil {
		return runtime.None(), exc
	}
	if args[0].Map() == nil {
		return ip.throwf("RuntimeError: vals arg is not a map")
	}

	entries := args[0].Map().Entries()
	vals := make([]runtime.Value, len(entries))
	for i, e := range entries {
		vals[i] = e.Val
	}
	return runtime.ObjValue(ip.heap.NewListFrom(vals)), nil
}

func (ip *Interp) applyFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) == 0 || !args[0].IsCallable() {
		return ip.throwf("RuntimeError: apply arg is not callable")
	}

	h := ip.heap
	flat := ip.concatValues(args[1:])
	h.PushRootValue(flat)
	ret, exc := ip.invoke(args[0], flat.List().Items())
	h.PopRootValue(flat)
	return ret, exc
}

func (ip *Interp) mapFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) == 0 || !args[0].IsCallable() {
		return ip.throwf("RuntimeError: map arg is not callable")
	}

	h := ip.heap
	flat := ip.concatValues(args[1:])
	h.PushRootValue(flat)

	items := flat.List().Items()
	ret := h.NewListNil(len(items))
	h.PushRoot(ret)

	for i, item := range items {
		v, exc := ip.invoke(args[0], []runtime.Value{item})
		if exc != nil {
			h.PopRoot()
			h.PopRootValue(flat)
			return runtime.None(), exc
		}
		ret.SetAt(i, v)
	}

	h.PopRoot()
	h.PopRootValue(flat)
	return runtime.ObjValue(ret), nil
}
