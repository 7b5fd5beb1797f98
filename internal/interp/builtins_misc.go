package interp

import (
	"time"

	"github.com/cwbudde/go-lisp/internal/reader"
	"github.com/cwbudde/go-lisp/internal/runtime"
)

func (ip *Interp) evalFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("eval", args); exc != nil {
		return runtime.None(), exc
	}
	return ip.Eval(args[0], ip.global)
}

func (ip *Interp) readStringFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) != 1 || args[0].Str() == nil {
		return ip.throwf("RuntimeError: read-string arg is not string")
	}

	v, err := reader.Read(ip.heap, args[0].Str().String())
	ip.heap.ClearCompileRoots()
	if err != nil {
		return ip.throwf("%s", err.Error())
	}
	return v, nil
}

func (ip *Interp) throwFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("throw", args); exc != nil {
		return runtime.None(), exc
	}

	h := ip.heap
	payload := args[0].Str()
	if payload == nil {
		payload = runtime.ToString(h, args[0], false)
	}
	return runtime.None(), h.NewExceptionFrom(payload)
}

func (ip *Interp) timeMsFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return runtime.Number(float64(time.Now().UnixMilli())), nil
}

func (ip *Interp) gcFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	ip.heap.Collect()
	return runtime.Nil(), nil
}

func (ip *Interp) metaFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("meta", args); exc != nil {
		return runtime.None(), exc
	}

	switch {
	case args[0].List() != nil:
		return args[0].List().Meta(), nil
	case args[0].Vector() != nil:
		return args[0].Vector().Meta(), nil
	case args[0].Map() != nil:
		return args[0].Map().Meta(), nil
	case args[0].Func() != nil:
		return args[0].Func().Meta(), nil
	case args[0].Closure() != nil:
		return args[0].Closure().Meta(), nil
	}
	return ip.throwf("RuntimeError: base type doesn't have meta value")
}

// withMetaFn clones the argument with a new meta value. Only lists, vectors,
// maps, native functions, and closures carry meta; everything else raises.
func (ip *Interp) withMetaFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) != 2 {
		return ip.throwf("RuntimeError: with-meta needs two arguments")
	}

	h := ip.heap
	meta := args[1]

	switch {
	case args[0].List() != nil:
		clone := h.NewListFrom(args[0].List().Items())
		clone.SetMeta(meta)
		return runtime.ObjValue(clone), nil

	case args[0].Vector() != nil:
		clone := h.NewVectorFrom(args[0].Vector().Items())
		clone.SetMeta(meta)
		return runtime.ObjValue(clone), nil

	case args[0].Map() != nil:
		clone := h.CloneMap(args[0].Map())
		clone.SetMeta(meta)
		return runtime.ObjValue(clone), nil

	case args[0].Func() != nil:
		clone := h.CloneFunc(args[0].Func())
		clone.SetMeta(meta)
		return runtime.ObjValue(clone), nil

	case args[0].Closure() != nil:
		clone := h.CloneClosure(args[0].Closure())
		clone.SetMeta(meta)
		return runtime.ObjValue(clone), nil
	}

	return ip.throwf("RuntimeError: with-meta first arg doesn't support meta")
}
