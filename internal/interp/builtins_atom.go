package interp

import "github.com/cwbudde/go-lisp/internal/runtime"

func (ip *Interp) atomFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("atom", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.ObjValue(ip.heap.NewAtom(args[0])), nil
}

func (ip *Interp) atomCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("atom?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].Atom() != nil), nil
}

func (ip *Interp) derefFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("deref", args); exc != nil {
		return runtime.None(), exc
	}
	a := args[0].Atom()
	if a == nil {
		return ip.throwf("RuntimeError: deref arg is not an atom")
	}
	return a.Ref(), nil
}

func (ip *Interp) resetFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) != 2 || args[0].Atom() == nil {
		return ip.throwf("RuntimeError: reset! arg is not an atom")
	}
	args[0].Atom().SetRef(args[1])
	return args[1], nil
}

// swapFn sets the atom to (f @atom extra...) and returns the new value. On
// an exception inside f the atom keeps its old value.
func (ip *Interp) swapFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) < 2 || args[0].Atom() == nil {
		return ip.throwf("RuntimeError: swap! arg is not an atom")
	}
	if !args[1].IsCallable() {
		return ip.throwf("RuntimeError: swap! 2nd arg is not callable")
	}

	h := ip.heap
	a := args[0].Atom()

	callArgs := h.NewListNil(len(args) - 1)
	h.PushRoot(callArgs)
	callArgs.SetAt(0, a.Ref())
	for i := 2; i < len(args); i++ {
		callArgs.SetAt(i-1, args[i])
	}

	ret, exc := ip.invoke(args[1], callArgs.Items())
	h.PopRoot()

	if exc == nil {
		a.SetRef(ret)
	}
	return ret, exc
}
