package interp

import "github.com/cwbudde/go-lisp/internal/runtime"

// macroCallee returns the macro closure a form would invoke, or nil when the
// form is not a macro call: it must be a non-empty list whose head symbol
// resolves through the environment chain to a closure with the macro flag.
func (ip *Interp) macroCallee(v runtime.Value, env *runtime.EnvObj) *runtime.ClosureObj {
	lobj := v.List()
	if lobj == nil || lobj.Len() == 0 {
		return nil
	}
	head := lobj.At(0)
	if head.Symbol() == nil {
		return nil
	}
	bound, ok := env.Get(head)
	if !ok {
		return nil
	}
	cl := bound.Closure()
	if cl == nil || !cl.IsMacro() {
		return nil
	}
	return cl
}

// macroExpand repeatedly applies the macro at the head of v to its
// unevaluated tail until the head no longer names a macro. It reports
// whether any expansion happened; an exception raised inside a macro body
// short-circuits the loop.
func (ip *Interp) macroExpand(v runtime.Value, env *runtime.EnvObj) (runtime.Value, bool, *runtime.ExceptionObj) {
	h := ip.heap
	current := v
	expanded := false

	for {
		cl := ip.macroCallee(current, env)
		if cl == nil {
			return current, expanded, nil
		}
		expanded = true

		lobj := current.List()
		h.PushRoot(lobj)
		ret, exc := ip.closureInvoke(cl, lobj.Items()[1:])
		h.PopRoot()

		if exc != nil {
			return runtime.None(), false, exc
		}
		current = ret
	}
}
