package interp

import (
	"github.com/cwbudde/go-lisp/internal/runtime"
)

// Eval evaluates a form in env. On failure the returned value is None and
// the exception is non-nil; every callsite checks the exception before using
// the value.
//
// The evaluator is a single dispatch loop that rebinds (value, env) instead
// of recursing for the tail positions of do, if, let*, try*, quasiquote, and
// closure application, so unbounded tail recursion runs in constant host
// stack. Each iteration roots the current environment and form before
// anything can allocate; the deferred epilogue unwinds exactly the roots this
// activation pushed, restores the collector's current-environment pointer,
// and pops the closure frames recorded for non-tail calls.
func (ip *Interp) Eval(value runtime.Value, env *runtime.EnvObj) (runtime.Value, *runtime.ExceptionObj) {
	h := ip.heap

	ip.callDepth++
	oldEnv := h.CurrentEnv()
	blockRoots := 0
	framesPushed := 0

	defer func() {
		for i := 0; i < blockRoots; i++ {
			h.PopRoot()
		}
		h.SetCurrentEnv(oldEnv)
		ip.callDepth--
		ip.closures = ip.closures[:len(ip.closures)-framesPushed]
	}()

	for {
		if h.CurrentEnv() != env {
			h.SetCurrentEnv(env)
			h.PushRoot(env)
			blockRoots++
		}
		if value.IsObject() {
			h.PushRoot(value.AsObject())
			blockRoots++
		}

		lobj := value.List()
		if lobj == nil {
			if vec := value.Vector(); vec != nil {
				return ip.evalVector(vec, env)
			}
			if m := value.Map(); m != nil {
				return ip.evalMap(m, env)
			}
			return ip.evalLeaf(value, env)
		}

		if lobj.Len() == 0 {
			return value, nil
		}

		expanded, wasMacro, exc := ip.macroExpand(value, env)
		if exc != nil {
			return runtime.None(), exc
		}
		if wasMacro {
			value = expanded
			continue
		}

		if sym := lobj.At(0).Symbol(); sym != nil {
			handled, next, nextEnv, ret, exc := ip.evalSpecialForm(sym.Name(), lobj, env)
			if handled {
				if exc != nil {
					return runtime.None(), exc
				}
				if next.IsNone() {
					return ret, nil
				}
				value = next
				env = nextEnv
				continue
			}
		}

		// Function application: evaluate every element, then apply the head
		// to the rest.
		evaluated, exc := ip.evalListItems(lobj, env)
		if exc != nil {
			return runtime.None(), exc
		}

		flist := evaluated.List()
		h.PushRootValue(evaluated)
		callItems := flist.Items()
		callee := callItems[0]

		if cl := callee.Closure(); cl != nil {
			newEnv := h.NewEnv(cl.Env())
			h.PushRoot(newEnv)
			ip.bindParams(newEnv, cl.Params(), callItems[1:])
			env = newEnv
			value = cl.Body()
			h.PopRoot()
			h.PopRootValue(evaluated)

			// Self tail-recursion of the closure on top of the frame stack
			// at this depth: reclaim the roots accumulated since its frame
			// was recorded instead of growing a new one.
			if n := len(ip.closures); n > 0 {
				top := ip.closures[n-1]
				if top.callDepth == ip.callDepth && top.closure == cl {
					for h.RootDepth() > top.rootDepth {
						h.PopRoot()
						blockRoots--
					}
					continue
				}
			}
			framesPushed++
			ip.closures = append(ip.closures, closureFrame{
				closure:   cl,
				callDepth: ip.callDepth,
				rootDepth: h.RootDepth(),
			})
			continue
		}

		ret, exc := ip.invoke(callee, callItems[1:])
		h.PopRootValue(evaluated)
		return ret, exc
	}
}

// evalSpecialForm dispatches the special forms. handled is false when name
// is not a special form. For tail positions it returns the next (value, env)
// pair to continue the dispatch loop with; otherwise next is None and ret
// carries the result.
func (ip *Interp) evalSpecialForm(name string, lobj *runtime.ListObj, env *runtime.EnvObj) (handled bool, next runtime.Value, nextEnv *runtime.EnvObj, ret runtime.Value, exc *runtime.ExceptionObj) {
	h := ip.heap

	switch name {
	case "def!":
		v, e := ip.Eval(lobj.At(2), env)
		if e == nil {
			env.Define(lobj.At(1), v)
		}
		return true, runtime.None(), nil, v, e

	case "let*":
		newEnv := h.NewEnv(env)
		h.PushRoot(newEnv)
		binds := lobj.At(1).SeqItems()
		for i := 0; i+1 < len(binds); i += 2 {
			v, e := ip.Eval(binds[i+1], newEnv)
			if e != nil {
				h.PopRoot()
				return true, runtime.None(), nil, runtime.None(), e
			}
			newEnv.Define(binds[i], v)
		}
		h.PopRoot()
		return true, lobj.At(2), newEnv, runtime.Value{}, nil

	case "do":
		items := lobj.Items()
		if len(items) == 1 {
			return true, runtime.None(), nil, runtime.Nil(), nil
		}
		for _, form := range items[1 : len(items)-1] {
			if _, e := ip.Eval(form, env); e != nil {
				return true, runtime.None(), nil, runtime.None(), e
			}
		}
		return true, items[len(items)-1], env, runtime.Value{}, nil

	case "if":
		cond, e := ip.Eval(lobj.At(1), env)
		if e != nil {
			return true, runtime.None(), nil, runtime.None(), e
		}
		if !cond.Truthy() {
			if lobj.Len() == 4 {
				return true, lobj.At(3), env, runtime.Value{}, nil
			}
			return true, runtime.Nil(), env, runtime.Value{}, nil
		}
		return true, lobj.At(2), env, runtime.Value{}, nil

	case "fn*":
		cl := h.NewClosure(env, lobj.At(1), lobj.At(2))
		return true, runtime.None(), nil, runtime.ObjValue(cl), nil

	case "quote":
		return true, runtime.None(), nil, lobj.At(1), nil

	case "quasiquote":
		return true, quasiquote(h, lobj.At(1)), env, runtime.Value{}, nil

	case "defmacro!":
		fn, e := ip.Eval(lobj.At(2), env)
		if e != nil {
			return true, runtime.None(), nil, runtime.None(), e
		}
		cl := fn.Closure()
		if cl == nil {
			_, e = ip.throwf("RuntimeError: defmacro! body is not a closure")
			return true, runtime.None(), nil, runtime.None(), e
		}
		h.PushRootValue(fn)
		clone := h.CloneClosure(cl)
		h.PopRootValue(fn)
		clone.MarkMacro()
		macro := runtime.ObjValue(clone)
		env.Define(lobj.At(1), macro)
		return true, runtime.None(), nil, macro, nil

	case "macroexpand":
		expanded, _, e := ip.macroExpand(lobj.At(1), env)
		return true, runtime.None(), nil, expanded, e

	case "try*":
		res, e := ip.Eval(lobj.At(1), env)
		if e == nil || lobj.Len() < 3 {
			return true, runtime.None(), nil, res, e
		}
		catch := lobj.At(2)
		if !catch.IsPair() {
			return true, runtime.None(), nil, res, e
		}
		clause := catch.SeqItems()
		if !clause[0].SymbolIs("catch*") || len(clause) < 3 {
			return true, runtime.None(), nil, res, e
		}

		h.PushRoot(e)
		newEnv := h.NewEnv(env)
		h.PopRoot()
		h.PushRoot(newEnv)
		newEnv.Define(clause[1], runtime.ObjValue(e.Payload()))
		h.PopRoot()

		// exception handled: clear it and tail-evaluate the handler
		return true, clause[2], newEnv, runtime.Value{}, nil
	}

	return false, runtime.Value{}, nil, runtime.Value{}, nil
}

// evalLeaf evaluates non-composite forms: symbols resolve through the
// environment chain, everything else evaluates to itself.
func (ip *Interp) evalLeaf(value runtime.Value, env *runtime.EnvObj) (runtime.Value, *runtime.ExceptionObj) {
	sym := value.Symbol()
	if sym == nil {
		return value, nil
	}
	if v, ok := env.Get(value); ok {
		return v, nil
	}
	return ip.throwf("RuntimeError: symbol (%s) not found in env", sym.Name())
}

// evalListItems evaluates every element of a list into a fresh list.
func (ip *Interp) evalListItems(lobj *runtime.ListObj, env *runtime.EnvObj) (runtime.Value, *runtime.ExceptionObj) {
	h := ip.heap
	ret := h.NewListNil(lobj.Len())
	h.PushRoot(ret)

	for i, item := range lobj.Items() {
		v, exc := ip.Eval(item, env)
		if exc != nil {
			h.PopRoot()
			return runtime.None(), exc
		}
		ret.SetAt(i, v)
	}

	h.PopRoot()
	return runtime.ObjValue(ret), nil
}

// evalVector evaluates each element in order into a fresh vector of the same
// length.
func (ip *Interp) evalVector(vec *runtime.VectorObj, env *runtime.EnvObj) (runtime.Value, *runtime.ExceptionObj) {
	h := ip.heap
	ret := h.NewVectorNil(vec.Len())
	h.PushRoot(ret)

	for i, item := range vec.Items() {
		v, exc := ip.Eval(item, env)
		if exc != nil {
			h.PopRoot()
			return runtime.None(), exc
		}
		ret.SetAt(i, v)
	}

	h.PopRoot()
	return runtime.ObjValue(ret), nil
}

// evalMap evaluates each value of a map into a fresh map; keys pass through
// unevaluated.
func (ip *Interp) evalMap(m *runtime.MapObj, env *runtime.EnvObj) (runtime.Value, *runtime.ExceptionObj) {
	h := ip.heap
	ret := h.NewMap()
	h.PushRoot(ret)

	for _, e := range m.Entries() {
		v, exc := ip.Eval(e.Val, env)
		if exc != nil {
			h.PopRoot()
			return runtime.None(), exc
		}
		ret.Set(e.Key, v)
	}

	h.PopRoot()
	return runtime.ObjValue(ret), nil
}

// bindParams binds a closure's parameter pattern over args in env. A `&`
// marker binds the symbol after it to a fresh list of the remaining
// arguments; missing arguments bind to nil.
func (ip *Interp) bindParams(env *runtime.EnvObj, params runtime.Value, args []runtime.Value) {
	h := ip.heap
	items := params.SeqItems()

	for i, param := range items {
		if param.SymbolIs("&") {
			if i+1 >= len(items) {
				return
			}
			restSym := items[i+1]
			if i < len(args) {
				rest := h.NewListFrom(args[i:])
				env.Define(restSym, runtime.ObjValue(rest))
			} else {
				env.Define(restSym, runtime.Nil())
			}
			return
		}

		if i < len(args) {
			env.Define(param, args[i])
		} else {
			env.Define(param, runtime.Nil())
		}
	}
}

// invoke applies a callable to already-evaluated arguments. The collector's
// current-environment pointer is saved around the call: a native may
// re-enter the evaluator and leave it pointing elsewhere.
func (ip *Interp) invoke(callee runtime.Value, args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	h := ip.heap
	saved := h.CurrentEnv()
	if saved != nil {
		h.PushRoot(saved)
	}

	var ret runtime.Value
	var exc *runtime.ExceptionObj
	switch {
	case callee.Func() != nil:
		ret, exc = callee.Func().Fn()(args)
	case callee.Closure() != nil:
		ret, exc = ip.closureInvoke(callee.Closure(), args)
	default:
		ret, exc = ip.throwf("RuntimeError: value is not callable!")
	}

	h.SetCurrentEnv(saved)
	if saved != nil {
		h.PopRoot()
	}
	return ret, exc
}

// closureInvoke applies a closure in a non-tail position: a child
// environment of the captured one is built, parameters are bound, and the
// body is evaluated recursively.
func (ip *Interp) closureInvoke(cl *runtime.ClosureObj, args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	h := ip.heap
	newEnv := h.NewEnv(cl.Env())
	h.PushRoot(newEnv)
	ip.bindParams(newEnv, cl.Params(), args)
	ret, exc := ip.Eval(cl.Body(), newEnv)
	h.PopRoot()
	return ret, exc
}
