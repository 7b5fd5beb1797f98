package interp

import "github.com/cwbudde/go-lisp/internal/runtime"

// quasiquote rewrites a template form into ordinary list construction:
//
//	non-sequential q            -> (quote q)
//	(unquote x)                 -> x
//	((splice-unquote x) . rest) -> (concat x <quasiquote rest>)
//	(h . t)                     -> (cons <quasiquote h> <quasiquote t>)
//
// The rewritten form then re-enters the dispatch loop in tail position.
// Every intermediate symbol and list is rooted across the allocations that
// follow it; the argument itself is kept live by the caller.
func quasiquote(h *runtime.Heap, arg runtime.Value) runtime.Value {
	if !arg.IsPair() {
		sym := runtime.ObjValue(h.NewSymbol("quote"))
		h.PushRootValue(sym)
		ret := runtime.ObjValue(h.NewList(sym, arg))
		h.PopRootValue(sym)
		return ret
	}

	items := arg.SeqItems()
	head := items[0]

	if head.SymbolIs("unquote") {
		if len(items) < 2 {
			return runtime.Nil()
		}
		return items[1]
	}

	if head.IsPair() {
		sub := head.SeqItems()
		if sub[0].SymbolIs("splice-unquote") && len(sub) > 1 {
			sym := runtime.ObjValue(h.NewSymbol("concat"))
			h.PushRootValue(sym)

			rest := runtime.ObjValue(h.NewListFrom(items[1:]))
			h.PushRootValue(rest)
			qrest := quasiquote(h, rest)
			h.PopRootValue(rest)

			h.PushRootValue(qrest)
			ret := runtime.ObjValue(h.NewList(sym, sub[1], qrest))
			h.PopRootValue(qrest)
			h.PopRootValue(sym)
			return ret
		}
	}

	sym := runtime.ObjValue(h.NewSymbol("cons"))
	h.PushRootValue(sym)

	qhead := quasiquote(h, head)
	h.PushRootValue(qhead)

	rest := runtime.ObjValue(h.NewListFrom(items[1:]))
	h.PushRootValue(rest)
	qrest := quasiquote(h, rest)
	h.PopRootValue(rest)

	h.PushRootValue(qrest)
	ret := runtime.ObjValue(h.NewList(sym, qhead, qrest))
	h.PopRootValue(qrest)
	h.PopRootValue(qhead)
	h.PopRootValue(sym)
	return ret
}
