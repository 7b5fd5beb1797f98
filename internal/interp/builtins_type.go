package interp

import "github.com/cwbudde/go-lisp/internal/runtime"

func (ip *Interp) nilCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("nil?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].IsNil()), nil
}

func (ip *Interp) trueCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("true?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].IsBool() && args[0].AsBool()), nil
}

func (ip *Interp) falseCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("false?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].IsBool() && !args[0].AsBool()), nil
}

func (ip *Interp) symbolCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("symbol?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].Symbol() != nil), nil
}

func (ip *Interp) symbolFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("symbol", args); exc != nil {
		return runtime.None(), exc
	}
	s := args[0].Str()
	if s == nil {
		return ip.throwf("RuntimeError: symbol arg is not a string")
	}
	return runtime.ObjValue(ip.heap.NewSymbolFrom(s)), nil
}

func (ip *Interp) keywordFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("keyword", args); exc != nil {
		return runtime.None(), exc
	}
	s := args[0].Str()
	if s == nil {
		return ip.throwf("RuntimeError: keyword arg is not a string")
	}
	return runtime.ObjValue(ip.heap.NewKeywordFrom(s)), nil
}

func (ip *Interp) keywordCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("keyword?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].Keyword() != nil), nil
}

func (ip *Interp) stringCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("string?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].Str() != nil), nil
}

func (ip *Interp) numberCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("number?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].IsNumber()), nil
}

func (ip *Interp) fnCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("fn?", args); exc != nil {
		return runtime.None(), exc
	}
	return runtime.Bool(args[0].IsCallable()), nil
}

func (ip *Interp) macroCheckFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.oneArg("macro?", args); exc != nil {
		return runtime.None(), exc
	}
	cl := args[0].Closure()
	return runtime.Bool(cl != nil && cl.IsMacro()), nil
}
