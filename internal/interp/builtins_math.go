package interp

import "github.com/cwbudde/go-lisp/internal/runtime"

// Arithmetic folds left over all arguments; comparisons chain pairwise, so
// (< 1 2 3) asserts a strictly increasing sequence. Division follows
// IEEE-754: dividing a nonzero number by zero yields an infinity and 0/0
// yields NaN, not a trap.

func (ip *Interp) numericArgs(name string, args []runtime.Value) *runtime.ExceptionObj {
	if len(args) == 0 {
		return ip.heap.NewException("RuntimeError: %s needs at least one argument", name)
	}
	for _, a := range args {
		if !a.IsNumber() {
			return ip.heap.NewException("RuntimeError: %s arg is not a number", name)
		}
	}
	return nil
}

func (ip *Interp) foldNumeric(name string, args []runtime.Value, op func(a, b float64) float64) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.numericArgs(name, args); exc != nil {
		return runtime.None(), exc
	}
	acc := args[0].AsNumber()
	for _, a := range args[1:] {
		acc = op(acc, a.AsNumber())
	}
	return runtime.Number(acc), nil
}

func (ip *Interp) chainCompare(name string, args []runtime.Value, ok func(a, b float64) bool) (runtime.Value, *runtime.ExceptionObj) {
	if exc := ip.numericArgs(name, args); exc != nil {
		return runtime.None(), exc
	}
	prev := args[0].AsNumber()
	for _, a := range args[1:] {
		cur := a.AsNumber()
		if !ok(prev, cur) {
			return runtime.Bool(false), nil
		}
		prev = cur
	}
	return runtime.Bool(true), nil
}

func (ip *Interp) addFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return ip.foldNumeric("+", args, func(a, b float64) float64 { return a + b })
}

func (ip *Interp) subFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return ip.foldNumeric("-", args, func(a, b float64) float64 { return a - b })
}

func (ip *Interp) mulFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return ip.foldNumeric("*", args, func(a, b float64) float64 { return a * b })
}

func (ip *Interp) divFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return ip.foldNumeric("/", args, func(a, b float64) float64 { return a / b })
}

func (ip *Interp) lessFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return ip.chainCompare("<", args, func(a, b float64) bool { return a < b })
}

func (ip *Interp) lessEqFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return ip.chainCompare("<=", args, func(a, b float64) bool { return a <= b })
}

func (ip *Interp) greaterFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return ip.chainCompare(">", args, func(a, b float64) bool { return a > b })
}

func (ip *Interp) greaterEqFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return ip.chainCompare(">=", args, func(a, b float64) bool { return a >= b })
}

func (ip *Interp) equalFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	for i := 1; i < len(args); i++ {
		if !runtime.ValueEqual(args[i-1], args[i]) {
			return runtime.Bool(false), nil
		}
	}
	return runtime.Bool(true), nil
}
