package interp

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/go-lisp/internal/runtime"
)

// renderArgs converts every argument to a string and joins them. Each child
// string stays rooted until the join is complete, since later conversions
// may collect.
func (ip *Interp) renderArgs(args []runtime.Value, readably bool, sep string) string {
	h := ip.heap
	parts := make([]*runtime.StringObj, len(args))
	for i, a := range args {
		parts[i] = runtime.ToString(h, a, readably)
		h.PushRoot(parts[i])
	}

	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.Write(p.Bytes())
	}

	for range parts {
		h.PopRoot()
	}
	return sb.String()
}

func (ip *Interp) prStrFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return runtime.ObjValue(ip.heap.InternString(ip.renderArgs(args, true, " "))), nil
}

func (ip *Interp) strFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	return runtime.ObjValue(ip.heap.InternString(ip.renderArgs(args, false, ""))), nil
}

func (ip *Interp) prnFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	fmt.Fprintln(ip.out, ip.renderArgs(args, true, " "))
	return runtime.Nil(), nil
}

func (ip *Interp) printlnFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	fmt.Fprintln(ip.out, ip.renderArgs(args, false, " "))
	return runtime.Nil(), nil
}

func (ip *Interp) readlineFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) != 1 || args[0].Str() == nil {
		return ip.throwf("RuntimeError: readline arg is not a string")
	}

	fmt.Fprint(ip.out, args[0].Str().String())
	line, err := ip.readln.ReadString('\n')
	if err != nil && line == "" {
		return runtime.Nil(), nil
	}
	line = strings.TrimRight(line, "\r\n")
	return runtime.ObjValue(ip.heap.InternString(line)), nil
}

func (ip *Interp) slurpFn(args []runtime.Value) (runtime.Value, *runtime.ExceptionObj) {
	if len(args) != 1 || args[0].Str() == nil {
		return ip.throwf("RuntimeError: slurp arg is not a string")
	}

	content, err := os.ReadFile(args[0].Str().String())
	if err != nil {
		return runtime.Nil(), nil
	}
	return runtime.ObjValue(ip.heap.Intern(content)), nil
}
