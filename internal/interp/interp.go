// Package interp implements the go-lisp evaluator: symbol resolution in
// lexically scoped environments, special forms, macro expansion,
// quasiquotation, closure application with tail-call elimination, and
// exception propagation. One Interp owns one heap; several interpreters may
// coexist in a process.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-lisp/internal/reader"
	"github.com/cwbudde/go-lisp/internal/runtime"
)

// Interp drives evaluation against a private heap and global environment.
type Interp struct {
	heap   *runtime.Heap
	global *runtime.EnvObj
	out    io.Writer
	readln *bufio.Reader

	// callDepth and the closure frame stack implement tail-recursion root
	// reclamation: a self tail-call of the closure on top of the stack at
	// the same depth truncates the runtime-root stack to the recorded mark
	// instead of pushing a new frame.
	callDepth int
	closures  []closureFrame
}

type closureFrame struct {
	closure   *runtime.ClosureObj
	callDepth int
	rootDepth int
}

// Option configures an Interp during New.
type Option func(*Interp)

// WithReadline redirects the readline builtin to read from r instead of
// standard input.
func WithReadline(r io.Reader) Option {
	return func(ip *Interp) { ip.readln = bufio.NewReader(r) }
}

// New creates an interpreter with a fresh heap and global environment, binds
// the core library, and bootstraps the prelude definitions. Output from
// printing builtins goes to out.
func New(out io.Writer, opts ...Option) *Interp {
	ip := &Interp{
		heap:   runtime.NewHeap(),
		out:    out,
		readln: bufio.NewReader(os.Stdin),
	}
	ip.global = ip.heap.NewEnv(nil)
	ip.heap.SetCurrentEnv(ip.global)

	for _, opt := range opts {
		opt(ip)
	}

	ip.registerCoreLib()
	ip.bootstrap()
	return ip
}

// Heap returns the interpreter's heap.
func (ip *Interp) Heap() *runtime.Heap { return ip.heap }

// GlobalEnv returns the global environment.
func (ip *Interp) GlobalEnv() *runtime.EnvObj { return ip.global }

// bootstrap defines the parts of the core library written in the language
// itself.
func (ip *Interp) bootstrap() {
	ip.Rep(`(def! *host-language* "go-lisp")`)
	ip.Rep(`(def! not (fn* [a] (if a false true)))`)
	ip.Rep(`(def! load-file (fn* [f] (eval (read-string (str "(do " (slurp f) "\nnil)")))))`)
	ip.Rep(`(defmacro! cond (fn* [& xs] (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`)
}

// Rep runs one read-eval-print cycle over input and returns the printed
// result. Parse errors and uncaught exceptions are written to the
// interpreter's output, and the empty string is returned.
func (ip *Interp) Rep(input string) string {
	h := ip.heap

	form, err := reader.Read(h, input)
	if err != nil {
		h.ClearCompileRoots()
		fmt.Fprintln(ip.out, err)
		return ""
	}
	if form.IsNone() {
		h.ClearCompileRoots()
		return ""
	}

	// The parsed tree is handed to the evaluator, which roots it on entry;
	// the compile roots have done their job for this input.
	h.ClearCompileRoots()

	ret, exc := ip.Eval(form, ip.global)
	h.SetCurrentEnv(ip.global)
	if exc != nil {
		fmt.Fprintln(ip.out, exc.Info())
		return ""
	}

	h.PushRootValue(ret)
	s := runtime.ToString(h, ret, true)
	h.PopRootValue(ret)
	return s.String()
}

// LoadFile evaluates the file at path through the load-file prelude
// definition.
func (ip *Interp) LoadFile(path string) string {
	return ip.Rep(fmt.Sprintf("(load-file %q)", path))
}

// SetArgv binds *ARGV* in the global environment: a list of strings, or nil
// when no arguments were given.
func (ip *Interp) SetArgv(args []string) {
	h := ip.heap
	sym := h.NewSymbol("*ARGV*")
	h.PushRoot(sym)
	defer h.PopRoot()

	if len(args) == 0 {
		ip.global.Define(runtime.ObjValue(sym), runtime.Nil())
		return
	}

	lobj := h.NewListNil(len(args))
	h.PushRoot(lobj)
	for i, a := range args {
		lobj.SetAt(i, runtime.ObjValue(h.InternString(a)))
	}
	h.PopRoot()
	ip.global.Define(runtime.ObjValue(sym), runtime.ObjValue(lobj))
}

// register binds a native function under name in the global environment.
func (ip *Interp) register(name string, fn runtime.NativeFn) {
	h := ip.heap
	sym := h.NewSymbol(name)
	h.PushRoot(sym)
	f := h.NewFunc(name, fn)
	ip.global.Define(runtime.ObjValue(sym), runtime.ObjValue(f))
	h.PopRoot()
}

// throwf allocates an exception and returns it with the None value, the
// uniform failure shape of natives and the evaluator.
func (ip *Interp) throwf(format string, args ...any) (runtime.Value, *runtime.ExceptionObj) {
	return runtime.None(), ip.heap.NewException(format, args...)
}

func (ip *Interp) registerCoreLib() {
	ip.register("+", ip.addFn)
	ip.register("-", ip.subFn)
	ip.register("*", ip.mulFn)
	ip.register("/", ip.divFn)
	ip.register("<", ip.lessFn)
	ip.register("<=", ip.lessEqFn)
	ip.register(">", ip.greaterFn)
	ip.register(">=", ip.greaterEqFn)
	ip.register("=", ip.equalFn)

	ip.register("pr-str", ip.prStrFn)
	ip.register("str", ip.strFn)
	ip.register("prn", ip.prnFn)
	ip.register("println", ip.printlnFn)
	ip.register("readline", ip.readlineFn)
	ip.register("slurp", ip.slurpFn)

	ip.register("list", ip.listFn)
	ip.register("list?", ip.listCheckFn)
	ip.register("empty?", ip.emptyCheckFn)
	ip.register("count", ip.countFn)
	ip.register("vector", ip.vectorFn)
	ip.register("vector?", ip.vectorCheckFn)
	ip.register("sequential?", ip.sequentialCheckFn)
	ip.register("hash-map", ip.hashMapFn)
	ip.register("map?", ip.mapCheckFn)
	ip.register("assoc", ip.assocFn)
	ip.register("dissoc", ip.dissocFn)
	ip.register("get", ip.getFn)
	ip.register("contains?", ip.containsCheckFn)
	ip.register("keys", ip.keysFn)
	ip.register("vals", ip.valsFn)
	ip.register("cons", ip.consFn)
	ip.register("concat", ip.concatFn)
	ip.register("nth", ip.nthFn)
	ip.register("first", ip.firstFn)
	ip.register("rest", ip.restFn)
	ip.register("conj", ip.conjFn)
	ip.register("seq", ip.seqFn)
	ip.register("apply", ip.applyFn)
	ip.register("map", ip.mapFn)

	ip.register("nil?", ip.nilCheckFn)
	ip.register("true?", ip.trueCheckFn)
	ip.register("false?", ip.falseCheckFn)
	ip.register("symbol?", ip.symbolCheckFn)
	ip.register("symbol", ip.symbolFn)
	ip.register("keyword", ip.keywordFn)
	ip.register("keyword?", ip.keywordCheckFn)
	ip.register("string?", ip.stringCheckFn)
	ip.register("number?", ip.numberCheckFn)
	ip.register("fn?", ip.fnCheckFn)
	ip.register("macro?", ip.macroCheckFn)

	ip.register("atom", ip.atomFn)
	ip.register("atom?", ip.atomCheckFn)
	ip.register("deref", ip.derefFn)
	ip.register("reset!", ip.resetFn)
	ip.register("swap!", ip.swapFn)

	ip.register("meta", ip.metaFn)
	ip.register("with-meta", ip.withMetaFn)
	ip.register("time-ms", ip.timeMsFn)

	ip.register("eval", ip.evalFn)
	ip.register("read-string", ip.readStringFn)
	ip.register("throw", ip.throwFn)
	ip.register("gc", ip.gcFn)
}
