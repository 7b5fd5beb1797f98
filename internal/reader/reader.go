// Package reader parses go-lisp source text into runtime values. It is a
// recursive-descent parser over the lexer's token stream; every value built
// during a parse is pinned on the heap's compile-root stack so a collection
// triggered by a later allocation in the same parse cannot reclaim it. The
// caller clears the compile roots between top-level inputs.
package reader

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/go-lisp/internal/lexer"
	"github.com/cwbudde/go-lisp/internal/runtime"
)

// ParseError reports an ill-formed input with the offending token and line.
type ParseError struct {
	Msg  string
	Near string
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ParseError: %s (near '%s' at line %d)", e.Msg, e.Near, e.Line)
}

type reader struct {
	heap   *runtime.Heap
	tokens []lexer.Token
	pos    int
}

// Read parses the first form of source into a value tree. Empty input
// returns the None value. Parse and scan errors carry line information.
func Read(h *runtime.Heap, source string) (runtime.Value, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return runtime.None(), err
	}

	r := &reader{heap: h, tokens: tokens}
	return r.readForm()
}

func (r *reader) atEnd() bool { return r.pos >= len(r.tokens) }

func (r *reader) peek() lexer.Token { return r.tokens[r.pos] }

func (r *reader) next() lexer.Token {
	t := r.tokens[r.pos]
	r.pos++
	return t
}

func (r *reader) prev() lexer.Token {
	if r.pos == 0 {
		return lexer.Token{}
	}
	return r.tokens[r.pos-1]
}

func (r *reader) errorAt(t lexer.Token, msg string) error {
	return &ParseError{Msg: msg, Near: t.Literal, Line: t.Line}
}

func (r *reader) readForm() (runtime.Value, error) {
	if r.atEnd() {
		return runtime.None(), nil
	}

	t := r.peek()
	switch t.First() {
	case '(':
		return r.readSeq(')', "no match ')' found!")
	case '[':
		return r.readSeq(']', "no match ']' found!")
	case '{':
		return r.readMap()
	case '\'':
		return r.expandSugar("quote")
	case '`':
		return r.expandSugar("quasiquote")
	case '~':
		if t.Literal == "~@" {
			return r.expandSugar("splice-unquote")
		}
		return r.expandSugar("unquote")
	case '@':
		return r.expandSugar("deref")
	case '^':
		return r.readWithMeta()
	case ')':
		return runtime.None(), r.errorAt(t, "no match '(' found!")
	case ']':
		return runtime.None(), r.errorAt(t, "no match '[' found!")
	case '}':
		return runtime.None(), r.errorAt(t, "no match '{' found!")
	}
	return r.readAtom()
}

// readSeq parses the items between the opening delimiter and closing. Items
// stay individually pinned on the compile roots while later ones allocate.
func (r *reader) readSeq(closing byte, missing string) (runtime.Value, error) {
	h := r.heap
	r.next() // consume the opening delimiter

	var items []runtime.Value
	for {
		if r.atEnd() {
			return runtime.None(), r.errorAt(r.prev(), missing)
		}
		if r.peek().First() == closing {
			r.next()
			break
		}
		item, err := r.readForm()
		if err != nil {
			return runtime.None(), err
		}
		items = append(items, item)
	}

	var ret runtime.Value
	if closing == ')' {
		ret = runtime.ObjValue(h.NewListFrom(items))
	} else {
		ret = runtime.ObjValue(h.NewVectorFrom(items))
	}
	h.PushCompileRootValue(ret)
	return ret, nil
}

func (r *reader) readMap() (runtime.Value, error) {
	h := r.heap
	r.next() // consume '{'

	var kv []runtime.Value
	for {
		if r.atEnd() {
			return runtime.None(), r.errorAt(r.prev(), "no match '}' found!")
		}
		if r.peek().First() == '}' {
			r.next()
			break
		}
		item, err := r.readForm()
		if err != nil {
			return runtime.None(), err
		}
		kv = append(kv, item)
	}

	ret := runtime.ObjValue(h.NewMapFrom(kv))
	h.PushCompileRootValue(ret)
	return ret, nil
}

// expandSugar lowers a quoting token into (name <form>).
func (r *reader) expandSugar(name string) (runtime.Value, error) {
	h := r.heap
	r.next() // consume the sugar token

	sym := runtime.ObjValue(h.NewSymbol(name))
	h.PushCompileRootValue(sym)

	form, err := r.readForm()
	if err != nil {
		return runtime.None(), err
	}

	ret := runtime.ObjValue(h.NewList(sym, form))
	h.PushCompileRootValue(ret)
	return ret, nil
}

// readWithMeta lowers ^meta value into (with-meta value meta).
func (r *reader) readWithMeta() (runtime.Value, error) {
	h := r.heap
	r.next() // consume '^'

	sym := runtime.ObjValue(h.NewSymbol("with-meta"))
	h.PushCompileRootValue(sym)

	meta, err := r.readForm()
	if err != nil {
		return runtime.None(), err
	}
	form, err := r.readForm()
	if err != nil {
		return runtime.None(), err
	}

	ret := runtime.ObjValue(h.NewList(sym, form, meta))
	h.PushCompileRootValue(ret)
	return ret, nil
}

func (r *reader) readAtom() (runtime.Value, error) {
	h := r.heap
	t := r.next()
	lit := t.Literal

	switch lit {
	case "true":
		return runtime.Bool(true), nil
	case "false":
		return runtime.Bool(false), nil
	case "nil":
		return runtime.Nil(), nil
	}

	switch {
	case t.First() == ':':
		kw := h.NewKeyword(lit)
		h.PushCompileRoot(kw)
		return runtime.ObjValue(kw), nil

	case t.First() == '"':
		body := runtime.UnescapeBytes([]byte(lit[1 : len(lit)-1]))
		s := h.Intern(body)
		h.PushCompileRoot(s)
		return runtime.ObjValue(s), nil

	case isNumberToken(lit):
		n, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			break
		}
		return runtime.Number(n), nil
	}

	sym := h.NewSymbol(lit)
	h.PushCompileRoot(sym)
	return runtime.ObjValue(sym), nil
}

// isNumberToken reports whether the token should be parsed as a number: a
// leading digit, or a minus sign followed by a digit.
func isNumberToken(lit string) bool {
	if lit == "" {
		return false
	}
	if lit[0] >= '0' && lit[0] <= '9' {
		return true
	}
	return lit[0] == '-' && len(lit) > 1 && lit[1] >= '0' && lit[1] <= '9'
}
