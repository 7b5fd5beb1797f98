package interp

import (
	"strings"
	"testing"
)

func TestDefmacroUnless(t *testing.T) {
	ip, _ := newTestInterp()
	got := repAll(t, ip,
		"(defmacro! unless (fn* [p a b] `(if ~p ~b ~a)))",
		"(unless false 1 2)",
	)
	if got != "1" {
		t.Errorf("got %q, want %q", got, "1")
	}
	if got := ip.Rep("(unless true 1 2)"); got != "2" {
		t.Errorf("got %q, want %q", got, "2")
	}
}

func TestMacroexpandReturnsFormUnevaluated(t *testing.T) {
	ip, _ := newTestInterp()
	got := repAll(t, ip,
		"(defmacro! unless (fn* [p a b] `(if ~p ~b ~a)))",
		"(macroexpand (unless false 1 2))",
	)
	if got != "(if false 2 1)" {
		t.Errorf("got %q", got)
	}
}

func TestMacroPredicates(t *testing.T) {
	ip, _ := newTestInterp()
	repAll(t, ip, "(defmacro! m (fn* [x] x))", "(def! f (fn* [x] x))")

	if got := ip.Rep("(macro? m)"); got != "true" {
		t.Errorf("got %q", got)
	}
	if got := ip.Rep("(macro? f)"); got != "false" {
		t.Errorf("got %q", got)
	}
	if got := ip.Rep("(fn? m)"); got != "true" {
		t.Errorf("macros are still functions, got %q", got)
	}
}

func TestDefmacroRequiresClosure(t *testing.T) {
	ip, buf := newTestInterp()
	got := ip.Rep("(defmacro! bad 42)")
	if got != "" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(buf.String(), "defmacro! body is not a closure") {
		t.Errorf("output %q", buf.String())
	}
}

func TestDefmacroDoesNotMutateOriginalClosure(t *testing.T) {
	ip, _ := newTestInterp()
	repAll(t, ip,
		"(def! f (fn* [x] x))",
		"(defmacro! m f)",
	)
	if got := ip.Rep("(macro? f)"); got != "false" {
		t.Errorf("defmacro! must clone, got %q", got)
	}
}

func TestCondPrelude(t *testing.T) {
	ip, _ := newTestInterp()
	if got := ip.Rep("(cond false 1 true 2)"); got != "2" {
		t.Errorf("got %q", got)
	}
	if got := ip.Rep("(cond false 1 false 2)"); got != "nil" {
		t.Errorf("exhausted cond is nil, got %q", got)
	}

	got := ip.Rep(`(try* (cond false) (catch* e e))`)
	if !strings.Contains(got, "odd number of forms to cond") {
		t.Errorf("got %q", got)
	}
}

func TestQuasiquoteRoundTrip(t *testing.T) {
	ip, _ := newTestInterp()
	got := ip.Rep("`(1 ~(+ 1 1) ~@(list 3 4) 5)")
	if got != "(1 2 3 4 5)" {
		t.Errorf("got %q", got)
	}
	if got := ip.Rep("(= `(1 ~(+ 1 1) ~@(list 3 4) 5) '(1 2 3 4 5))"); got != "true" {
		t.Errorf("got %q", got)
	}
}

func TestQuasiquoteCases(t *testing.T) {
	tests := []struct {
		form string
		want string
	}{
		{"`x", "x"},
		{"`7", "7"},
		{"`()", "()"},
		{"`(a b)", "(a b)"},
		{"`(~(+ 1 2))", "(3)"},
		{"`(~@(list 1 2) ~@(list 3))", "(1 2 3)"},
		{"`(a ~@(list) b)", "(a b)"},
	}

	for _, tt := range tests {
		ip, _ := newTestInterp()
		if got := ip.Rep(tt.form); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.form, got, tt.want)
		}
	}
}
