package main

import (
	"os"

	"github.com/cwbudde/go-lisp/cmd/golisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
