package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/symseek/pkg/style"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorLine(err.Error()))
		os.Exit(1)
	}
}
