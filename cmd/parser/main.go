package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dimbata23/minischeme/pkg/parser"
	"github.com/dimbata23/minischeme/pkg/runtime"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: parser FILE")
		os.Exit(2)
	}

	str, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := parser.New(string(str))
	fmt.Println("Parsing...")
	for {
		expr, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println(runtime.Serialize(expr))
	}
	fmt.Println("Done.")
}
