package main

import (
	"fmt"
	"os"

	"github.com/dimbata23/minischeme/pkg/lexer"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: lexer FILE")
		os.Exit(2)
	}

	str, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Lexing...")
	for _, token := range lexer.Tokens(string(str)) {
		fmt.Printf("%4d  %v\n", token.Pos, token)
		if token.Typ == lexer.TokenError {
			os.Exit(1)
		}
	}
	fmt.Println("Done.")
}
