package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/basalt-sql/internal/sql/lexer"
	"github.com/example/basalt-sql/internal/sql/parser"
)

func main() {
	query := flag.String("q", "", "parse a single SQL statement and exit")
	flag.Usage = usage
	flag.Parse()

	if *query != "" {
		stmt, err := parser.Parse(lexer.Tokenize(*query))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(parser.Dump(stmt))
		return
	}
	runShell()
}

func usage() {
	fmt.Println("Basalt SQL frontend")
	fmt.Println("Usage:")
	fmt.Println("  basaltsql            start the interactive shell")
	fmt.Println("  basaltsql -q <SQL>   parse one statement and print its AST")
}

func runShell() {
	fmt.Println("Basalt SQL shell")
	fmt.Println("Enter a SQL statement, or 'exit' to leave.")

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("sql> ")
		if !in.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			return
		}

		// A failed line is printed and discarded; the shell always
		// prompts again.
		stmt, err := parser.Parse(lexer.Tokenize(line))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(parser.Dump(stmt))
	}
}
