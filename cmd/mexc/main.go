package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"mexc/pkg/ast"
	"mexc/pkg/diag"
	"mexc/pkg/driver"
)

func main() {
	app := &cli.App{
		Name:                   "mexc",
		Usage:                  "A front-end for a line-oriented mathematical expression language",
		ArgsUsage:              "[file]",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "Compile a string instead of a file",
			},
			&cli.BoolFlag{
				Name:    "fold",
				Aliases: []string{"f"},
				Usage:   "Fold constant subexpressions after parsing",
			},
			&cli.BoolFlag{
				Name:    "dump-tokens",
				Aliases: []string{"t"},
				Usage:   "Print the token stream",
			},
			&cli.BoolFlag{
				Name:    "dump-ast",
				Aliases: []string{"a"},
				Usage:   "Print the parsed statements",
			},
			&cli.BoolFlag{
				Name:    "dump-symbols",
				Aliases: []string{"s"},
				Usage:   "Print the symbol table",
			},
		},
		Action: compile,
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func compile(c *cli.Context) error {
	source, name, err := readSource(c)
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	result := driver.Compile(source, driver.Options{Fold: c.Bool("fold")})

	if c.Bool("dump-tokens") {
		for _, tok := range result.Tokens {
			fmt.Printf("%s  %s\n", tok.Pos, tok)
		}
	}
	if c.Bool("dump-ast") && len(result.AST) > 0 {
		fmt.Println(ast.ProgramString(result.AST))
	}

	if len(result.Errors) > 0 {
		diag.NewPrinter(os.Stderr, name, source).Print(result.Errors)
		return cli.Exit("", 1)
	}

	// With a clean compile the useful output is each statement with its
	// inferred type.
	for _, stmt := range result.Annotated {
		fmt.Printf("%s :: %s\n", ast.ExprString(stmt), stmt.Typ)
	}
	if c.Bool("dump-symbols") {
		printSymbols(result)
	}
	return nil
}

func readSource(c *cli.Context) (source, name string, err error) {
	if expr := c.String("expr"); expr != "" {
		return expr, "<expr>", nil
	}
	if path := c.Args().First(); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return string(content), path, nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(content), "<stdin>", nil
}

func printSymbols(result driver.Result) {
	names := make([]string, 0, len(result.Symbols))
	for name := range result.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry := result.Symbols[name]
		fmt.Printf("%s: %s (defined at %s)\n", entry.Name, entry.Type, entry.DefinedAt)
	}
}
