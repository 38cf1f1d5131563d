package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/parser"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Vex source code and display its structure",
	Long: `Parse Vex source code and display the module it produces.

If no file is provided, reads from stdin. Use -e to parse source text
given on the command line; it is parsed as a whole module, the same as a
file's contents. Use --dump-ast for the
full recursive structure instead of the one-line declaration summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "treat the argument as inline source, not a file path")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input, filename string
	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input, filename = args[0], "<eval>"
	case len(args) > 0:
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		filename = "<stdin>"
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	mod, diags := parser.Parse(input, filename)

	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Format(input))
	}

	if parseDumpAST {
		spew.Dump(mod)
	} else {
		printModuleSummary(mod)
	}

	if countAtLeast(diags, diag.Error) > 0 {
		return fmt.Errorf("parsing failed with %d error(s)", countAtLeast(diags, diag.Error))
	}
	return nil
}

func printModuleSummary(mod *ast.Module) {
	if mod == nil {
		fmt.Println("<no module>")
		return
	}
	fmt.Printf("module %s (%s)\n", mod.Name.Name, mod.Kind)
	for _, imp := range mod.Imports {
		fmt.Printf("  import %s\n", imp.Name)
	}
	for _, c := range mod.Consts {
		fmt.Printf("  const %s\n", c.Name.Name)
	}
	for _, t := range mod.Types {
		fmt.Printf("  type %s\n", t.Name.Name)
	}
	for _, v := range mod.Vars {
		fmt.Printf("  var %s\n", v.Name.Name)
	}
	for _, r := range mod.Routines {
		fmt.Printf("  routine %s\n", r.Name.Name)
	}
	for _, t := range mod.Tests {
		fmt.Printf("  test %s\n", t.Name.Name)
	}
}

func countAtLeast(diags []diag.Diagnostic, min diag.Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity >= min {
			n++
		}
	}
	return n
}
