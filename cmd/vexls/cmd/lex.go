package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vexlang/vexls/internal/lexer"
)

var (
	lexEval       string
	lexShowPos    bool
	lexShowType   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Vex source file or expression",
	Long: `Tokenize (lex) a Vex module and print the resulting tokens.

Examples:
  # Tokenize a source file
  vexls lex main.vx

  # Tokenize inline code
  vexls lex -e "var x: Integer := 42;"

  # Show token types and positions
  vexls lex --show-type --show-pos main.vx

  # Show only illegal tokens
  vexls lex --only-errors main.vx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input, filename string
	switch {
	case lexEval != "":
		input, filename = lexEval, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n---\n", len(input))
	}

	l := lexer.New(input, filename)
	tokenCount, errorCount := 0, 0
	for {
		tok := l.NextToken()
		if lexOnlyErrors && tok.Type != lexer.ILLEGAL {
			if tok.Type == lexer.EOF {
				break
			}
			continue
		}
		tokenCount++
		if tok.Type == lexer.ILLEGAL {
			errorCount++
		}
		printToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	if verbose {
		fmt.Printf("---\nTotal tokens: %d\n", tokenCount)
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}
	if lexOnlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok lexer.Token) {
	var output string
	if lexShowType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}
	switch {
	case tok.Type == lexer.EOF:
		output += " EOF"
	case tok.Type == lexer.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		output += fmt.Sprintf(" %s", tok.Type)
	default:
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(output)
}
