// Package cmd implements vexls's command-line surface: the language-server
// entry point plus a handful of lexer/parser debug subcommands, in the same
// cobra shape as the teacher's own CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "vexls",
	Short: "Language server for Vex",
	Long: `vexls is a language server for Vex, a Pascal-family scripting language.

It speaks the Language Server Protocol over stdio and answers completion,
hover, go-to-definition, references, rename, and the rest of the editor
operations a Vex project needs, plus a few lexer/parser debug subcommands
useful while working on the server itself.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
