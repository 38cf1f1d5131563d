package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vexlang/vexls/internal/logging"
	"github.com/vexlang/vexls/internal/session"
	"github.com/vexlang/vexls/internal/transport"
)

var (
	serveLogFile   string
	serveStdlibDir string
	serveUnitPaths []string
	serveParentPID int
)

var serveCmd = &cobra.Command{
	Use:   "serve [workspace-root]",
	Short: "Run the Vex language server over stdio",
	Long: `Run vexls as a Language Server Protocol server, speaking JSON-RPC
over stdin/stdout. The workspace root defaults to the current directory;
vexls walks upward from there looking for a vex.mod file or a src/
directory (see spec.md §6's project-discovery rule).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveLogFile, "log-file", "", "path to the server's log file (defaults to $TMPDIR/vexls.log)")
	serveCmd.Flags().StringVar(&serveStdlibDir, "stdlib", "", "path to the bundled standard-library unit directory")
	serveCmd.Flags().StringSliceVar(&serveUnitPaths, "unit-path", nil, "additional unit search directories, checked after --stdlib")
	serveCmd.Flags().IntVar(&serveParentPID, "parent-pid", 0, "exit once this process ID can no longer be signaled")
}

func runServe(cmd *cobra.Command, args []string) error {
	workspaceRoot := "."
	if len(args) == 1 {
		workspaceRoot = args[0]
	}
	absRoot, err := filepath.Abs(workspaceRoot)
	if err != nil {
		return fmt.Errorf("resolving workspace root: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, cleanup, err := logging.New(serveLogFile, verbose)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer cleanup()

	root, mainFile, err := transport.DiscoverProject(absRoot)
	if err != nil {
		return fmt.Errorf("discovering project: %w", err)
	}
	logger.Sugar().Infof("project root %s, main file %s", root, mainFile)

	sess := session.New(logger, root, mainFile, serveStdlibDir, serveUnitPaths)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return transport.Serve(ctx, logger, sess, stdioReadWriteCloser{}, serveParentPID)
}

// stdioReadWriteCloser wraps os.Stdin/os.Stdout as a single
// io.ReadWriteCloser, the same shape go.lsp.dev/jsonrpc2.NewStream expects
// for a stdio-mode server. Closing it closes stdin only — stdout is left
// alone since the process is about to exit anyway.
type stdioReadWriteCloser struct{}

func (stdioReadWriteCloser) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioReadWriteCloser) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdioReadWriteCloser) Close() error                { return os.Stdin.Close() }
