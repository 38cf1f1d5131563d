// Package logging constructs the single structured logger threaded through
// the server process. Grounded on bufbuild-buf's buflsp.BufLsp.logger field:
// one *zap.Logger built once in cmd/vexls and passed down, rather than
// package-level globals or the teacher's bare fmt.Fprintf(os.Stderr, ...)
// CLI-error style — stdout/stdin here carry the JSON-RPC stream, so nothing
// may write to them incidentally.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a file-backed logger at path. An empty path defaults to
// vexls.log in the OS temp directory. The returned func flushes and closes
// the underlying file; callers defer it.
func New(path string, verbose bool) (*zap.Logger, func(), error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), "vexls.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, err
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), level)
	logger := zap.New(core)

	cleanup := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, cleanup, nil
}
