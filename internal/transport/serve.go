package transport

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/vexlang/vexls/internal/session"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// parentPollInterval is how often Serve checks that the editor's process is
// still alive when parentPID was given (spec.md §9's resolved Open
// Question: a fixed poll rather than a platform process-exit API, since
// Go's standard library has no portable "notify me when PID exits").
const parentPollInterval = 2 * time.Second

// Serve builds a Dispatch over sess, wires it to rwc via go.lsp.dev's
// jsonrpc2/protocol stack, and blocks until the connection closes or ctx is
// canceled. If parentPID is non-zero, Serve also exits the connection the
// first time the parent process can no longer be signaled, per the LSP
// spec's own "exit when the parent process dies" requirement.
//
// Grounded on buflsp/diagnostics_test.go's client-side wiring
// (jsonrpc2.NewStream + jsonrpc2.NewConn + conn.Go); the server-side half —
// building a protocol.Server dispatch into a jsonrpc2.Conn — is written
// from go.lsp.dev/protocol's own documented conventions
// (protocol.ServerHandler wrapping a protocol.Server into a
// jsonrpc2.Handler) rather than a teacher body, since buflsp.Serve's own
// implementation is not present anywhere in the retrieval pack.
func Serve(ctx context.Context, logger *zap.Logger, sess *session.Session, rwc io.ReadWriteCloser, parentPID int) error {
	dispatch := NewDispatch(logger, sess)

	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)
	dispatch.SetConn(conn)

	handler := protocol.ServerHandler(dispatch, jsonrpc2.MethodNotFoundHandler)
	conn.Go(ctx, handler)

	if parentPID > 0 {
		go watchParent(ctx, conn, parentPID)
	}

	select {
	case <-conn.Done():
		return conn.Err()
	case <-ctx.Done():
		_ = conn.Close()
		return ctx.Err()
	}
}

// watchParent closes conn the first time parentPID can no longer be
// signaled, polling at parentPollInterval rather than blocking on a
// platform-specific wait API.
func watchParent(ctx context.Context, conn jsonrpc2.Conn, parentPID int) {
	ticker := time.NewTicker(parentPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-conn.Done():
			return
		case <-ticker.C:
			if !processAlive(parentPID) {
				_ = conn.Close()
				return
			}
		}
	}
}
