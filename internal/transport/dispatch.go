package transport

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/vexlang/vexls/internal/query"
	"github.com/vexlang/vexls/internal/session"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Dispatch answers every method spec.md §6 names by converting wire params
// to internal/query calls over sess, then converting the result back.
// Embedding unimplemented means every other protocol.Server method the
// client might still send (call hierarchy, formatting, color, ...) fails
// cleanly with "not implemented: X" instead of a panic or a missing-method
// compile error.
type Dispatch struct {
	unimplemented

	logger *zap.Logger
	sess   *session.Session
	conn   jsonrpc2.Conn // set by Serve once the connection exists; nil until then
}

// NewDispatch constructs a Dispatch over sess. conn is attached afterward
// via SetConn, since the jsonrpc2.Conn itself is only available once
// Serve has built the stream this Dispatch answers on.
func NewDispatch(logger *zap.Logger, sess *session.Session) *Dispatch {
	return &Dispatch{logger: logger, sess: sess}
}

// SetConn attaches the connection Dispatch notifies diagnostics over.
func (d *Dispatch) SetConn(conn jsonrpc2.Conn) { d.conn = conn }

func (d *Dispatch) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	syncFull := protocol.TextDocumentSyncKindFull
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    syncFull,
			},
			CompletionProvider:        &protocol.CompletionOptions{TriggerCharacters: []string{"."}},
			DefinitionProvider:        true,
			TypeDefinitionProvider:    true,
			ImplementationProvider:    true,
			ReferencesProvider:        true,
			DocumentHighlightProvider: true,
			HoverProvider:             true,
			DocumentSymbolProvider:    true,
			SignatureHelpProvider:     &protocol.SignatureHelpOptions{TriggerCharacters: []string{"(", ","}},
			CodeActionProvider:        true,
			RenameProvider:            true,
			FoldingRangeProvider:      true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: semanticTokensLegend,
				Full:   true,
			},
		},
	}, nil
}

// Initialized triggers the first rebuild so diagnostics are already fresh
// before the first didOpen arrives, per spec.md §3.4.
func (d *Dispatch) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	d.rebuildAndPublish(ctx)
	return nil
}

func (d *Dispatch) Shutdown(ctx context.Context) error {
	return nil
}

func (d *Dispatch) Exit(ctx context.Context) error {
	return nil
}

func (d *Dispatch) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	path := uriToPath(params.TextDocument.URI)
	d.sess.Open(path, params.TextDocument.Text, params.TextDocument.Version)
	d.rebuildAndPublish(ctx)
	return nil
}

func (d *Dispatch) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	path := uriToPath(params.TextDocument.URI)
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Full sync only (per Initialize's TextDocumentSyncKindFull): the last
	// change event already carries the document's complete new text.
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	d.sess.Change(path, text, params.TextDocument.Version)
	return nil
}

func (d *Dispatch) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	d.rebuildAndPublish(ctx)
	return nil
}

func (d *Dispatch) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	path := uriToPath(params.TextDocument.URI)
	d.sess.Close(path)
	if d.conn != nil {
		_ = publishDiagnostics(ctx, d.conn, path, nil)
	}
	return nil
}

// rebuildAndPublish reruns the resolver and publishes diagnostics for every
// open document, not just the ones a diagnostic currently names — an open
// document whose last errors were just fixed still needs an empty
// publishDiagnostics to clear its stale markers (spec.md §7).
func (d *Dispatch) rebuildAndPublish(ctx context.Context) {
	diags, err := d.sess.Rebuild()
	if err != nil {
		d.logger.Sugar().Warnf("rebuild failed: %s", err)
	}
	if d.conn == nil {
		return
	}
	for _, file := range d.sess.OpenPaths() {
		if err := publishDiagnostics(ctx, d.conn, file, diags); err != nil {
			d.logger.Sugar().Warnf("publishDiagnostics(%s): %s", file, err)
		}
	}
}

func (d *Dispatch) wordAt(uri protocol.DocumentURI, pos protocol.Position) (string, query.Word, bool) {
	path := uriToPath(uri)
	source, err := d.sess.Source(path)
	if err != nil {
		return path, query.Word{}, false
	}
	w, ok := query.WordAt(source, toInternalPos(pos))
	return path, w, ok
}

func (d *Dispatch) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	path, w, ok := d.wordAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}
	loc, ok := query.Definition(d.sess.Program(), path, w)
	if !ok {
		return nil, nil
	}
	return []protocol.Location{fromInternalLocation(loc)}, nil
}

func (d *Dispatch) TypeDefinition(ctx context.Context, params *protocol.TypeDefinitionParams) ([]protocol.Location, error) {
	path, w, ok := d.wordAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}
	loc, ok := query.TypeDefinition(d.sess.Program(), path, w)
	if !ok {
		return nil, nil
	}
	return []protocol.Location{fromInternalLocation(loc)}, nil
}

func (d *Dispatch) Implementation(ctx context.Context, params *protocol.ImplementationParams) ([]protocol.Location, error) {
	path, w, ok := d.wordAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}
	loc, ok := query.Implementation(d.sess.Program(), path, w)
	if !ok {
		return nil, nil
	}
	return []protocol.Location{fromInternalLocation(loc)}, nil
}

func (d *Dispatch) References(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	path, w, ok := d.wordAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}
	locs := query.References(d.sess.Program(), path, w)
	return fromInternalLocations(locs), nil
}

func (d *Dispatch) DocumentHighlight(ctx context.Context, params *protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
	path, w, ok := d.wordAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}
	locs := query.DocumentHighlight(d.sess.Program(), path, w)
	out := make([]protocol.DocumentHighlight, len(locs))
	for i, loc := range locs {
		out[i] = protocol.DocumentHighlight{Range: fromInternalRange(loc.Range)}
	}
	return out, nil
}

func (d *Dispatch) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, w, ok := d.wordAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}
	text, ok := query.Hover(d.sess.Program(), path, w)
	if !ok {
		return nil, nil
	}
	return toHover(text, nil), nil
}

func (d *Dispatch) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	path := uriToPath(params.TextDocument.URI)
	syms := query.DocumentSymbols(d.sess.Program(), path)
	wire := toDocumentSymbols(syms)
	out := make([]interface{}, len(wire))
	for i, s := range wire {
		out[i] = s
	}
	return out, nil
}

func (d *Dispatch) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	path := uriToPath(params.TextDocument.URI)
	source, err := d.sess.Source(path)
	if err != nil {
		return nil, err
	}
	items := query.Completion(d.sess.Program(), path, source, toInternalPos(params.Position))
	return toCompletionList(items), nil
}

func (d *Dispatch) SignatureHelp(ctx context.Context, params *protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
	path := uriToPath(params.TextDocument.URI)
	source, err := d.sess.Source(path)
	if err != nil {
		return nil, err
	}
	help, ok := query.Signature(d.sess.Program(), path, source, toInternalPos(params.Position))
	if !ok {
		return nil, nil
	}
	return toSignatureHelp(help), nil
}

func (d *Dispatch) CodeAction(ctx context.Context, params *protocol.CodeActionParams) ([]protocol.CodeAction, error) {
	path := uriToPath(params.TextDocument.URI)
	diags, err := d.sess.Rebuild()
	if err != nil {
		return nil, err
	}
	pos := toInternalPos(params.Range.Start)
	actions := query.CodeActions(diags, path, pos)
	return toCodeActions(actions), nil
}

func (d *Dispatch) Rename(ctx context.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	path, w, ok := d.wordAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, notImplemented("Rename: no word under cursor")
	}
	edit, err := query.Rename(d.sess.Program(), path, w, params.NewName)
	if err != nil {
		return nil, err
	}
	return toWorkspaceEdit(edit), nil
}

func (d *Dispatch) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	path := uriToPath(params.TextDocument.URI)
	ranges := query.FoldingRanges(d.sess.Program(), path)
	return toFoldingRanges(ranges), nil
}

func (d *Dispatch) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path := uriToPath(params.TextDocument.URI)
	tokens := query.SemanticTokens(d.sess.Program(), path)
	return toSemanticTokens(tokens), nil
}

// selectionRangeParams mirrors protocol's textDocument/selectionRange
// request shape by hand; see Request below for why.
type selectionRangeParams struct {
	TextDocument protocol.TextDocumentIdentifier `json:"textDocument"`
	Positions    []protocol.Position             `json:"positions"`
}

// Request intercepts textDocument/selectionRange, the one operation
// go.lsp.dev/protocol's Server interface has no dedicated method for in
// this build (confirmed against jsonrpc2.go's noopServer: every other
// method name in the interface has its own slot). Every other method name
// falls through to unimplemented.Request.
func (d *Dispatch) Request(ctx context.Context, method string, params interface{}) (interface{}, error) {
	if method != "textDocument/selectionRange" {
		return d.unimplemented.Request(ctx, method, params)
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var req selectionRangeParams
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}

	path := uriToPath(req.TextDocument.URI)
	out := make([]*selectionRangeWire, len(req.Positions))
	for i, p := range req.Positions {
		sel, ok := query.Selection(d.sess.Program(), path, toInternalPos(p))
		if !ok {
			continue
		}
		out[i] = toSelectionRange(sel)
	}
	return out, nil
}
