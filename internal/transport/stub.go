package transport

import (
	"context"
	"errors"

	"go.lsp.dev/protocol"
)

// unimplemented satisfies protocol.Server in full so that Dispatch only has
// to embed it and override the handful of methods spec.md §6 actually
// names. Every method here returns a fixed "not implemented" error, the
// same shape as bufbuild-buf/buflsp's noopServer, except the Initialized
// and SetTrace notifications, which return nil as noopServer's do.
// Dispatch overrides Initialized to run its first rebuild.
type unimplemented struct{}

var _ protocol.Server = unimplemented{}

func notImplemented(name string) error {
	return errors.New("not implemented: " + name)
}

func (unimplemented) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	return nil, notImplemented("Initialize")
}
func (unimplemented) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}
func (unimplemented) Shutdown(ctx context.Context) error { return notImplemented("Shutdown") }
func (unimplemented) Exit(ctx context.Context) error     { return notImplemented("Exit") }
func (unimplemented) WorkDoneProgressCancel(ctx context.Context, params *protocol.WorkDoneProgressCancelParams) error {
	return notImplemented("WorkDoneProgressCancel")
}
func (unimplemented) LogTrace(ctx context.Context, params *protocol.LogTraceParams) error {
	return notImplemented("LogTrace")
}
func (unimplemented) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}
func (unimplemented) CodeAction(ctx context.Context, params *protocol.CodeActionParams) ([]protocol.CodeAction, error) {
	return nil, notImplemented("CodeAction")
}
func (unimplemented) CodeLens(ctx context.Context, params *protocol.CodeLensParams) ([]protocol.CodeLens, error) {
	return nil, notImplemented("CodeLens")
}
func (unimplemented) CodeLensResolve(ctx context.Context, params *protocol.CodeLens) (*protocol.CodeLens, error) {
	return nil, notImplemented("CodeLensResolve")
}
func (unimplemented) ColorPresentation(ctx context.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	return nil, notImplemented("ColorPresentation")
}
func (unimplemented) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	return nil, notImplemented("Completion")
}
func (unimplemented) CompletionResolve(ctx context.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	return nil, notImplemented("CompletionResolve")
}
func (unimplemented) Declaration(ctx context.Context, params *protocol.DeclarationParams) ([]protocol.Location, error) {
	return nil, notImplemented("Declaration")
}
func (unimplemented) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	return nil, notImplemented("Definition")
}
func (unimplemented) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	return notImplemented("DidChange")
}
func (unimplemented) DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) error {
	return notImplemented("DidChangeConfiguration")
}
func (unimplemented) DidChangeWatchedFiles(ctx context.Context, params *protocol.DidChangeWatchedFilesParams) error {
	return notImplemented("DidChangeWatchedFiles")
}
func (unimplemented) DidChangeWorkspaceFolders(ctx context.Context, params *protocol.DidChangeWorkspaceFoldersParams) error {
	return notImplemented("DidChangeWorkspaceFolders")
}
func (unimplemented) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	return notImplemented("DidClose")
}
func (unimplemented) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	return notImplemented("DidOpen")
}
func (unimplemented) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	return notImplemented("DidSave")
}
func (unimplemented) DocumentColor(ctx context.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return nil, notImplemented("DocumentColor")
}
func (unimplemented) DocumentHighlight(ctx context.Context, params *protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
	return nil, notImplemented("DocumentHighlight")
}
func (unimplemented) DocumentLink(ctx context.Context, params *protocol.DocumentLinkParams) ([]protocol.DocumentLink, error) {
	return nil, notImplemented("DocumentLink")
}
func (unimplemented) DocumentLinkResolve(ctx context.Context, params *protocol.DocumentLink) (*protocol.DocumentLink, error) {
	return nil, notImplemented("DocumentLinkResolve")
}
func (unimplemented) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	return nil, notImplemented("DocumentSymbol")
}
func (unimplemented) ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	return nil, notImplemented("ExecuteCommand")
}
func (unimplemented) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	return nil, notImplemented("FoldingRanges")
}
func (unimplemented) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	return nil, notImplemented("Formatting")
}
func (unimplemented) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return nil, notImplemented("Hover")
}
func (unimplemented) Implementation(ctx context.Context, params *protocol.ImplementationParams) ([]protocol.Location, error) {
	return nil, notImplemented("Implementation")
}
func (unimplemented) OnTypeFormatting(ctx context.Context, params *protocol.DocumentOnTypeFormattingParams) ([]protocol.TextEdit, error) {
	return nil, notImplemented("OnTypeFormatting")
}
func (unimplemented) PrepareRename(ctx context.Context, params *protocol.PrepareRenameParams) (*protocol.Range, error) {
	return nil, notImplemented("PrepareRename")
}
func (unimplemented) RangeFormatting(ctx context.Context, params *protocol.DocumentRangeFormattingParams) ([]protocol.TextEdit, error) {
	return nil, notImplemented("RangeFormatting")
}
func (unimplemented) References(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	return nil, notImplemented("References")
}
func (unimplemented) Rename(ctx context.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	return nil, notImplemented("Rename")
}
func (unimplemented) SignatureHelp(ctx context.Context, params *protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
	return nil, notImplemented("SignatureHelp")
}
func (unimplemented) Symbols(ctx context.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	return nil, notImplemented("Symbols")
}
func (unimplemented) TypeDefinition(ctx context.Context, params *protocol.TypeDefinitionParams) ([]protocol.Location, error) {
	return nil, notImplemented("TypeDefinition")
}
func (unimplemented) WillSave(ctx context.Context, params *protocol.WillSaveTextDocumentParams) error {
	return notImplemented("WillSave")
}
func (unimplemented) WillSaveWaitUntil(ctx context.Context, params *protocol.WillSaveTextDocumentParams) ([]protocol.TextEdit, error) {
	return nil, notImplemented("WillSaveWaitUntil")
}
func (unimplemented) ShowDocument(ctx context.Context, params *protocol.ShowDocumentParams) (*protocol.ShowDocumentResult, error) {
	return nil, notImplemented("ShowDocument")
}
func (unimplemented) WillCreateFiles(ctx context.Context, params *protocol.CreateFilesParams) (*protocol.WorkspaceEdit, error) {
	return nil, notImplemented("WillCreateFiles")
}
func (unimplemented) DidCreateFiles(ctx context.Context, params *protocol.CreateFilesParams) error {
	return notImplemented("DidCreateFiles")
}
func (unimplemented) WillRenameFiles(ctx context.Context, params *protocol.RenameFilesParams) (*protocol.WorkspaceEdit, error) {
	return nil, notImplemented("WillRenameFiles")
}
func (unimplemented) DidRenameFiles(ctx context.Context, params *protocol.RenameFilesParams) error {
	return notImplemented("DidRenameFiles")
}
func (unimplemented) WillDeleteFiles(ctx context.Context, params *protocol.DeleteFilesParams) (*protocol.WorkspaceEdit, error) {
	return nil, notImplemented("WillDeleteFiles")
}
func (unimplemented) DidDeleteFiles(ctx context.Context, params *protocol.DeleteFilesParams) error {
	return notImplemented("DidDeleteFiles")
}
func (unimplemented) CodeLensRefresh(ctx context.Context) error {
	return notImplemented("CodeLensRefresh")
}
func (unimplemented) PrepareCallHierarchy(ctx context.Context, params *protocol.CallHierarchyPrepareParams) ([]protocol.CallHierarchyItem, error) {
	return nil, notImplemented("PrepareCallHierarchy")
}
func (unimplemented) IncomingCalls(ctx context.Context, params *protocol.CallHierarchyIncomingCallsParams) ([]protocol.CallHierarchyIncomingCall, error) {
	return nil, notImplemented("IncomingCalls")
}
func (unimplemented) OutgoingCalls(ctx context.Context, params *protocol.CallHierarchyOutgoingCallsParams) ([]protocol.CallHierarchyOutgoingCall, error) {
	return nil, notImplemented("OutgoingCalls")
}
func (unimplemented) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	return nil, notImplemented("SemanticTokensFull")
}
func (unimplemented) SemanticTokensFullDelta(ctx context.Context, params *protocol.SemanticTokensDeltaParams) (interface{}, error) {
	return nil, notImplemented("SemanticTokensFullDelta")
}
func (unimplemented) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	return nil, notImplemented("SemanticTokensRange")
}
func (unimplemented) SemanticTokensRefresh(ctx context.Context) error {
	return notImplemented("SemanticTokensRefresh")
}
func (unimplemented) LinkedEditingRange(ctx context.Context, params *protocol.LinkedEditingRangeParams) (*protocol.LinkedEditingRanges, error) {
	return nil, notImplemented("LinkedEditingRange")
}
func (unimplemented) Moniker(ctx context.Context, params *protocol.MonikerParams) ([]protocol.Moniker, error) {
	return nil, notImplemented("Moniker")
}
func (unimplemented) Request(ctx context.Context, method string, params interface{}) (interface{}, error) {
	return nil, notImplemented("Request: " + method)
}
