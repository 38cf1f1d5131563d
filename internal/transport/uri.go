package transport

import (
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// uriToPath converts a file:// URI to a filesystem path (spec.md §6's
// "URI ↔ path"). uri.URI.Filename() already percent-decodes and strips the
// leading slash Windows drive letters pick up, so there is nothing left
// for this package to normalize by hand.
//
// Grounded on buflsp/uri.go's FilePathToURI/normalizeURI pair: Vex reuses
// go.lsp.dev/uri directly for both directions instead of reimplementing
// its percent-encoding and Windows drive-letter handling on top of
// net/url, since that handling is exactly what the library exists for.
func uriToPath(u protocol.DocumentURI) string {
	return uri.URI(u).Filename()
}

// pathToURI is uriToPath's inverse, used whenever a Location or
// PublishDiagnosticsParams needs to name a file back to the client.
func pathToURI(path string) protocol.DocumentURI {
	return protocol.DocumentURI(uri.File(path))
}
