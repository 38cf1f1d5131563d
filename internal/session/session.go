// Package session owns everything that survives between editor requests:
// open-document buffers shadowing on-disk text, the project's main file and
// import search paths, and the most recent rebuild's resolved Program.
//
// Grounded on bufbuild-buf's BufLsp (buflsp/lsp.go): a mutex-guarded
// fileCache plus one owning struct, minus its fsnotify watcher goroutine.
// Rebuilds here only ever happen synchronously inside a handler — on
// initialized, document open, or document save (spec.md §3.4, §5) — never
// from a background filesystem event, so there is nothing for a watcher to
// trigger and no fsnotify dependency to carry.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/loader"
	"github.com/vexlang/vexls/internal/resolver"
)

// Document is one open editor buffer. Its text shadows the on-disk file at
// Path until the editor closes it (spec.md §3.4).
type Document struct {
	Path    string
	Text    string
	Version int32
}

// Session is the single owning struct a transport dispatches requests
// through. All of its methods are safe for concurrent use, though the core's
// single-threaded cooperative model (spec.md §5) means callers never
// actually overlap two calls in practice.
type Session struct {
	logger *zap.Logger

	mu          sync.Mutex
	root        string
	mainFile    string
	searchPaths []string

	open    map[string]*Document
	program *resolver.Program
}

// New creates a Session for the project rooted at root, whose entry point is
// mainFile. Imports are searched for in mainFile's own directory first, then
// stdlibDir (if non-empty), then unitPaths in order — mirroring spec.md
// §4.3's "project source directory, then bundled standard-library
// directory, then any explicitly configured unit paths".
func New(logger *zap.Logger, root, mainFile, stdlibDir string, unitPaths []string) *Session {
	search := []string{filepath.Dir(mainFile)}
	if stdlibDir != "" {
		search = append(search, stdlibDir)
	}
	search = append(search, unitPaths...)

	return &Session{
		logger:      logger,
		root:        root,
		mainFile:    mainFile,
		searchPaths: search,
		open:        make(map[string]*Document),
	}
}

// Root returns the project root directory.
func (s *Session) Root() string { return s.root }

// MainFile returns the project's entry-point module path.
func (s *Session) MainFile() string { return s.mainFile }

// Open records path as an open editor buffer with the given initial text
// and version, shadowing the on-disk file of the same path.
func (s *Session) Open(path, text string, version int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[path] = &Document{Path: path, Text: text, Version: version}
}

// Change replaces the text of an already-open buffer. Per spec.md §3.4 this
// does not by itself trigger a rebuild; the transport calls Rebuild
// separately on save.
func (s *Session) Change(path, text string, version int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.open[path]; ok {
		doc.Text = text
		doc.Version = version
		return
	}
	s.open[path] = &Document{Path: path, Text: text, Version: version}
}

// Close drops path's open-buffer shadow; subsequent rebuilds read it from
// disk again.
func (s *Session) Close(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.open, path)
}

// Source returns the current text for path: the open buffer if one shadows
// it, otherwise the on-disk contents.
func (s *Session) Source(path string) (string, error) {
	s.mu.Lock()
	doc, ok := s.open[path]
	s.mu.Unlock()
	if ok {
		return doc.Text, nil
	}
	text, err := os.ReadFile(path)
	return string(text), err
}

// IsOpen reports whether path currently has an open-buffer shadow.
func (s *Session) IsOpen(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.open[path]
	return ok
}

// OpenPaths returns the paths of every currently open document, for
// dispatch code republishing diagnostics to all of them after a rebuild.
func (s *Session) OpenPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.open))
	for path := range s.open {
		paths = append(paths, path)
	}
	return paths
}

// Program returns the Program produced by the most recent Rebuild, or nil
// before the first one has run.
func (s *Session) Program() *resolver.Program {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.program
}

// Rebuild reloads the project's module graph from mainFile, with every open
// buffer shadowing its on-disk file, reruns the resolver from scratch (the
// symbol model is never incrementally patched — spec.md §3.4), and stores
// the resulting Program. It returns every diagnostic raised during loading
// and resolution, merged and ready for the transport to publish per file.
//
// Triggered only from initialized, textDocument/didOpen, and
// textDocument/didSave (spec.md §3.4) — never from didChange, and never on
// a timer or filesystem event.
func (s *Session) Rebuild() ([]diag.Diagnostic, error) {
	s.mu.Lock()
	overrides := make(map[string]string, len(s.open))
	for path, doc := range s.open {
		overrides[path] = doc.Text
	}
	mainFile, searchPaths := s.mainFile, s.searchPaths
	s.mu.Unlock()

	registry, loadDiags, err := loader.LoadWithOverrides(mainFile, searchPaths, overrides)
	if err != nil {
		s.logger.Sugar().Warnf("module load reported errors: %s", err)
	}

	prog := resolver.Resolve(registry)
	all := append(append([]diag.Diagnostic{}, loadDiags...), prog.Diagnostics()...)

	s.mu.Lock()
	s.program = prog
	s.mu.Unlock()

	s.logger.Sugar().Infof("rebuilt %s: %d module(s), %d diagnostic(s)", mainFile, len(registry.All()), len(all))
	return all, nil
}

// PathForModule returns the on-disk path of a resolved module, for
// dispatch code translating a module name back into a document URI.
func (s *Session) PathForModule(name string) (string, error) {
	prog := s.Program()
	if prog == nil {
		return "", fmt.Errorf("no rebuild has completed yet")
	}
	mod, ok := prog.ModuleByName(name)
	if !ok {
		return "", fmt.Errorf("unknown module %q", name)
	}
	return mod.Loaded.Path, nil
}
