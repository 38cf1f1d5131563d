package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeModule(t *testing.T, dir, filename, source string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", filename, err)
	}
}

func TestLoadResolvesTransitiveImports(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "Main.vx", `module Main exe;
import Utils;
begin
end.`)
	writeModule(t, dir, "Utils.vx", `module Utils lib;
routine Helper();
begin
end;
`)

	registry, diags, err := Load(filepath.Join(dir, "Main.vx"), []string{dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	if _, ok := registry.Get("Main"); !ok {
		t.Fatalf("expected Main registered")
	}
	if _, ok := registry.Get("utils"); !ok {
		t.Fatalf("expected Utils registered under case-insensitive lookup")
	}
}

func TestLoadToleratesImportCycles(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "A.vx", `module A lib;
import B;
`)
	writeModule(t, dir, "B.vx", `module B lib;
import A;
`)

	registry, _, err := Load(filepath.Join(dir, "A.vx"), []string{dir})
	if err != nil {
		t.Fatalf("expected cycle to be tolerated, got error: %v", err)
	}
	if _, ok := registry.Get("A"); !ok {
		t.Fatalf("expected A registered")
	}
	if _, ok := registry.Get("B"); !ok {
		t.Fatalf("expected B registered")
	}
}

func TestLoadReportsUnresolvedImport(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "Main.vx", `module Main exe;
import Missing;
begin
end.`)

	_, diags, err := Load(filepath.Join(dir, "Main.vx"), []string{dir})
	if err == nil {
		t.Fatalf("expected an aggregated error for the unresolved import")
	}
	found := false
	for _, d := range diags {
		if d.Code == "E108" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an E108 diagnostic, got %+v", diags)
	}
}

func TestRegistryRegisterRejectsDuplicateCaseInsensitiveName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("Utils", &Loaded{}); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if err := r.Register("UTILS", &Loaded{}); err == nil {
		t.Fatalf("expected error registering duplicate case-insensitive name")
	}
}

func TestFindModuleCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "MyModule.vx", `module MyModule lib;
`)

	path, err := FindModule("mymodule", []string{dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "MyModule.vx" {
		t.Fatalf("expected MyModule.vx, got %s", path)
	}
}

func TestFindModuleNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, err := FindModule("Nonexistent", []string{dir}); err == nil {
		t.Fatalf("expected an error for a missing module")
	}
}
