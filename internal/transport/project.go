package transport

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vexlang/vexls/internal/loader"
)

// buildMarker is the file whose presence marks a directory as a Vex project
// root, independent of whether it also happens to contain a src/
// subdirectory (spec.md §6: "a recognized build marker or a src/
// subdirectory").
const buildMarker = "vex.mod"

// DiscoverProject walks upward from workspaceRoot looking for buildMarker or
// a src/ subdirectory, then picks the project's main source file out of
// src/: the file named after the root directory if present, else the first
// source file in src/ in directory order. Returns the project root and the
// resolved main file path.
//
// Grounded on spec.md §6's project-discovery algorithm; no direct teacher
// precedent (go-dws is invoked with an explicit file argument, never
// discovers a project root on its own), so the walk itself follows the
// plain os/path/filepath idiom already used by internal/loader's own
// directory scans rather than a teacher shape.
func DiscoverProject(workspaceRoot string) (root, mainFile string, err error) {
	dir := workspaceRoot
	for {
		if hasMarker(dir) || hasSrcDir(dir) {
			root = dir
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("no project root found walking up from %s", workspaceRoot)
		}
		dir = parent
	}

	srcDir := filepath.Join(root, "src")
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return "", "", fmt.Errorf("project root %s has no readable src directory: %w", root, err)
	}

	var sources []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), loader.ModuleExtension) {
			sources = append(sources, e.Name())
		}
	}
	if len(sources) == 0 {
		return "", "", fmt.Errorf("src directory %s has no %s source files", srcDir, loader.ModuleExtension)
	}
	sort.Strings(sources)

	wantName := filepath.Base(root) + loader.ModuleExtension
	chosen := sources[0]
	for _, s := range sources {
		if strings.EqualFold(s, wantName) {
			chosen = s
			break
		}
	}
	return root, filepath.Join(srcDir, chosen), nil
}

func hasMarker(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, buildMarker))
	return err == nil
}

func hasSrcDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "src"))
	return err == nil && info.IsDir()
}
