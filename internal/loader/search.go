package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ModuleExtension is the only source extension Vex modules use. Exported so
// internal/transport's project-discovery walk (spec.md §6) can recognize a
// source file without duplicating the literal.
const ModuleExtension = ".vx"

const moduleExtension = ModuleExtension

// FindModule searches each of searchPaths in order for a file named
// name+".vx", matching case-insensitively against whatever is actually on
// disk. Modeled on DWScript's FindUnit, which does the same
// scan-and-compare-case-insensitively walk to support a case-insensitive
// import name on a case-sensitive filesystem; reduced from DWScript's
// multi-extension (.dws/.pas) preference order to Vex's single extension.
func FindModule(name string, searchPaths []string) (string, error) {
	paths := searchPaths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	wantLower := strings.ToLower(name) + moduleExtension
	for _, dir := range paths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.ToLower(entry.Name()) == wantLower {
				return filepath.Join(dir, entry.Name()), nil
			}
		}
	}
	return "", fmt.Errorf("module %q not found in search paths %v", name, paths)
}
