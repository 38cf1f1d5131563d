package transport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoverProjectPrefersRootNamedMainFile(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "myproj")
	srcDir := filepath.Join(projectDir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "vex.mod"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "aaa.vx"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "myproj.vx"), []byte(""), 0o644))

	nested := filepath.Join(projectDir, "src", "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	gotRoot, mainFile, err := DiscoverProject(nested)
	require.NoError(t, err)
	require.Equal(t, projectDir, gotRoot)
	require.Equal(t, filepath.Join(srcDir, "myproj.vx"), mainFile)
}

func TestDiscoverProjectFallsBackToFirstSourceFile(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "zzz.vx"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "aaa.vx"), []byte(""), 0o644))

	gotRoot, mainFile, err := DiscoverProject(root)
	require.NoError(t, err)
	require.Equal(t, root, gotRoot)
	require.Equal(t, filepath.Join(srcDir, "aaa.vx"), mainFile)
}

func TestDiscoverProjectErrorsWithNoMarkerOrSrc(t *testing.T) {
	root := t.TempDir()
	_, _, err := DiscoverProject(root)
	require.Error(t, err)
}
