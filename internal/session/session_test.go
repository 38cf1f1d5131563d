package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vexlang/vexls/internal/diag"
)

func writeFile(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestRebuildResolvesOnDiskModules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Main.vx", `module Main exe;
import Utils;
begin
  Utils.Helper();
end.
`)
	writeFile(t, dir, "Utils.vx", `module Utils lib;
export routine Helper();
begin
end;
`)

	sess := New(zap.NewNop(), dir, filepath.Join(dir, "Main.vx"), "", nil)
	diags, err := sess.Rebuild()
	require.NoError(t, err)
	require.Empty(t, diags)
	require.NotNil(t, sess.Program())

	path, err := sess.PathForModule("Utils")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "Utils.vx"), path)
}

func TestOpenBufferShadowsDiskDuringRebuild(t *testing.T) {
	dir := t.TempDir()
	mainPath := writeFile(t, dir, "Main.vx", `module Main exe;
begin
end.
`)

	sess := New(zap.NewNop(), dir, mainPath, "", nil)

	// Shadow the on-disk text with a buffer containing an unresolved call,
	// without writing the change to disk.
	sess.Open(mainPath, `module Main exe;
begin
  Missing();
end.
`, 1)

	diags, err := sess.Rebuild()
	require.NoError(t, err)
	require.NotEmpty(t, diags, "expected the shadowed buffer's unresolved call to be diagnosed")

	sess.Close(mainPath)
	diags, err = sess.Rebuild()
	require.NoError(t, err)
	for _, d := range diags {
		require.NotEqual(t, diag.CodeUnknownIdentifier, d.Code, "closing the buffer should fall back to the clean on-disk text")
	}
}

func TestSourcePrefersOpenBufferOverDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Main.vx", "module Main exe;\nbegin\nend.\n")

	sess := New(zap.NewNop(), dir, path, "", nil)
	require.False(t, sess.IsOpen(path))

	sess.Open(path, "shadowed text", 1)
	require.True(t, sess.IsOpen(path))

	text, err := sess.Source(path)
	require.NoError(t, err)
	require.Equal(t, "shadowed text", text)

	sess.Close(path)
	text, err = sess.Source(path)
	require.NoError(t, err)
	require.Equal(t, "module Main exe;\nbegin\nend.\n", text)
}
