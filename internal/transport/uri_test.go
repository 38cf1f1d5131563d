package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathURIRoundTrip(t *testing.T) {
	paths := []string{
		"/home/user/project/src/main.vx",
		"/tmp/has space/file.vx",
	}
	for _, p := range paths {
		u := pathToURI(p)
		require.Equal(t, p, uriToPath(u), "round trip for %s", p)
	}
}

func TestPathToURIHasFileScheme(t *testing.T) {
	u := pathToURI("/a/b.vx")
	require.Contains(t, string(u), "file://")
}
