package filter

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/findfiles/internal/fileutil"
)

func TestLoadGitignore(t *testing.T) {
	fsys := fileutil.FromFS(fstest.MapFS{
		".gitignore":       {Data: []byte("*.tmp\nbuild/\n# comment\n")},
		"keep.txt":         {Data: []byte("x")},
		"scratch.tmp":      {Data: []byte("x")},
		"build/output.txt": {Data: []byte("x")},
	})

	gi, err := LoadGitignore(fsys, ".")
	require.NoError(t, err)
	require.NotNil(t, gi)
	assert.Equal(t, "gitignore", gi.Reason())

	tests := []struct {
		path string
		want bool
	}{
		{"./keep.txt", false},
		{"./scratch.tmp", true},
		{"./sub/other.tmp", true},
		{"./build/output.txt", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := gi.Excludes(tt.path, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadGitignore_Missing(t *testing.T) {
	gi, err := LoadGitignore(fileutil.FromFS(fstest.MapFS{}), ".")
	require.NoError(t, err)
	assert.Nil(t, gi)

	excluded, err := gi.Excludes("./anything", "anything")
	require.NoError(t, err)
	assert.False(t, excluded)
}
