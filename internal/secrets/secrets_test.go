// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want Set
	}{
		{
			name: "trims values",
			fsys: fstest.MapFS{
				SourceToken:    {Data: []byte("  tok_abc123  \n")},
				"mirror-token": {Data: []byte("tok_xyz\n")},
			},
			want: Set{SourceToken: "tok_abc123", "mirror-token": "tok_xyz"},
		},
		{
			name: "skips blank and hidden files",
			fsys: fstest.MapFS{
				SourceToken: {Data: []byte("valid")},
				"blank":     {Data: []byte(" \n\t")},
				".gitkeep":  {Data: nil},
				".hidden":   {Data: []byte("secret")},
			},
			want: Set{SourceToken: "valid"},
		},
		{
			name: "ignores nested directories",
			fsys: fstest.MapFS{
				"nested/" + SourceToken: {Data: []byte("deep")},
			},
			want: Set{},
		},
		{
			name: "empty",
			fsys: fstest.MapFS{},
			want: Set{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.fsys)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SourceToken), []byte("tok\n"), 0o600))

	got, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, Set{SourceToken: "tok"}, got)
}

func TestLoadDirMissing(t *testing.T) {
	got, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadDirNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := LoadDir(file)
	assert.ErrorContains(t, err, "reading secrets directory")
}

func TestLookupAndNames(t *testing.T) {
	s := Set{SourceToken: "from-file", "b": "2", "a": "1"}
	assert.Equal(t, "from-flag", s.Lookup(SourceToken, "from-flag"))
	assert.Equal(t, "from-file", s.Lookup(SourceToken, ""))
	assert.Empty(t, Set(nil).Lookup(SourceToken, ""))
	assert.Equal(t, []string{"a", "b", SourceToken}, s.Names())
}
