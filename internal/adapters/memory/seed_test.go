package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()

	require.Len(t, seed, 10)
	assert.Equal(t, "El único modo de hacer un gran trabajo es amar lo que haces. - Steve Jobs", seed[0])
	assert.Equal(t, "La única manera de hacer un gran trabajo es amar lo que haces. - Steve Jobs", seed[9])
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected []string
		wantErr  bool
	}{
		{
			name:     "trims entries",
			doc:      "quotes:\n  - \"  one \"\n  - two\n",
			expected: []string{"one", "two"},
		},
		{
			name:    "no quotes",
			doc:     "quotes: []\n",
			wantErr: true,
		},
		{
			name:    "missing key",
			doc:     "other: 1\n",
			wantErr: true,
		},
		{
			name:    "blank entry",
			doc:     "quotes:\n  - one\n  - \"   \"\n",
			wantErr: true,
		},
		{
			name:    "duplicate after trim",
			doc:     "quotes:\n  - one\n  - \" one\"\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			doc:     "quotes: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, err := ParseSeed([]byte(tt.doc))

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSeed)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, quotes)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	t.Run("empty path uses built-in seed", func(t *testing.T) {
		quotes, err := LoadSeedFile("")

		require.NoError(t, err)
		assert.Equal(t, DefaultSeed(), quotes)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("quotes:\n  - Stay curious.\n"), 0o600))

		quotes, err := LoadSeedFile(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"Stay curious."}, quotes)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.yaml")
	})
}
