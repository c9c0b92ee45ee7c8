// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, CityToken, "  tok_abc123  \n")
				writeFile(t, dir, StateAPIKey, "key_xyz789")
				return dir
			},
			want: map[string]string{
				CityToken:   "tok_abc123",
				StateAPIKey: "key_xyz789",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, CityToken, "valid")
				writeFile(t, dir, StateAPIKey, "   \n\t  ")
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden", "secret")
				return dir
			},
			want: map[string]string{CityToken: "valid"},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, StateAPIKey, "k")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{StateAPIKey: "k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	base := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(local, []byte("BILLQUERY_TEST_CITY=from-local\n"), 0o644))
	require.NoError(t, os.WriteFile(base, []byte("BILLQUERY_TEST_CITY=from-env\nBILLQUERY_TEST_STATE=state\n"), 0o644))

	t.Setenv("ENV_FILE", "")
	t.Setenv("BILLQUERY_TEST_CITY", "")
	t.Setenv("BILLQUERY_TEST_STATE", "")
	os.Unsetenv("BILLQUERY_TEST_CITY")
	os.Unsetenv("BILLQUERY_TEST_STATE")

	require.NoError(t, LoadEnv(local, base, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-local", os.Getenv("BILLQUERY_TEST_CITY"))
	assert.Equal(t, "state", os.Getenv("BILLQUERY_TEST_STATE"))
}

func TestLoadEnvFileOverride(t *testing.T) {
	dir := t.TempDir()
	only := filepath.Join(dir, "only.env")
	require.NoError(t, os.WriteFile(only, []byte("BILLQUERY_TEST_ONLY=yes\n"), 0o644))

	t.Setenv("ENV_FILE", only)
	t.Setenv("BILLQUERY_TEST_ONLY", "")
	os.Unsetenv("BILLQUERY_TEST_ONLY")

	require.NoError(t, LoadEnv(filepath.Join(dir, "ignored.env")))
	assert.Equal(t, "yes", os.Getenv("BILLQUERY_TEST_ONLY"))
}

func TestFirst(t *testing.T) {
	assert.Equal(t, "b", First("", "  ", " b ", "c"))
	assert.Equal(t, "", First())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
