package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favicache/internal/domain/entity"
)

var icoBytes = []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x10, 0x10}

// execute runs the root command with isolated XDG dirs and fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	appOpts.CacheDir = ""
	appOpts.Verbose = false
	resolveJSON, resolveAttempts = false, false
	candidatesJSON = false
	encodeRaw = false
	exportSize, exportOut = 0, ""
	configForce, configSchemaOut = false, ""
	app = nil

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func iconServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/favicon.ico" {
			_, _ = w.Write(icoBytes)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveCommand_PrintsCachedPath(t *testing.T) {
	srv := iconServer(t)
	cacheDir := t.TempDir()

	out, err := execute(t, "--cache-dir", cacheDir, "resolve", srv.URL)
	require.NoError(t, err)

	want := filepath.Join(cacheDir, entity.NewCacheKey(srv.URL+"/favicon.ico").Filename())
	assert.Equal(t, want+"\n", out)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, icoBytes, data)
}

func TestResolveCommand_JSON(t *testing.T) {
	srv := iconServer(t)

	out, err := execute(t, "--cache-dir", t.TempDir(), "resolve", "--json", srv.URL)
	require.NoError(t, err)

	var got resolutionJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, srv.URL, got.Origin)
	require.Len(t, got.Attempts, 1)
	assert.Equal(t, string(entity.SourceWellKnown), got.Attempts[0].Source)
	assert.False(t, got.Attempts[0].CacheHit)
	assert.NotEmpty(t, got.Path)
}

func TestResolveCommand_InvalidInput(t *testing.T) {
	_, err := execute(t, "--cache-dir", t.TempDir(), "resolve", "ftp://example.com")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestKeyCommand(t *testing.T) {
	cacheDir := t.TempDir()
	const iconURL = "https://example.com/favicon.ico"

	out, err := execute(t, "--cache-dir", cacheDir, "key", iconURL)
	require.NoError(t, err)

	key := entity.NewCacheKey(iconURL)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, string(key), lines[0])
	assert.Equal(t, filepath.Join(cacheDir, key.Filename()), lines[1])
	assert.Equal(t, "missing", lines[2])
}

func TestEncodeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.ico")
	require.NoError(t, os.WriteFile(path, icoBytes, 0o600))

	out, err := execute(t, "encode", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/x-icon;base64,"), out)
}

func TestCacheListCommand_PlainOutput(t *testing.T) {
	srv := iconServer(t)
	cacheDir := t.TempDir()

	_, err := execute(t, "--cache-dir", cacheDir, "resolve", srv.URL)
	require.NoError(t, err)

	out, err := execute(t, "--cache-dir", cacheDir, "cache", "list")
	require.NoError(t, err)

	key := entity.NewCacheKey(srv.URL + "/favicon.ico")
	assert.Contains(t, out, string(key)+"\t8\t")
}

func TestConfigSchemaCommand(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"timeout_seconds"`)
}

func TestConfigInitCommand_RefusesOverwrite(t *testing.T) {
	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.FileExists(t, path)

	// Same process, same XDG env: a second init must not clobber the file.
	_, err = rootCmd.ExecuteC()
	assert.Error(t, err)
}

func TestDefaultExportName(t *testing.T) {
	name, err := defaultExportName("example.com", 32)
	require.NoError(t, err)
	assert.Equal(t, "example.com_32.png", name)

	name, err = defaultExportName("http://127.0.0.1:8080/x", 64)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1_8080_64.png", name)

	_, err = defaultExportName("", 32)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}
