package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaID, doc["$id"])

	// Keys use the TOML names users write in config.toml.
	assert.Contains(t, string(data), `"timeout_seconds"`)
	assert.Contains(t, string(data), `"max_icon_bytes"`)
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), schemaFileName)
	require.NoError(t, WriteSchemaFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
