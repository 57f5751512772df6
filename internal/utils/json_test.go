package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadJSON tests the JSON loading functionality
func TestLoadJSON(t *testing.T) {
	t.Run("loads valid JSON file successfully", func(t *testing.T) {
		tmpDir := t.TempDir()
		jsonFile := filepath.Join(tmpDir, "test.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{"name": "test", "value": 42}`), 0600))

		var result struct {
			Name  string `json:"name"`
			Value int    `json:"value"`
		}
		err := LoadJSON(jsonFile, &result)

		assert.NoError(t, err)
		assert.Equal(t, "test", result.Name)
		assert.Equal(t, 42, result.Value)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		var result map[string]interface{}
		err := LoadJSON("/nonexistent/path/file.json", &result)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "invalid.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte("{invalid json}"), 0600))

		var result map[string]interface{}
		err := LoadJSON(jsonFile, &result)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}

func TestLoadJSONIfExists(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		result := []string{"untouched"}
		found, err := LoadJSONIfExists(filepath.Join(t.TempDir(), "missing.json"), &result)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, []string{"untouched"}, result)
	})

	t.Run("invalid JSON still fails", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte("["), 0600))

		var result []string
		found, err := LoadJSONIfExists(jsonFile, &result)

		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestSaveJSON(t *testing.T) {
	t.Run("creates parent directories and round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")
		input := map[string]int{"a": 1, "b": 2}

		require.NoError(t, SaveJSON(path, input))

		var output map[string]int
		require.NoError(t, LoadJSON(path, &output))
		assert.Equal(t, input, output)

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp files must not be left behind")
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, SaveJSON(path, []int{1, 2, 3}))
		require.NoError(t, SaveJSON(path, []int{4}))

		var output []int
		require.NoError(t, LoadJSON(path, &output))
		assert.Equal(t, []int{4}, output)
	})

	t.Run("returns error for unmarshalable data", func(t *testing.T) {
		err := SaveJSON(filepath.Join(t.TempDir(), "x.json"), make(chan int))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal data")
	})
}
