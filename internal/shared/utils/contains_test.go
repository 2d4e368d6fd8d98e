package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONContains(t *testing.T) {
	right := map[string]any{
		"id":    "0001",
		"value": "File",
		"size":  float64(3),
		"tags":  []any{"a", "b"},
		"meta":  map[string]any{"owner": "root"},
	}

	tests := []struct {
		name string
		left map[string]any
		want bool
	}{
		{"subset", map[string]any{"id": "0001"}, true},
		{"empty left", map[string]any{}, true},
		{"different value", map[string]any{"id": "0002"}, false},
		{"missing key", map[string]any{"name": "x"}, false},
		{"null matches missing", map[string]any{"name": nil}, true},
		{"int matches float", map[string]any{"size": 3}, true},
		{"nested equal", map[string]any{"meta": map[string]any{"owner": "root"}}, true},
		{"nested differs", map[string]any{"meta": map[string]any{"owner": "bin"}}, false},
		{"array order matters", map[string]any{"tags": []any{"b", "a"}}, false},
		{"type differs", map[string]any{"size": "3"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JSONContains(tt.left, right))
		})
	}
}

func TestJSONContainsRaw(t *testing.T) {
	ok, err := JSONContainsRaw([]byte(`{"id":"0001"}`), []byte(`{"id":"0001","value":"File"}`))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = JSONContainsRaw([]byte(`{"id":"0002"}`), []byte(`{"id":"0001"}`))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = JSONContainsRaw([]byte(`[1,2]`), []byte(`{}`))
	assert.Error(t, err)

	_, err = JSONContainsRaw([]byte(`{}`), []byte(`null`))
	assert.Error(t, err)

	_, err = JSONContainsRaw([]byte(`{"id":`), []byte(`{}`))
	assert.Error(t, err)
}
