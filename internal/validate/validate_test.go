package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointSchema = &Schema{
	Name: "test-point",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"x", "y"},
		"properties": map[string]any{
			"x": map[string]any{"type": "integer"},
			"y": map[string]any{"type": "integer"},
		},
	},
}

func TestDocument(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"x": 1, "y": 2}`, false},
		{"missing field", `{"x": 1}`, true},
		{"wrong type", `{"x": "1", "y": 2}`, true},
		{"not json", `{x: 1`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Document(pointSchema, []byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				var vErr *Error
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, "test-point", vErr.Schema)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, parsed)
		})
	}
}

func TestCompiledSchemaIsCached(t *testing.T) {
	first, err := compiledSchema(pointSchema)
	require.NoError(t, err)
	second, err := compiledSchema(pointSchema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
