package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_Execute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]any
		expected string
	}{
		{
			name:     "simple expression",
			template: "{{ .name }}",
			data:     map[string]any{"name": "John"},
			expected: "John",
		},
		{
			// Numbers stay text; no coercion happens on output.
			name:     "number",
			template: "{{ .age }}",
			data:     map[string]any{"age": 30},
			expected: "30",
		},
		{
			name:     "nested",
			template: "Hello {{ .user.name }}",
			data:     map[string]any{"user": map[string]any{"name": "Alice"}},
			expected: "Hello Alice",
		},
		{
			name:     "missing key",
			template: "[{{ .missing }}]",
			data:     map[string]any{},
			expected: "[<no value>]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Parse(tt.name, tt.template)
			require.NoError(t, err)

			result, err := tmpl.Execute(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTemplate_ExecuteReusable(t *testing.T) {
	tmpl := MustParse("greeting", "hi {{ .input }}")

	first, err := tmpl.Execute(map[string]any{"input": "a"})
	require.NoError(t, err)

	second, err := tmpl.Execute(map[string]any{"input": "b"})
	require.NoError(t, err)

	assert.Equal(t, "hi a", first)
	assert.Equal(t, "hi b", second)
}

func TestParse_Error(t *testing.T) {
	_, err := Parse("broken", "{{ .unclosed ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template 'broken'")
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("broken", "{{ if }}")
	})
}

func TestTemplate_ExecuteError(t *testing.T) {
	tmpl := MustParse("call", "{{ .fn 1 }}")

	_, err := tmpl.Execute(map[string]any{"fn": "not a func"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute template 'call'")
}
