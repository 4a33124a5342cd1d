//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpActionRun,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpActionRun,
			err:      errors.New("unknown tool"),
			expected: "Failed to run action: unknown tool",
		},
		{
			name:     "export operation",
			op:       OpSceneExport,
			err:      errors.New("permission denied"),
			expected: "Failed to export scene: permission denied",
		},
		{
			name:     "preferences operation",
			op:       OpStateSave,
			err:      errors.New("disk full"),
			expected: "Failed to save preferences: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpActionRun,
			context:  "chatMenu",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpActionRun,
			context:  "",
			err:      errors.New("boom"),
			expected: "Failed to run action: boom",
		},
		{
			name:     "includes context",
			op:       OpActionRun,
			context:  "setActiveTool",
			err:      errors.New("unknown tool"),
			expected: "Failed to run action 'setActiveTool': unknown tool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
