package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "image limit", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
		{name: "just over image limit", bytes: 5*1024*1024 + 600*1024, expected: "5.6 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestTrimmedLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TrimmedLength("   "))
	assert.Equal(t, 9, TrimmedLength("  too short \n"))
	assert.Equal(t, 10, TrimmedLength("ten chars!"))
	assert.Equal(t, 4, TrimmedLength(" café "))
}

func TestCompactIDs(t *testing.T) {
	t.Parallel()

	got := CompactIDs([]string{" a ", "", "b", "a", "  ", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Empty(t, CompactIDs(nil))
}
