package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmation_IsConfirmed(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "Delete", want: true},
		{input: "DELETE", want: true},
		{input: "delete", want: false},
		{input: " Delete", want: false},
		{input: "Delete ", want: false},
		{input: "", want: false},
		{input: "Remove", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Confirmation(tt.input).IsConfirmed())
		})
	}
}

func TestIsImageContentType(t *testing.T) {
	assert.True(t, IsImageContentType("image/png"))
	assert.True(t, IsImageContentType("IMAGE/JPEG"))
	assert.False(t, IsImageContentType("application/pdf"))
	assert.False(t, IsImageContentType(""))
}
