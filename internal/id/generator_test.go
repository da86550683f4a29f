package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDWithPrefix(t *testing.T) {
	got := GenerateIDWithPrefix(CategoryPrefix)

	assert.True(t, strings.HasPrefix(got, CategoryPrefix))
	assert.Len(t, got, len(CategoryPrefix)+27)
	assert.NotEqual(t, got, GenerateIDWithPrefix(CategoryPrefix))
}

func TestValidWithPrefix(t *testing.T) {
	prod := GenerateIDWithPrefix(ProductPrefix)

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"generated", prod, true},
		{"wrong prefix", strings.Replace(prod, ProductPrefix, CategoryPrefix, 1), false},
		{"no prefix", strings.TrimPrefix(prod, ProductPrefix), false},
		{"truncated", prod[:len(prod)-3], false},
		{"empty", "", false},
		{"object id", "507f1f77bcf86cd799439011", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidWithPrefix(tt.in, ProductPrefix))
		})
	}
}
