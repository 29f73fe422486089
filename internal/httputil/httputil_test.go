package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"200", true},
		{"404", true},
		{"599", true},
		{"100", true},
		{"default", true},
		{"2XX", true},
		{"5XX", true},
		{"x-custom", true},
		{"0XX", false},
		{"6XX", false},
		{"99", false},
		{"600", false},
		{"20", false},
		{"abc", false},
		{"", false},
		{"2xX", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateStatusCode(tt.code))
		})
	}
}

func TestIsMethod(t *testing.T) {
	assert.True(t, IsMethod("get"))
	assert.True(t, IsMethod("GET"))
	assert.True(t, IsMethod("Patch"))
	assert.True(t, IsMethod("TRACE"))
	assert.False(t, IsMethod("query"))
	assert.False(t, IsMethod("connect"))
	assert.False(t, IsMethod(""))
}

func TestMethodsOrder(t *testing.T) {
	// Indexing order is part of the output contract.
	want := []string{"get", "post", "put", "patch", "delete", "options", "head", "trace"}
	assert.Equal(t, want, Methods)
}
