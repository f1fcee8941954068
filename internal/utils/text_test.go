package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAuthor(t *testing.T) {
	tests := map[string]string{
		"":          AnonymousAuthor,
		"   ":       AnonymousAuthor,
		"\t\n":      AnonymousAuthor,
		"alice":     "alice",
		"  bob  ":   "bob",
		"Anon":      "Anon",
		" Мария ":   "Мария",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeAuthor(in), "input %q", in)
	}
}
