package service

import (
	"strings"
	"testing"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCodeGenerator_Generate(t *testing.T) {
	gen := NewCodeGenerator()

	for _, length := range []int{1, 8, 16} {
		code := gen.Generate(length)

		assert.Len(t, code, length)
		assert.True(t, model.ValidCode(code), "code %q must be valid", code)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(AllowedChars, ch))
		}
	}
}

func TestCodeGenerator_NonPositiveLength(t *testing.T) {
	gen := NewCodeGenerator()

	assert.Empty(t, gen.Generate(0))
	assert.Empty(t, gen.Generate(-3))
}

// TestCodeGenerator_Distribution проверяет, что коды не повторяются на малой выборке
func TestCodeGenerator_Distribution(t *testing.T) {
	gen := NewCodeGenerator()
	seen := make(map[model.Code]struct{}, 1000)

	for range 1000 {
		seen[gen.Generate(8)] = struct{}{}
	}

	// 62^8 вариантов, коллизия на 1000 кодах практически невозможна
	assert.Len(t, seen, 1000)
}

func TestAllowedChars(t *testing.T) {
	assert.Len(t, AllowedChars, 62)
}
