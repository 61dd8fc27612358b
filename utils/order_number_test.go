package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{13}-[0-9A-F]{8}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, GenerateOrderNumber())
	}
}

func TestGenerateOrderNumber_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		n := GenerateOrderNumber()
		assert.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}
