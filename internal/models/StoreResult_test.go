package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadKind_String(t *testing.T) {
	assert.Equal(t, "primary", ReadPrimary.String())
	assert.Equal(t, "fallback", ReadFallback.String())
	assert.Equal(t, "empty", ReadEmpty.String())
}

func TestWriteKind_String(t *testing.T) {
	assert.Equal(t, "primary", WritePrimary.String())
	assert.Equal(t, "fallback", WriteFallback.String())
	assert.Equal(t, "skipped", WriteSkipped.String())
	assert.Equal(t, "failed", WriteFailed.String())
}
