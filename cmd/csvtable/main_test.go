package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimiter(t *testing.T) {
	d, err := parseDelimiter(";")
	require.NoError(t, err)
	assert.Equal(t, ';', d)

	// A single multi-byte character is one delimiter.
	d, err = parseDelimiter("§")
	require.NoError(t, err)
	assert.Equal(t, '§', d)

	_, err = parseDelimiter("")
	assert.Error(t, err)

	_, err = parseDelimiter("ab")
	assert.Error(t, err)
}
