//go:build !windows

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLock(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	acquired, err := acquireLock()
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotNil(t, lockFile)

	releaseLock()
	assert.Nil(t, lockFile)

	// Released locks can be taken again.
	acquired, err = acquireLock()
	require.NoError(t, err)
	assert.True(t, acquired)
	releaseLock()
}
