package main

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryError(t *testing.T) {
	err := newEntryError("render", "dir/file", fs.ErrPermission)

	assert.Equal(t, "metadata unreadable for dir/file: permission denied", err.Error())
	assert.True(t, errors.Is(err, ErrMetadataUnreadable))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}
