package main

import (
	"errors"
	"fmt"
)

// ErrMetadataUnreadable marks failures to read a path's metadata.
var ErrMetadataUnreadable = errors.New("metadata unreadable")

// EntryError reports a failure tied to a single listed path.
type EntryError struct {
	Path string
	Op   string
	Err  error
}

func newEntryError(op, path string, err error) *EntryError {
	return &EntryError{Path: path, Op: op, Err: err}
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%v for %s: %v", ErrMetadataUnreadable, e.Path, e.Err)
}

func (e *EntryError) Unwrap() []error {
	return []error{ErrMetadataUnreadable, e.Err}
}
