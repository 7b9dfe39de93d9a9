// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrRead is wrapped by every error caused by the settings file not being
	// opened or read. The underlying OS error is wrapped as well, so
	// errors.Is(err, fs.ErrNotExist) works for a missing file.
	ErrRead = errors.New("error reading settings file")

	// ErrParse is matched by every [*ParseError].
	ErrParse = errors.New("error parsing settings file")
)

// ParseError reports a settings document that is not well-formed JSON or
// whose top-level value is not an object.
type ParseError struct {
	// Path is the file the document was read from; empty for in-memory input.
	Path string
	// Offset is the byte offset at which the parser gave up.
	Offset int64
	// Msg is the parser message.
	Msg string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s (offset %d)", ErrParse, e.Msg, e.Offset)
	}

	return fmt.Sprintf("%s %q: %s (offset %d)", ErrParse, e.Path, e.Msg, e.Offset)
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
