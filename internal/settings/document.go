// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// DefaultPath is where the gateway keeps its settings document.
const DefaultPath = "/etc/shunya/config.json"

// Document is a parsed settings document. It is immutable once constructed;
// the zero value behaves like an empty document.
type Document struct {
	root map[string]any
}

// Load reads and parses the settings document stored at path.
//
// A file that cannot be opened or read yields an error wrapping [ErrRead] and
// the OS error. Malformed content yields a [*ParseError].
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrRead, path, err)
	}

	return parse(data, path)
}

// Read parses a settings document from r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return parse(data, "")
}

// Parse parses a settings document held in memory.
func Parse(data []byte) (*Document, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, newParseError(path, int64(len(data)), err)
	}

	if root == nil {
		return nil, &ParseError{Path: path, Offset: dec.InputOffset(), Msg: "top-level value is not an object"}
	}

	// only whitespace may follow the top-level object
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Offset: dec.InputOffset(), Msg: "unexpected data after top-level object"}
	}

	return &Document{root: root}, nil
}

func newParseError(path string, size int64, err error) *ParseError {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &syntaxErr):
		return &ParseError{Path: path, Offset: syntaxErr.Offset, Msg: syntaxErr.Error()}
	case errors.As(err, &typeErr):
		return &ParseError{Path: path, Offset: typeErr.Offset, Msg: "top-level value is not an object"}
	case errors.Is(err, io.EOF):
		return &ParseError{Path: path, Offset: 0, Msg: "document is empty"}
	default:
		return &ParseError{Path: path, Offset: size, Msg: err.Error()}
	}
}

// Has reports whether the document has a top-level member named key.
func (d *Document) Has(key string) bool {
	if d == nil {
		return false
	}

	_, ok := d.root[key]
	return ok
}

// Groups returns the names of all top-level members in sorted order.
func (d *Document) Groups() []string {
	if d == nil {
		return []string{}
	}

	return slices.Sorted(maps.Keys(d.root))
}

func (d *Document) group(key string) (map[string]any, bool) {
	if d == nil {
		return nil, false
	}

	obj, ok := d.root[key].(map[string]any)
	return obj, ok
}
