package render

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNotRecord     = errors.New("value is not a settings record")
)
