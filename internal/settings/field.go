package settings

import (
	"encoding/json"
	"strconv"
)

// field describes how one JSON member of a group is copied into a record of
// type T. reset applies the default, set copies a present value and ignores
// values of the wrong JSON type.
type field[T any] struct {
	key   string
	reset func(*T)
	set   func(*T, any)
	// when, if not nil, must hold for the field to be read at all.
	when func(*T) bool
}

func stringField[T any](key string, dst func(*T) *string) field[T] {
	return field[T]{
		key:   key,
		reset: func(rec *T) { *dst(rec) = "" },
		set: func(rec *T, v any) {
			if s, ok := v.(string); ok {
				*dst(rec) = s
			}
		},
	}
}

func intField[T any](key string, def int, dst func(*T) *int) field[T] {
	return field[T]{
		key:   key,
		reset: func(rec *T) { *dst(rec) = def },
		set: func(rec *T, v any) {
			n, ok := v.(json.Number)
			if !ok {
				return
			}
			if i, err := strconv.Atoi(n.String()); err == nil {
				*dst(rec) = i
			}
		},
	}
}

func (f field[T]) only(when func(*T) bool) field[T] {
	f.when = when
	return f
}

// extract builds a record from the group stored under key. Defaults are
// applied first, then every readable field present in the group is copied in
// table order, so a guard may depend on a field read earlier.
func extract[T any](d *Document, key string, fields []field[T]) T {
	var rec T
	for _, f := range fields {
		f.reset(&rec)
	}

	obj, ok := d.group(key)
	if !ok {
		return rec
	}

	for _, f := range fields {
		if f.when != nil && !f.when(&rec) {
			continue
		}
		if v, ok := obj[f.key]; ok {
			f.set(&rec, v)
		}
	}

	return rec
}
