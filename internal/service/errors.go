package service

import "errors"

var (
	// ErrUnknownKind is returned for a record kind not listed by
	// [SettingsService.Kinds].
	ErrUnknownKind = errors.New("unknown settings kind")
	// ErrGroupNotFound is returned by [SettingsService.Check] when the
	// document has no group with the requested name.
	ErrGroupNotFound = errors.New("settings group not found")
	// ErrNoEndpoint is returned by [SettingsService.Endpoint] for records
	// that do not describe a network or serial endpoint.
	ErrNoEndpoint = errors.New("settings describe no endpoint")
)
