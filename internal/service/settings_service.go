package service

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/shunya-settings/internal/adapter"
	"github.com/MKhiriev/shunya-settings/internal/validators"
)

// Kinds of settings records, as accepted by [SettingsService.Show] and
// [SettingsService.Check].
const (
	KindTwilio      = "twilio"
	KindMQTT        = "mqtt"
	KindAWS         = "aws"
	KindInfluxDB    = "influxdb"
	KindIEC104      = "iec104"
	KindOPCUAClient = "opcua-client"
	KindOPCUAServer = "opcua-server"
	KindModbus      = "modbus"
)

var extractors = map[string]func(Source, string) any{
	KindTwilio:      func(s Source, key string) any { return s.Twilio(key) },
	KindMQTT:        func(s Source, key string) any { return s.MQTT(key) },
	KindAWS:         func(s Source, key string) any { return s.AWS(key) },
	KindInfluxDB:    func(s Source, key string) any { return s.InfluxDB(key) },
	KindIEC104:      func(s Source, key string) any { return s.IEC104Client(key) },
	KindOPCUAClient: func(s Source, key string) any { return s.OPCUAClient(key) },
	KindOPCUAServer: func(s Source, key string) any { return s.OPCUAServer(key) },
	KindModbus:      func(s Source, key string) any { return s.Modbus(key) },
}

// SettingsService answers questions about one loaded settings document.
type SettingsService struct {
	source    Source
	validator validators.Validator
	ids       adapter.IDGenerator
}

// NewSettingsService returns a service reading from source and checking
// records with validator. ids fills in MQTT client ids left empty.
func NewSettingsService(source Source, validator validators.Validator, ids adapter.IDGenerator) *SettingsService {
	return &SettingsService{
		source:    source,
		validator: validator,
		ids:       ids,
	}
}

// Kinds returns the supported record kinds in sorted order. It does not
// touch the source.
func (s *SettingsService) Kinds() []string {
	return slices.Sorted(maps.Keys(extractors))
}

// Groups returns the top-level group names of the document.
func (s *SettingsService) Groups() []string {
	return s.source.Groups()
}

// Show extracts the record of the given kind from group key. An empty key
// means the group named like the kind. A missing group is not an error: the
// record then holds defaults, exactly as a protocol client would see it.
func (s *SettingsService) Show(kind, key string) (any, error) {
	extract, ok := extractors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return extract(s.source, groupKey(kind, key)), nil
}

// Check extracts the record of the given kind from group key and validates
// it. Unlike Show it requires the group to exist.
func (s *SettingsService) Check(ctx context.Context, kind, key string) error {
	key = groupKey(kind, key)

	record, err := s.Show(kind, key)
	if err != nil {
		return err
	}

	if !s.source.Has(key) {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, key)
	}

	if err := s.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%s settings in group %q: %w", kind, key, err)
	}

	return nil
}

func groupKey(kind, key string) string {
	if key == "" {
		return kind
	}
	return key
}
