// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the use cases of the siconfig command on top of
// a settings source: listing groups, showing a settings record and checking
// it against the validation rules.
package service

import "github.com/MKhiriev/shunya-settings/internal/settings"

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Source is a read-only settings document. *settings.Document implements it.
type Source interface {
	// Has reports whether the document has a top-level group named key.
	Has(key string) bool
	// Groups returns all top-level group names in sorted order.
	Groups() []string

	Twilio(key string) settings.TwilioSettings
	MQTT(key string) settings.MQTTSettings
	AWS(key string) settings.AWSSettings
	InfluxDB(key string) settings.InfluxDBSettings
	IEC104Client(key string) settings.IEC104ClientSettings
	OPCUAClient(key string) settings.OPCUAClientSettings
	OPCUAServer(key string) settings.OPCUAServerSettings
	Modbus(key string) settings.ModbusSettings
}

var _ Source = (*settings.Document)(nil)
