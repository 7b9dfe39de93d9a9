// Package settings loads the gateway settings document and projects its named
// groups into typed settings records for the protocol clients (MQTT, AWS IoT,
// Modbus, IEC 104, OPC-UA, InfluxDB, Twilio).
//
// A [Document] is produced once by [Load] (or [Parse] / [Read]) and is
// read-only afterwards, so it can be shared between goroutines without
// locking. Every extractor takes the name of a top-level group and never
// fails: a missing group or field yields the documented default for that
// field.
//
// Field names are matched exactly as authored in the file, e.g. "broker url",
// "account sid", "auth token".
package settings
