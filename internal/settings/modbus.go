// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "fmt"

// ModbusMode selects the Modbus transport and with it the subset of
// [ModbusSettings] fields that is meaningful.
type ModbusMode int

const (
	ModbusNone ModbusMode = iota
	ModbusTCP
	ModbusRTU
)

// DefaultBaudRate is used for a Modbus RTU line that does not set "baudrate".
const DefaultBaudRate = 9600

// ParseModbusMode maps the "type" value of a Modbus group to a mode. The
// comparison is exact and case-sensitive; anything unrecognised is
// [ModbusNone].
func ParseModbusMode(s string) ModbusMode {
	switch s {
	case "tcp":
		return ModbusTCP
	case "rtu":
		return ModbusRTU
	default:
		return ModbusNone
	}
}

func (m ModbusMode) String() string {
	switch m {
	case ModbusTCP:
		return "tcp"
	case ModbusRTU:
		return "rtu"
	case ModbusNone:
		return "none"
	default:
		return fmt.Sprintf("ModbusMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ModbusMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ModbusSettings holds a Modbus client connection. Device and BaudRate are
// read only in RTU mode, IP and Port only in TCP mode; the other pair keeps its
// defaults.
type ModbusSettings struct {
	Mode     ModbusMode `json:"type"`
	Device   string     `json:"device"`
	BaudRate int        `json:"baudrate" validate:"gt=0"`
	IP       string     `json:"server ip" validate:"omitempty,ip|hostname_rfc1123"`
	Port     int        `json:"port" validate:"gte=0,lte=65535"`
}

func isRTU(s *ModbusSettings) bool { return s.Mode == ModbusRTU }
func isTCP(s *ModbusSettings) bool { return s.Mode == ModbusTCP }

var modbusFields = []field[ModbusSettings]{
	{
		key:   "type",
		reset: func(s *ModbusSettings) { s.Mode = ModbusNone },
		set: func(s *ModbusSettings, v any) {
			name, _ := v.(string)
			s.Mode = ParseModbusMode(name)
		},
	},
	stringField("device", func(s *ModbusSettings) *string { return &s.Device }).only(isRTU),
	intField("baudrate", DefaultBaudRate, func(s *ModbusSettings) *int { return &s.BaudRate }).only(isRTU),
	stringField("server ip", func(s *ModbusSettings) *string { return &s.IP }).only(isTCP),
	intField("port", 0, func(s *ModbusSettings) *int { return &s.Port }).only(isTCP),
}

// Modbus returns the Modbus client settings stored under key.
func (d *Document) Modbus(key string) ModbusSettings {
	return extract(d, key, modbusFields)
}
