package adapter

import (
	"net"
	"strconv"

	"github.com/MKhiriev/shunya-settings/internal/settings"
	"go.bug.st/serial"
)

const DefaultModbusPort = 502

// NewSerialMode returns the serial line parameters of a Modbus RTU link.
// Framing is fixed at 8N1.
func NewSerialMode(s settings.ModbusSettings) (*serial.Mode, error) {
	if s.Mode != settings.ModbusRTU {
		return nil, ErrNotRTU
	}
	if s.Device == "" {
		return nil, ErrNoDevice
	}

	baud := s.BaudRate
	if baud <= 0 {
		baud = settings.DefaultBaudRate
	}

	return &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}, nil
}

// ModbusTCPAddress returns the host:port of a Modbus TCP server.
func ModbusTCPAddress(s settings.ModbusSettings) (string, error) {
	if s.Mode != settings.ModbusTCP {
		return "", ErrNotTCP
	}
	if s.IP == "" {
		return "", ErrNoAddress
	}

	port := s.Port
	if port == 0 {
		port = DefaultModbusPort
	}

	return net.JoinHostPort(s.IP, strconv.Itoa(port)), nil
}
