package adapter

import "errors"

var (
	ErrNoBroker          = errors.New("broker address is not set")
	ErrInvalidBroker     = errors.New("invalid broker address")
	ErrNoDevice          = errors.New("serial device is not set")
	ErrNoAddress         = errors.New("server address is not set")
	ErrNotRTU            = errors.New("modbus settings are not in rtu mode")
	ErrNotTCP            = errors.New("modbus settings are not in tcp mode")
	ErrIncompleteKeyPair = errors.New("client certificate and key must be set together")
	ErrNoCertificates    = errors.New("no certificates found in PEM file")
)
