package service

import (
	"fmt"

	"github.com/MKhiriev/shunya-settings/internal/adapter"
	"github.com/MKhiriev/shunya-settings/internal/settings"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Endpoint is where a protocol client built from a settings record would
// connect, or listen for the OPC-UA server.
type Endpoint struct {
	Kind     string `json:"kind"`
	Group    string `json:"group"`
	Address  string `json:"address"`
	ClientID string `json:"client id,omitempty"`
	TLS      bool   `json:"tls"`
	Serial   string `json:"serial,omitempty"`
}

// Endpoint resolves the connection target of the record of the given kind.
// Resolving loads any certificates the record names, so a broken TLS setup
// surfaces here rather than at connect time.
func (s *SettingsService) Endpoint(kind, key string) (Endpoint, error) {
	key = groupKey(kind, key)

	record, err := s.Show(kind, key)
	if err != nil {
		return Endpoint{}, err
	}

	ep := Endpoint{Kind: kind, Group: key}

	switch r := record.(type) {
	case settings.MQTTSettings:
		opts, err := adapter.NewMQTTClientOptions(r, s.ids)
		if err != nil {
			return Endpoint{}, err
		}
		fromClientOptions(&ep, opts)
	case settings.AWSSettings:
		opts, err := adapter.NewAWSClientOptions(r)
		if err != nil {
			return Endpoint{}, err
		}
		fromClientOptions(&ep, opts)
	case settings.IEC104ClientSettings:
		if ep.Address, err = adapter.IEC104Address(r); err != nil {
			return Endpoint{}, err
		}
		tlsConfig, err := adapter.NewIEC104TLSConfig(r)
		if err != nil {
			return Endpoint{}, err
		}
		ep.TLS = tlsConfig != nil
	case settings.ModbusSettings:
		switch r.Mode {
		case settings.ModbusRTU:
			mode, err := adapter.NewSerialMode(r)
			if err != nil {
				return Endpoint{}, err
			}
			ep.Address = r.Device
			ep.Serial = fmt.Sprintf("%d 8N1", mode.BaudRate)
		case settings.ModbusTCP:
			if ep.Address, err = adapter.ModbusTCPAddress(r); err != nil {
				return Endpoint{}, err
			}
		default:
			return Endpoint{}, fmt.Errorf("%w: modbus type is neither tcp nor rtu", ErrNoEndpoint)
		}
	case settings.OPCUAServerSettings:
		ep.Address = adapter.OPCUAServerAddress(r)
	case settings.OPCUAClientSettings:
		if r.URL == "" {
			return Endpoint{}, adapter.ErrNoAddress
		}
		ep.Address = r.URL
	case settings.InfluxDBSettings:
		if r.URL == "" {
			return Endpoint{}, adapter.ErrNoAddress
		}
		ep.Address = r.URL
	default:
		return Endpoint{}, fmt.Errorf("%w: %s", ErrNoEndpoint, kind)
	}

	return ep, nil
}

func fromClientOptions(ep *Endpoint, opts *mqtt.ClientOptions) {
	if len(opts.Servers) > 0 {
		ep.Address = opts.Servers[0].String()
		switch opts.Servers[0].Scheme {
		case "ssl", "tls", "mqtts", "wss":
			ep.TLS = true
		}
	}
	ep.ClientID = opts.ClientID
}
