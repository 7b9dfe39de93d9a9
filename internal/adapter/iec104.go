package adapter

import (
	"net"
	"strconv"

	"github.com/MKhiriev/shunya-settings/internal/settings"
)

const DefaultIEC104Port = 2404

// IEC104Address returns the host:port of the IEC 104 controlled station.
func IEC104Address(s settings.IEC104ClientSettings) (string, error) {
	if s.IP == "" {
		return "", ErrNoAddress
	}

	port := s.Port
	if port == 0 {
		port = DefaultIEC104Port
	}

	return net.JoinHostPort(s.IP, strconv.Itoa(port)), nil
}
