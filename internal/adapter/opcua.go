package adapter

import (
	"net"
	"strconv"

	"github.com/MKhiriev/shunya-settings/internal/settings"
)

const DefaultOPCUAPort = 4840

// OPCUAServerAddress returns the listen address of an OPC-UA server. An
// empty address binds all interfaces.
func OPCUAServerAddress(s settings.OPCUAServerSettings) string {
	port := s.Port
	if port == 0 {
		port = DefaultOPCUAPort
	}
	return net.JoinHostPort(s.Address, strconv.Itoa(port))
}
