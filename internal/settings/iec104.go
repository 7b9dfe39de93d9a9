package settings

// IEC104ClientSettings holds the settings of a secure IEC 60870-5-104 client.
//
// ServerAddress is the common address of the outstation, OriginAddress the
// originator address sent in every ASDU.
type IEC104ClientSettings struct {
	IP            string `json:"address" validate:"required,ip|hostname_rfc1123"`
	ServerCert    string `json:"server certificate"`
	RootCert      string `json:"root certificate"`
	// ClientCert is read from "client certificate", never from "root certificate".
	ClientCert    string `json:"client certificate" validate:"required_with=ClientKey"`
	ClientKey     string `json:"client key" validate:"required_with=ClientCert"`
	Port          int    `json:"port" validate:"gte=0,lte=65535"`
	ServerAddress int    `json:"server address" validate:"gte=0,lte=65535"`
	OriginAddress int    `json:"origin address" validate:"gte=0,lte=255"`
}

var iec104ClientFields = []field[IEC104ClientSettings]{
	stringField("address", func(s *IEC104ClientSettings) *string { return &s.IP }),
	stringField("server certificate", func(s *IEC104ClientSettings) *string { return &s.ServerCert }),
	stringField("root certificate", func(s *IEC104ClientSettings) *string { return &s.RootCert }),
	stringField("client certificate", func(s *IEC104ClientSettings) *string { return &s.ClientCert }),
	stringField("client key", func(s *IEC104ClientSettings) *string { return &s.ClientKey }),
	intField("port", 0, func(s *IEC104ClientSettings) *int { return &s.Port }),
	intField("server address", 0, func(s *IEC104ClientSettings) *int { return &s.ServerAddress }),
	intField("origin address", 0, func(s *IEC104ClientSettings) *int { return &s.OriginAddress }),
}

// IEC104Client returns the IEC 104 client settings stored under key.
func (d *Document) IEC104Client(key string) IEC104ClientSettings {
	return extract(d, key, iec104ClientFields)
}
