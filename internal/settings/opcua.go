package settings

// OPCUAClientSettings holds the settings of an OPC-UA client session.
type OPCUAClientSettings struct {
	URL      string `json:"server url" validate:"required,url"`
	Username string `json:"username"`
	Password string `json:"password" secret:"true"`
}

// OPCUAServerSettings is the address an OPC-UA server binds to.
type OPCUAServerSettings struct {
	Address string `json:"address" validate:"omitempty,ip"`
	Port    int    `json:"port" validate:"gte=0,lte=65535"`
}

var opcuaClientFields = []field[OPCUAClientSettings]{
	stringField("server url", func(s *OPCUAClientSettings) *string { return &s.URL }),
	stringField("username", func(s *OPCUAClientSettings) *string { return &s.Username }),
	stringField("password", func(s *OPCUAClientSettings) *string { return &s.Password }),
}

var opcuaServerFields = []field[OPCUAServerSettings]{
	stringField("address", func(s *OPCUAServerSettings) *string { return &s.Address }),
	intField("port", 0, func(s *OPCUAServerSettings) *int { return &s.Port }),
}

// OPCUAClient returns the OPC-UA client settings stored under key.
func (d *Document) OPCUAClient(key string) OPCUAClientSettings {
	return extract(d, key, opcuaClientFields)
}

// OPCUAServer returns the OPC-UA server binding stored under key.
func (d *Document) OPCUAServer(key string) OPCUAServerSettings {
	return extract(d, key, opcuaServerFields)
}
