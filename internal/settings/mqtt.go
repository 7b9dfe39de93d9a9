package settings

// MQTTSettings holds the connection settings of a plain MQTT broker.
type MQTTSettings struct {
	BrokerURL string `json:"broker url" validate:"required,url"`
	Username  string `json:"username"`
	Password  string `json:"password" secret:"true"`
	ClientID  string `json:"client id"`
}

var mqttFields = []field[MQTTSettings]{
	stringField("broker url", func(s *MQTTSettings) *string { return &s.BrokerURL }),
	stringField("username", func(s *MQTTSettings) *string { return &s.Username }),
	stringField("password", func(s *MQTTSettings) *string { return &s.Password }),
	stringField("client id", func(s *MQTTSettings) *string { return &s.ClientID }),
}

// MQTT returns the MQTT broker settings stored under key.
func (d *Document) MQTT(key string) MQTTSettings {
	return extract(d, key, mqttFields)
}
