package settings

// AWSSettings holds the settings of an AWS IoT Core connection, which is MQTT
// over mutually authenticated TLS.
//
// Certificate and key paths may be relative to CertDir.
type AWSSettings struct {
	Endpoint   string `json:"broker url" validate:"required"`
	CertDir    string `json:"certificate dir"`
	RootCA     string `json:"root certificate" validate:"required"`
	// ClientCert is read from "client certificate", never from "root certificate".
	ClientCert string `json:"client certificate" validate:"required"`
	PrivateKey string `json:"private key" validate:"required"`
	Port       int    `json:"port" validate:"gte=0,lte=65535"`
	ClientID   string `json:"client id" validate:"required"`
}

var awsFields = []field[AWSSettings]{
	stringField("broker url", func(s *AWSSettings) *string { return &s.Endpoint }),
	stringField("certificate dir", func(s *AWSSettings) *string { return &s.CertDir }),
	stringField("root certificate", func(s *AWSSettings) *string { return &s.RootCA }),
	stringField("client certificate", func(s *AWSSettings) *string { return &s.ClientCert }),
	stringField("private key", func(s *AWSSettings) *string { return &s.PrivateKey }),
	intField("port", 0, func(s *AWSSettings) *int { return &s.Port }),
	stringField("client id", func(s *AWSSettings) *string { return &s.ClientID }),
}

// AWS returns the AWS IoT settings stored under key.
func (d *Document) AWS(key string) AWSSettings {
	return extract(d, key, awsFields)
}
