package adapter

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/shunya-settings/internal/settings"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	DefaultAWSPort = 8883

	connectTimeout = 30 * time.Second
)

// NewMQTTClientOptions builds paho options for a plain broker connection.
// An empty client id is replaced with one from ids.
func NewMQTTClientOptions(s settings.MQTTSettings, ids IDGenerator) (*mqtt.ClientOptions, error) {
	if s.BrokerURL == "" {
		return nil, ErrNoBroker
	}

	clientID := s.ClientID
	if clientID == "" {
		clientID = ids.Generate()
	}

	opts := mqtt.NewClientOptions()
	if err := addBroker(opts, s.BrokerURL); err != nil {
		return nil, err
	}
	opts.SetClientID(clientID)
	opts.SetUsername(s.Username)
	opts.SetPassword(s.Password)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)

	return opts, nil
}

// NewAWSClientOptions builds paho options for an AWS IoT Core endpoint:
// MQTT over mutual TLS on ssl://endpoint:port.
func NewAWSClientOptions(s settings.AWSSettings) (*mqtt.ClientOptions, error) {
	if s.Endpoint == "" {
		return nil, ErrNoBroker
	}

	port := s.Port
	if port == 0 {
		port = DefaultAWSPort
	}

	tlsConfig, err := LoadTLSConfig(
		certPath(s.CertDir, s.RootCA),
		certPath(s.CertDir, s.ClientCert),
		certPath(s.CertDir, s.PrivateKey),
	)
	if err != nil {
		return nil, fmt.Errorf("aws endpoint %q: %w", s.Endpoint, err)
	}

	opts := mqtt.NewClientOptions()
	if err = addBroker(opts, "ssl://"+net.JoinHostPort(s.Endpoint, strconv.Itoa(port))); err != nil {
		return nil, err
	}
	opts.SetClientID(s.ClientID)
	opts.SetTLSConfig(tlsConfig)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)

	return opts, nil
}

// addBroker adds broker to opts. paho drops a URL it cannot parse, so the
// URL is parsed here first.
func addBroker(opts *mqtt.ClientOptions, broker string) error {
	normalized := broker
	if !strings.Contains(normalized, "://") {
		normalized = "tcp://" + normalized
	}
	if _, err := url.Parse(normalized); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidBroker, broker, err)
	}

	opts.AddBroker(broker)
	if len(opts.Servers) == 0 {
		return fmt.Errorf("%w %q", ErrInvalidBroker, broker)
	}

	return nil
}

// certPath resolves name against dir unless name is empty or absolute.
func certPath(dir, name string) string {
	if name == "" || dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
