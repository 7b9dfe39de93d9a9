package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/MKhiriev/shunya-settings/internal/settings"
)

// LoadTLSConfig builds a client TLS configuration from PEM files. An empty
// root leaves RootCAs nil so the system pool is used. cert and key are
// either both set or both empty.
func LoadTLSConfig(root, cert, key string) (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if root != "" {
		pool := x509.NewCertPool()
		if err := appendPEMFile(pool, root); err != nil {
			return nil, err
		}
		cfg.RootCAs = pool
	}

	if (cert == "") != (key == "") {
		return nil, ErrIncompleteKeyPair
	}

	if cert != "" {
		pair, err := tls.LoadX509KeyPair(cert, key)
		if err != nil {
			return nil, fmt.Errorf("error loading client key pair: %w", err)
		}
		cfg.Certificates = []tls.Certificate{pair}
	}

	return cfg, nil
}

// NewIEC104TLSConfig returns the TLS configuration of an IEC 104 client, or
// nil when the settings carry no certificate at all and the link is plain TCP.
// A server certificate is trusted in addition to the root certificate.
func NewIEC104TLSConfig(s settings.IEC104ClientSettings) (*tls.Config, error) {
	if s.RootCert == "" && s.ServerCert == "" && s.ClientCert == "" && s.ClientKey == "" {
		return nil, nil
	}

	cfg, err := LoadTLSConfig(s.RootCert, s.ClientCert, s.ClientKey)
	if err != nil {
		return nil, err
	}

	if s.ServerCert != "" {
		if cfg.RootCAs == nil {
			cfg.RootCAs = x509.NewCertPool()
		}
		if err = appendPEMFile(cfg.RootCAs, s.ServerCert); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func appendPEMFile(pool *x509.CertPool, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading certificate: %w", err)
	}

	if !pool.AppendCertsFromPEM(data) {
		return fmt.Errorf("%w: %s", ErrNoCertificates, path)
	}

	return nil
}
