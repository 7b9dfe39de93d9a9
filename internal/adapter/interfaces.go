// Package adapter turns settings records into option values of the client
// libraries that consume them: paho MQTT options, TLS configurations, serial
// port modes and listen addresses.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/id_generator_mock.go -package=mock

// IDGenerator produces client identifiers for connections whose settings
// leave the client id empty.
type IDGenerator interface {
	Generate() string
}
