// Package utils holds small helpers shared by the adapters.
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator generates MQTT client identifiers of the form
// <prefix><32 hex digits>. The digits come from a version 7 UUID, so ids
// issued by one gateway sort by creation time in broker session listings.
type UUIDGenerator struct {
	prefix string
}

func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return g.prefix + strings.ReplaceAll(id.String(), "-", "")
}
