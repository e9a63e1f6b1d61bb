// Package utils provides general-purpose helper utilities used across
// different parts of the application.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers. Ids from one process sort
// by creation time, which keeps log sessions in order when grepped.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random UUIDv4 when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
