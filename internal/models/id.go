package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewID creates a unique entity ID in prefix-xxxxx format (5-char hex).
func NewID(prefix string) (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("models: generate ID: %w", err)
	}
	return prefix + "-" + hex.EncodeToString(b)[:5], nil
}

// MustID is NewID for callers that treat entropy failure as fatal, such as
// static test fixtures and in-memory plan assembly.
func MustID(prefix string) string {
	id, err := NewID(prefix)
	if err != nil {
		panic(err)
	}
	return id
}
