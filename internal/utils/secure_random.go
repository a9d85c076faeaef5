package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSecureRandomBytes returns lengthInBytes bytes read from crypto/rand.
func GenerateSecureRandomBytes(lengthInBytes int) ([]byte, error) {
	if lengthInBytes <= 0 {
		return nil, fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// GenerateEncryptionKey returns a base64 encoded random AES-256 key.
func GenerateEncryptionKey() (string, error) {
	b, err := GenerateSecureRandomBytes(aesKeySize)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
