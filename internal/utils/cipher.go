package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	aesKeySize   = 32
	aesNonceSize = 16
)

// ErrDecryptionFailed is returned when a ciphertext cannot be opened with the given key.
var ErrDecryptionFailed = errors.New("decryption failed")

// AESCipher encrypts with AES-256-GCM. Output is base64(nonce || sealed) with a
// fresh 16 byte nonce per call.
type AESCipher struct{}

func NewAESCipher() *AESCipher {
	return &AESCipher{}
}

func (AESCipher) Encrypt(plainText, key string) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce, err := GenerateSecureRandomBytes(aesNonceSize)
	if err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, []byte(plainText), nil)
	out := make([]byte, 0, len(nonce)+len(sealed))
	out = append(out, nonce...)
	out = append(out, sealed...)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (AESCipher) Decrypt(cipherText, key string) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil {
		return "", fmt.Errorf("invalid cipher text encoding: %w", err)
	}
	if len(raw) < aesNonceSize+gcm.Overhead() {
		return "", fmt.Errorf("cipher text too short: %w", ErrDecryptionFailed)
	}

	plain, err := gcm.Open(nil, raw[:aesNonceSize], raw[aesNonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return string(plain), nil
}

func newGCM(key string) (cipher.AEAD, error) {
	rawKey, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("invalid key encoding: %w", err)
	}
	if len(rawKey) != aesKeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", aesKeySize, len(rawKey))
	}
	block, err := aes.NewCipher(rawKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewGCMWithNonceSize(block, aesNonceSize)
}
