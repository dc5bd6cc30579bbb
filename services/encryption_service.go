package services

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/hkdf"
)

const encryptionKeyInfo = "casa-hotels text encryption v1"

var (
	// ErrEncryptionKeyNotSet indicates InitEncryption has not been called with a secret
	ErrEncryptionKeyNotSet = errors.New("encryption key is not configured")
	// ErrInvalidCiphertext indicates the ciphertext is malformed or too short
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	encryptionKey   []byte
	encryptionKeyMu sync.RWMutex
)

// InitEncryption derives the AES-256 key from the configured secret.
// Any secret length is accepted; HKDF-SHA256 stretches it to 32 bytes.
func InitEncryption(secret string) error {
	if secret == "" {
		return ErrEncryptionKeyNotSet
	}

	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(encryptionKeyInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return fmt.Errorf("failed to derive encryption key: %w", err)
	}

	encryptionKeyMu.Lock()
	encryptionKey = key
	encryptionKeyMu.Unlock()
	return nil
}

func getEncryptionKey() ([]byte, error) {
	encryptionKeyMu.RLock()
	defer encryptionKeyMu.RUnlock()
	if encryptionKey == nil {
		return nil, ErrEncryptionKeyNotSet
	}
	return encryptionKey, nil
}

func newGCM() (cipher.AEAD, error) {
	key, err := getEncryptionKey()
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// EncryptText encrypts plaintext using AES-256-GCM.
// Returns hex(nonce) + ":" + hex(ciphertext).
func EncryptText(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil // Don't encrypt empty strings
	}

	gcm, err := newGCM()
	if err != nil {
		return "", err
	}

	// Generate random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(nonce) + ":" + hex.EncodeToString(sealed), nil
}

// DecryptText reverses EncryptText.
func DecryptText(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil // Don't decrypt empty strings
	}

	gcm, err := newGCM()
	if err != nil {
		return "", err
	}

	nonceHex, dataHex, ok := strings.Cut(encrypted, ":")
	if !ok {
		return "", fmt.Errorf("%w: expected nonce:ciphertext", ErrInvalidCiphertext)
	}

	nonce, err := hex.DecodeString(nonceHex)
	if err != nil || len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("%w: bad nonce", ErrInvalidCiphertext)
	}
	data, err := hex.DecodeString(dataHex)
	if err != nil || len(data) < gcm.Overhead() {
		return "", fmt.Errorf("%w: bad ciphertext", ErrInvalidCiphertext)
	}

	plaintext, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}
