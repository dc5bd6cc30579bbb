package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetEncryption(t *testing.T) {
	t.Helper()
	encryptionKeyMu.Lock()
	prev := encryptionKey
	encryptionKey = nil
	encryptionKeyMu.Unlock()
	t.Cleanup(func() {
		encryptionKeyMu.Lock()
		encryptionKey = prev
		encryptionKeyMu.Unlock()
	})
}

func TestEncryptDecrypt(t *testing.T) {
	resetEncryption(t)
	assert.NoError(t, InitEncryption("a-test-secret-that-is-long-enough"))

	t.Run("Encrypt and Decrypt", func(t *testing.T) {
		plaintext := "4f1c2d7e-session-token"
		encrypted, err := EncryptText(plaintext)
		assert.NoError(t, err)
		assert.NotEmpty(t, encrypted)
		assert.NotEqual(t, plaintext, encrypted)
		assert.Contains(t, encrypted, ":")

		decrypted, err := DecryptText(encrypted)
		assert.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("Empty string", func(t *testing.T) {
		encrypted, err := EncryptText("")
		assert.NoError(t, err)
		assert.Empty(t, encrypted)

		decrypted, err := DecryptText("")
		assert.NoError(t, err)
		assert.Empty(t, decrypted)
	})

	t.Run("Different ciphertexts for same plaintext", func(t *testing.T) {
		plaintext := "test-value"
		encrypted1, _ := EncryptText(plaintext)
		encrypted2, _ := EncryptText(plaintext)
		// Due to random nonce, ciphertexts should be different
		assert.NotEqual(t, encrypted1, encrypted2)
	})

	t.Run("Tampered ciphertext", func(t *testing.T) {
		encrypted, _ := EncryptText("guest-count:2")
		nonce, data, _ := strings.Cut(encrypted, ":")
		flipped := []byte(data)
		if flipped[0] == 'a' {
			flipped[0] = 'b'
		} else {
			flipped[0] = 'a'
		}
		_, err := DecryptText(nonce + ":" + string(flipped))
		assert.Error(t, err)
	})

	t.Run("Different secret cannot decrypt", func(t *testing.T) {
		encrypted, _ := EncryptText("secret-data")
		assert.NoError(t, InitEncryption("another-secret"))
		_, err := DecryptText(encrypted)
		assert.Error(t, err)
	})
}

func TestEncryptionWithoutKey(t *testing.T) {
	resetEncryption(t)

	_, err := EncryptText("test")
	assert.ErrorIs(t, err, ErrEncryptionKeyNotSet)

	_, err = DecryptText("aa:bb")
	assert.ErrorIs(t, err, ErrEncryptionKeyNotSet)

	assert.ErrorIs(t, InitEncryption(""), ErrEncryptionKeyNotSet)
}

func TestInvalidCiphertext(t *testing.T) {
	resetEncryption(t)
	assert.NoError(t, InitEncryption("test-secret"))

	tests := []string{
		"no-separator",
		"zz:abcd",
		"00112233445566778899aabb:zz",
		"0011:aabbccdd",
		"00112233445566778899aabb:00",
	}
	for _, input := range tests {
		_, err := DecryptText(input)
		assert.ErrorIs(t, err, ErrInvalidCiphertext, input)
	}
}
