package crypto

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("opaque-session-token-value")

	encrypted, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	require.NotNil(t, encrypted)

	// nonce + ciphertext + tag всегда длиннее исходных данных
	assert.Greater(t, len(encrypted), len(plaintext))
	assert.NotEqual(t, plaintext, encrypted)

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncrypt_UniqueNonce(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("same input")

	first, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	second, err := Encrypt(plaintext, key)
	require.NoError(t, err)

	// Одинаковый plaintext должен давать разный ciphertext (случайный nonce)
	assert.NotEqual(t, first, second)
}

func TestEncrypt_Errors(t *testing.T) {
	key := testKey(t)

	_, err := Encrypt(nil, key)
	assert.Error(t, err)

	_, err = Encrypt([]byte("data"), []byte("short-key"))
	assert.Error(t, err)
}

func TestDecrypt_WrongKey(t *testing.T) {
	key := testKey(t)
	otherKey := testKey(t)

	encrypted, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	_, err = Decrypt(encrypted, otherKey)
	assert.Error(t, err)
}

func TestDecrypt_Tampered(t *testing.T) {
	key := testKey(t)

	encrypted, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	// Портим один байт ciphertext - GCM должен отвергнуть данные
	encrypted[len(encrypted)-1] ^= 0xFF

	_, err = Decrypt(encrypted, key)
	assert.Error(t, err)
}

func TestDecrypt_TooShort(t *testing.T) {
	key := testKey(t)

	_, err := Decrypt([]byte("short"), key)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}
