package boltdb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bloodlink/internal/client/storage"
	"github.com/iudanet/bloodlink/internal/crypto"
)

var tokenKey = []byte("current")

// Compile-time check that Storage implements TokenStorage
var _ storage.TokenStorage = (*Storage)(nil)

// SaveToken stores the session token, fully replacing any previous one.
// The token is encrypted with the device key before it reaches the bucket,
// so the database file never holds the plaintext credential.
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	// Шифруем токен device key
	encrypted, err := crypto.Encrypt([]byte(token), s.encryptionKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt token: %w", err)
	}

	record := storage.TokenRecord{
		Token:   base64.StdEncoding.EncodeToString(encrypted),
		SavedAt: time.Now().Unix(),
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Сериализуем запись в JSON
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal token record: %w", err)
		}

		// Запись полностью заменяет предыдущий токен
		if err := bucket.Put(tokenKey, data); err != nil {
			return fmt.Errorf("failed to save token record: %w", err)
		}

		return nil
	})
}

// GetToken retrieves and decrypts the stored session token
func (s *Storage) GetToken(ctx context.Context) (string, error) {
	var record storage.TokenRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(tokenKey)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal token record: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	// Декодируем base64 и расшифровываем
	encrypted, err := base64.StdEncoding.DecodeString(record.Token)
	if err != nil {
		return "", fmt.Errorf("failed to base64 decode token: %w", err)
	}

	plaintext, err := crypto.Decrypt(encrypted, s.encryptionKey)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt token: %w", err)
	}

	return string(plaintext), nil
}

// DeleteToken removes the stored session token (sign-out).
// Deleting an absent token is a no-op: sign-out must stay idempotent.
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Delete(tokenKey); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		return nil
	})
}
