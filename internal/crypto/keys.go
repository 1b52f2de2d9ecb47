package crypto

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для деривации ключа хранилища
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// SecretSize - размер device secret в байтах
	SecretSize = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
)

const (
	secretFileName = "device.secret"
	saltFileName   = "device.salt"
)

// DeviceKey возвращает 32-байтовый ключ шифрования хранилища для этого устройства.
// При первом запуске генерирует device secret и соль, сохраняет их в dataDir
// с правами 0600; при последующих запусках читает существующие файлы.
// Ключ деривируется через Argon2id, так что токен никогда не лежит на диске
// в открытом виде. Файлы секрета - ключевой материал, а не состояние клиента.
func DeviceKey(dataDir string) ([]byte, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data dir cannot be empty")
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	secret, err := loadOrCreate(filepath.Join(dataDir, secretFileName), SecretSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load device secret: %w", err)
	}
	salt, err := loadOrCreate(filepath.Join(dataDir, saltFileName), SaltSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load device salt: %w", err)
	}

	// Контекст "storage" отделяет этот ключ от любых будущих производных
	input := append(append([]byte{}, secret...), []byte("storage")...)
	key := argon2.IDKey(input, salt, Argon2Time, Argon2Memory, Argon2Threads, KeySize)

	return key, nil
}

// loadOrCreate читает файл с ключевым материалом или создает его
// со случайным содержимым указанного размера
func loadOrCreate(path string, size int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != size {
			return nil, fmt.Errorf("%s: expected %d bytes, got %d", path, size, len(data))
		}
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	data = make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		return nil, fmt.Errorf("failed to generate random material: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return data, nil
}
