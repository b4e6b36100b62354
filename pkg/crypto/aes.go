// Package crypto, hassas alanların (personel Aadhar numarası) veritabanında
// AES-256-GCM ile şifreli saklanmasını sağlar.
//
// Şifreli değerler "enc:" prefix'i taşır. Prefix'siz değerler düz metin
// kabul edilir; anahtar sonradan eklenen kurulumlardaki eski kayıtlar okunabilir
// kalır ve ilk güncellemede şifrelenir.
//
//	c, _ := crypto.NewCipher("hex-encoded-32-byte-key")
//	sealed, _ := c.Seal("1234 5678 9012")
//	plain, _ := c.Open(sealed)
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// sealedPrefix, şifreli değerlerin işareti.
const sealedPrefix = "enc:"

// Cipher, tek bir anahtarla GCM şifreleme yapar. Eşzamanlı kullanım güvenlidir.
type Cipher struct {
	aead cipher.AEAD
}

// DeriveKey, hex-encoded string'den 32-byte AES-256 anahtarı oluşturur.
// Input tam 64 hex karakter (= 32 byte) olmalıdır.
func DeriveKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid hex key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be exactly 32 bytes (64 hex chars), got %d bytes", len(key))
	}
	return key, nil
}

// NewCipher, hex anahtardan Cipher oluşturur.
func NewCipher(hexKey string) (*Cipher, error) {
	key, err := DeriveKey(hexKey)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Seal, plaintext'i şifreler: "enc:" + base64(nonce + ciphertext + tag).
// Boş string şifrelenmez.
func (c *Cipher) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce generation: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open, Seal çıktısını çözer. Prefix'siz değer olduğu gibi döner.
func (c *Cipher) Open(value string) (string, error) {
	encoded, ok := strings.CutPrefix(value, sealedPrefix)
	if !ok {
		return value, nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	nonceSize := c.aead.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed (wrong key or corrupted data): %w", err)
	}
	return string(plaintext), nil
}

// IsSealed, değer Seal çıktısı mı?
func IsSealed(value string) bool {
	return strings.HasPrefix(value, sealedPrefix)
}
