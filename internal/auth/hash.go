package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashToken возвращает SHA-256 хэш refresh-токена в hex-представлении.
// В базе хранится только хэш, сам токен живет у клиента.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareTokenHash сравнивает сохраненный хэш с токеном в константное время.
func CompareTokenHash(hash, token string) bool {
	stored, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}

	sum := sha256.Sum256([]byte(token))
	return subtle.ConstantTimeCompare(stored, sum[:]) == 1
}
