// internal/utils/checksum.go
package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the lowercase hex SHA-256 digest of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func ValidateFileHash(fileData []byte, expectedHash string) bool {
	return SHA256Hex(fileData) == expectedHash
}
