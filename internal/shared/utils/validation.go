package utils

import (
	"fmt"
	"unicode/utf8"
)

// Input size limits (in bytes)
const (
	MaxDescriptorSize = 256 * 1024      // 256KB - metadata document
	MaxSchemaSize     = 4 * 1024 * 1024 // 4MB - window contract document
)

// ValidateSize checks that an input document does not exceed max bytes
func ValidateSize(what string, data []byte, max int) error {
	if len(data) > max {
		return fmt.Errorf("%s too large: %d bytes (max %d)", what, len(data), max)
	}
	return nil
}

// IsUTF8 reports whether data is valid UTF-8 text
func IsUTF8(data []byte) bool {
	return utf8.Valid(data)
}
