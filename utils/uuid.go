package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 genera un UUID v7 (ordenable por tiempo).
//
// UUIDv7 usa los primeros 48 bits para timestamp Unix ms, seguido de bits
// random, permitiendo orden cronológico. Usado para ids de Order y Fill.
//
// Example:
//
//	id := utils.GenerateUUIDv7()
//	// => "01924b2d-7c3a-7def-8abc-123456789abc"
func GenerateUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		// crypto/rand agotado; v4 como fallback antes que retornar vacío
		return uuid.NewString()
	}
	return id.String()
}

// IsUUID valida que un string tenga formato UUID (cualquier versión).
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
