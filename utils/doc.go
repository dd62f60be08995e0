// Package utils provee utilidades comunes para trading-core-types.
//
// Incluye helpers de JSON dinámico (map[string]interface{}), conversión de
// timestamps epoch-ms ⇄ time.Time y generación de UUIDv7.
//
// Los helpers Extract* son tolerantes: retornan zero-value si el campo no
// existe o no tiene el tipo esperado. Las variantes Extract*Ok reportan
// presencia explícita, necesarias para la semántica de campos opcionales del
// wire format (ausente ≠ zero-value).
package utils
